package linq

// All 所有元素都满足条件才是真，空序列恒为真，遇到第一个不满足的立即返回
func All[T any](s Stream[T], pred func(T) bool) bool {
	for _, v := range s.data {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any 不带条件时判断序列非空；带条件时只要有一个元素满足条件就是真
// 条件只取第一个，变参只是为了模拟可选参数
func Any[T any](s Stream[T], preds ...func(T) bool) bool {
	if len(preds) == 0 {
		return len(s.data) > 0
	}
	pred := preds[0]
	for _, v := range s.data {
		if pred(v) {
			return true
		}
	}
	return false
}

func None[T any](s Stream[T], pred func(T) bool) bool {
	return !Any(s, pred)
}

// Contains 使用 == 判断
func Contains[T comparable](s Stream[T], value T) bool {
	for _, v := range s.data {
		if v == value {
			return true
		}
	}
	return false
}

// ContainsBy 使用自定义等价关系，调用方式是 eq(元素, value)
func ContainsBy[T any](s Stream[T], value T, eq func(a, b T) bool) bool {
	for _, v := range s.data {
		if eq(v, value) {
			return true
		}
	}
	return false
}

// Count 不带条件时返回长度，带条件时等于 Where(s, pred).Len()
func Count[T any](s Stream[T], preds ...func(T) bool) int {
	if len(preds) == 0 {
		return len(s.data)
	}
	pred := preds[0]
	n := 0
	for _, v := range s.data {
		if pred(v) {
			n++
		}
	}
	return n
}

func LongCount[T any](s Stream[T], preds ...func(T) bool) int64 {
	return int64(Count(s, preds...))
}

// Where 过滤出满足条件的元素
func Where[T any](s Stream[T], pred func(T) bool) Stream[T] {
	var out []T
	for _, v := range s.data {
		if pred(v) {
			out = append(out, v)
		}
	}
	return Stream[T]{out}
}

// WhereIndexed 条件函数额外拿到元素下标(从 0 开始)
func WhereIndexed[T any](s Stream[T], pred func(int, T) bool) Stream[T] {
	var out []T
	for i, v := range s.data {
		if pred(i, v) {
			out = append(out, v)
		}
	}
	return Stream[T]{out}
}

// WhereSafe 深拷贝满足条件的元素再追加
func WhereSafe[T any](s Stream[T], pred func(T) bool) Stream[T] {
	var out []T
	for _, v := range s.data {
		if pred(v) {
			out = append(out, deepCopyValue(v))
		}
	}
	return Stream[T]{out}
}
