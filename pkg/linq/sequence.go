package linq

// Concat a 的元素后面接上 b 的元素，长度为 len(a)+len(b)
func Concat[T any](a, b Stream[T]) Stream[T] {
	if len(a.data)+len(b.data) == 0 {
		return Stream[T]{}
	}
	out := make([]T, 0, len(a.data)+len(b.data))
	out = append(out, a.data...)
	out = append(out, b.data...)
	return Stream[T]{out}
}

// Append 在末尾追加一个元素
func Append[T any](s Stream[T], v T) Stream[T] {
	return Concat(s, Stream[T]{[]T{v}})
}

// Prepend 在开头插入一个元素
func Prepend[T any](s Stream[T], v T) Stream[T] {
	return Concat(Stream[T]{[]T{v}}, s)
}

// Zip 按位置两两组合，长度取较短的那个，长的尾巴直接丢掉
// zip 操作两个不同类型的流，所以单独成立为函数
func Zip[A any, B any, R any](a Stream[A], b Stream[B], combine func(A, B) R) Stream[R] {
	n := min(len(a.data), len(b.data))
	if n == 0 {
		return Stream[R]{}
	}
	out := make([]R, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, combine(a.data[i], b.data[i]))
	}
	return Stream[R]{out}
}

// SequenceEqual 长度不同直接返回 false，不做任何元素比较
func SequenceEqual[T comparable](a, b Stream[T]) bool {
	return SequenceEqualBy(a, b, func(x, y T) bool { return x == y })
}

func SequenceEqualBy[T any](a, b Stream[T], eq func(x, y T) bool) bool {
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}
