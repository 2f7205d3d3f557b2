package linq

// First 正向扫描，返回第一个(满足条件的)元素
func First[T any](s Stream[T], preds ...func(T) bool) Optional[T] {
	if len(preds) == 0 {
		if len(s.data) == 0 {
			return Absent[T]()
		}
		return Some(s.data[0])
	}
	pred := preds[0]
	for _, v := range s.data {
		if pred(v) {
			return Some(v)
		}
	}
	return Absent[T]()
}

func FirstOrDefault[T any](s Stream[T], preds ...func(T) bool) T {
	return First(s, preds...).OrZero()
}

// Last 反向扫描，返回最后一个(满足条件的)元素
func Last[T any](s Stream[T], preds ...func(T) bool) Optional[T] {
	if len(preds) == 0 {
		if len(s.data) == 0 {
			return Absent[T]()
		}
		return Some(s.data[len(s.data)-1])
	}
	pred := preds[0]
	for i := len(s.data) - 1; i >= 0; i-- {
		if pred(s.data[i]) {
			return Some(s.data[i])
		}
	}
	return Absent[T]()
}

func LastOrDefault[T any](s Stream[T], preds ...func(T) bool) T {
	return Last(s, preds...).OrZero()
}

// ElementAt 下标从 0 开始，越界(包括负数)不是错误，只是没有值
func ElementAt[T any](s Stream[T], index int) Optional[T] {
	if index < 0 || index >= len(s.data) {
		return Absent[T]()
	}
	return Some(s.data[index])
}

func ElementAtOrDefault[T any](s Stream[T], index int) T {
	return ElementAt(s, index).OrZero()
}

// Single 必须恰好有一个(满足条件的)元素
func Single[T any](s Stream[T], preds ...func(T) bool) (T, error) {
	v, n := single(s, preds...)
	switch {
	case n == 0:
		var zero T
		return zero, ErrEmptySequence
	case n > 1:
		var zero T
		return zero, ErrMultipleElements
	}
	return v, nil
}

// SingleOrDefault 没有元素时返回零值，多于一个仍然是错误
func SingleOrDefault[T any](s Stream[T], preds ...func(T) bool) (T, error) {
	v, n := single(s, preds...)
	if n > 1 {
		var zero T
		return zero, ErrMultipleElements
	}
	return v, nil
}

// 找到第二个就可以停了，n 最大为 2
func single[T any](s Stream[T], preds ...func(T) bool) (T, int) {
	var (
		found T
		n     int
	)
	for _, v := range s.data {
		if len(preds) > 0 && !preds[0](v) {
			continue
		}
		n++
		if n > 1 {
			break
		}
		found = v
	}
	if n != 1 {
		var zero T
		return zero, n
	}
	return found, n
}
