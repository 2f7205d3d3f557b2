package linq

// Range 从 start 开始连续 count 个值，每次加一
// count 为负数返回 ErrInvalidArgument
func Range[T Number](start T, count int) (Stream[T], error) {
	if count < 0 {
		return Stream[T]{}, invalidArgument("range count must not be negative, got %d", count)
	}
	if count == 0 {
		return Stream[T]{}, nil
	}
	out := make([]T, count)
	v := start
	for i := range out {
		out[i] = v
		v++
	}
	return Stream[T]{out}, nil
}

// Repeat 和 Range 保持一致，负数 count 是错误而不是按 0 处理
func Repeat[T any](value T, count int) (Stream[T], error) {
	if count < 0 {
		return Stream[T]{}, invalidArgument("repeat count must not be negative, got %d", count)
	}
	if count == 0 {
		return Stream[T]{}, nil
	}
	out := make([]T, count)
	for i := range out {
		out[i] = value
	}
	return Stream[T]{out}, nil
}

func Empty[T any]() Stream[T] {
	return Stream[T]{}
}

// DefaultIfEmpty 非空原样返回，空序列返回只含零值的单元素序列
func DefaultIfEmpty[T any](s Stream[T]) Stream[T] {
	var zero T
	return DefaultIfEmptyWith(s, zero)
}

func DefaultIfEmptyWith[T any](s Stream[T], value T) Stream[T] {
	if len(s.data) == 0 {
		return Stream[T]{[]T{value}}
	}
	return Stream[T]{cloneSlice(s.data)}
}
