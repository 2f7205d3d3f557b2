package linq

import "fmt"

// Optional 表示 0 个或 1 个值
// 查询可能没有结果的时候(First/Last/ElementAt/Min/Max)返回它
// OrDefault 系列函数都是在它上面调用 OrZero 得到的
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// Get 和 map 查找的习惯一致: 值 + 是否存在
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// OrElse 没有值的时候返回 fallback
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OrZero 没有值的时候返回 T 的零值
func (o Optional[T]) OrZero() T {
	var zero T
	return o.OrElse(zero)
}

// MustGet 没有值的时候返回 ErrEmptySequence
func (o Optional[T]) MustGet() (T, error) {
	if !o.ok {
		var zero T
		return zero, ErrEmptySequence
	}
	return o.value, nil
}

func (o Optional[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
