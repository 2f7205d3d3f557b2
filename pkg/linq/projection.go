package linq

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// Indexed 元素和它的下标(从 0 开始)
type Indexed[T any] struct {
	Index int
	Value T
}

func (i Indexed[T]) String() string {
	return fmt.Sprintf("(%d, %v)", i.Index, i.Value)
}

// Pair 两个可能不同类型的值，Join 之类的结果会用到
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Select 映射元素为另一个类型，保持顺序和长度
func Select[T any, R any](s Stream[T], transform func(T) R) Stream[R] {
	if len(s.data) == 0 {
		return Stream[R]{}
	}
	out := make([]R, len(s.data))
	for i, v := range s.data {
		out[i] = transform(v)
	}
	return Stream[R]{out}
}

// SelectWithIndex 映射函数额外拿到下标
func SelectWithIndex[T any, R any](s Stream[T], transform func(int, T) R) Stream[R] {
	if len(s.data) == 0 {
		return Stream[R]{}
	}
	out := make([]R, len(s.data))
	for i, v := range s.data {
		out[i] = transform(i, v)
	}
	return Stream[R]{out}
}

// SelectIndexed 每个元素和它的位置配对
func SelectIndexed[T any](s Stream[T]) Stream[Indexed[T]] {
	return SelectWithIndex(s, func(i int, v T) Indexed[T] {
		return Indexed[T]{Index: i, Value: v}
	})
}

// SelectSafe 使用 deepcopy 保护每个返回值，防止引用泄漏
func SelectSafe[T any, R any](s Stream[T], transform func(T) R) Stream[R] {
	return Select(s, func(v T) R { return deepCopyValue(transform(v)) })
}

// SelectMany 每个元素映射成一个流，再按顺序拍平
func SelectMany[T any, R any](s Stream[T], transform func(T) Stream[R]) Stream[R] {
	var out []R
	for _, v := range s.data {
		out = append(out, transform(v).data...)
	}
	return Stream[R]{out}
}

// Cast 逐个做类型断言，任何一个失败都返回 ErrInvalidCast，不返回部分结果
// 用法: linq.Cast[int](s)
func Cast[R any, T any](s Stream[T]) (Stream[R], error) {
	if len(s.data) == 0 {
		return Stream[R]{}, nil
	}
	out := make([]R, len(s.data))
	for i, v := range s.data {
		r, ok := any(v).(R)
		if !ok {
			return Stream[R]{}, fmt.Errorf("%w: element %d of type %T is not %s",
				ErrInvalidCast, i, v, typeName[R]())
		}
		out[i] = r
	}
	return Stream[R]{out}, nil
}

// OfType 只保留动态类型是 R(或者实现了接口 R)的元素，其它的直接丢掉
func OfType[R any, T any](s Stream[T]) Stream[R] {
	var out []R
	for _, v := range s.data {
		if r, ok := any(v).(R); ok {
			out = append(out, r)
		}
	}
	return Stream[R]{out}
}

// Converter 做值转换而不是类型断言，比如 "42" → 42
type Converter[R any] func(any) (R, error)

// 常用的转换器，底层是 spf13/cast
var (
	ToInt     Converter[int]     = cast.ToIntE
	ToInt64   Converter[int64]   = cast.ToInt64E
	ToFloat64 Converter[float64] = cast.ToFloat64E
	ToString  Converter[string]  = cast.ToStringE
	ToBool    Converter[bool]    = cast.ToBoolE
)

// Convert 和 Cast 一样要么全部成功，要么返回 ErrInvalidCast
func Convert[T any, R any](s Stream[T], conv Converter[R]) (Stream[R], error) {
	if len(s.data) == 0 {
		return Stream[R]{}, nil
	}
	out := make([]R, len(s.data))
	for i, v := range s.data {
		r, err := conv(v)
		if err != nil {
			return Stream[R]{}, fmt.Errorf("%w: element %d (%v) to %s: %v",
				ErrInvalidCast, i, v, typeName[R](), err)
		}
		out[i] = r
	}
	return Stream[R]{out}, nil
}

func typeName[R any]() string {
	return reflect.TypeOf((*R)(nil)).Elem().String()
}
