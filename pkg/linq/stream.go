package linq

import (
	"github.com/mohae/deepcopy"
)

// Stream 是一个有序、有限的数据流容器，值语义
// 所有组合函数都返回新的 Stream，不会修改或持有输入
type Stream[T any] struct {
	data []T
}

// Of 将切片包装为 Stream 对象(浅拷贝，调用方后续修改切片不影响 Stream)
func Of[T any](data []T) Stream[T] {
	return Stream[T]{cloneSlice(data)}
}

// Items 是 Of 的可变参数版本
func Items[T any](items ...T) Stream[T] {
	return Of(items)
}

// DeepOf 深拷贝每个元素，适合元素里面带有切片、map、指针的场景
func DeepOf[T any](data []T) Stream[T] {
	if len(data) == 0 {
		return Stream[T]{}
	}
	return Stream[T]{deepcopy.Copy(data).([]T)}
}

// ToSlice 返回底层数据的拷贝
func (s Stream[T]) ToSlice() []T {
	return cloneSlice(s.data)
}

func (s Stream[T]) Len() int {
	return len(s.data)
}

func (s Stream[T]) IsEmpty() bool {
	return len(s.data) == 0
}

// ForEach 只做副作用，不能改变原始数据
func (s Stream[T]) ForEach(f func(T)) {
	for _, v := range s.data {
		f(v)
	}
}

// Clone 深拷贝整个流，性能比较低但是安全，防止引用类型联动
func (s Stream[T]) Clone() Stream[T] {
	return DeepOf(s.data)
}

// 空切片统一返回 nil，避免 make 出来一堆零长度的数组
func cloneSlice[T any](data []T) []T {
	if len(data) == 0 {
		return nil
	}
	out := make([]T, len(data))
	copy(out, data)
	return out
}

func deepCopyValue[T any](v T) T {
	// deepcopy 对 nil 接口返回 nil，断言会 panic
	c, ok := deepcopy.Copy(v).(T)
	if !ok {
		return v
	}
	return c
}
