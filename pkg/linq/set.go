package linq

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// 集合运算的输出顺序: 按元素第一次出现的顺序，先 a 后 b
// 默认相等(==)的版本用哈希集合，By 版本只能两两比较

// Union 并集，每个等价元素只出现一次
func Union[T comparable](a, b Stream[T]) Stream[T] {
	seen := linkedhashset.New()
	for _, v := range a.data {
		seen.Add(v)
	}
	for _, v := range b.data {
		seen.Add(v)
	}
	return fromValues[T](seen.Values())
}

func UnionBy[T any](a, b Stream[T], eq func(x, y T) bool) Stream[T] {
	var out []T
	for _, src := range [][]T{a.data, b.data} {
		for _, v := range src {
			if !containsBy(out, v, eq) {
				out = append(out, v)
			}
		}
	}
	return Stream[T]{out}
}

// Intersect 交集，a 中同时出现在 b 里的元素，不管出现几次结果里只保留一次
func Intersect[T comparable](a, b Stream[T]) Stream[T] {
	other := toHashSet(b)
	seen := linkedhashset.New()
	for _, v := range a.data {
		if other.Contains(v) {
			seen.Add(v)
		}
	}
	return fromValues[T](seen.Values())
}

func IntersectBy[T any](a, b Stream[T], eq func(x, y T) bool) Stream[T] {
	var out []T
	for _, v := range a.data {
		if containsBy(b.data, v, eq) && !containsBy(out, v, eq) {
			out = append(out, v)
		}
	}
	return Stream[T]{out}
}

// Except 差集，保留 a 中元素的重复次数
func Except[T comparable](a, b Stream[T]) Stream[T] {
	other := toHashSet(b)
	var out []T
	for _, v := range a.data {
		if !other.Contains(v) {
			out = append(out, v)
		}
	}
	return Stream[T]{out}
}

func ExceptBy[T any](a, b Stream[T], eq func(x, y T) bool) Stream[T] {
	var out []T
	for _, v := range a.data {
		if !containsBy(b.data, v, eq) {
			out = append(out, v)
		}
	}
	return Stream[T]{out}
}

// Distinct 单序列去重，保留第一次出现的元素
func Distinct[T comparable](s Stream[T]) Stream[T] {
	seen := linkedhashset.New()
	for _, v := range s.data {
		seen.Add(v)
	}
	return fromValues[T](seen.Values())
}

// DistinctBy eq 用于判断是否相等
func DistinctBy[T any](s Stream[T], eq func(x, y T) bool) Stream[T] {
	var out []T
	for _, v := range s.data {
		if !containsBy(out, v, eq) {
			out = append(out, v)
		}
	}
	return Stream[T]{out}
}

// 注意 eq 的参数顺序: 已有元素在前
func containsBy[T any](data []T, v T, eq func(x, y T) bool) bool {
	for _, x := range data {
		if eq(x, v) {
			return true
		}
	}
	return false
}

func toHashSet[T comparable](s Stream[T]) *hashset.Set {
	set := hashset.New()
	for _, v := range s.data {
		set.Add(v)
	}
	return set
}

// gods 是非泛型的，取出来以后再断言回 T
func fromValues[T any](values []interface{}) Stream[T] {
	if len(values) == 0 {
		return Stream[T]{}
	}
	out := make([]T, len(values))
	for i, v := range values {
		// T 是接口类型时 nil 元素断言会失败，保持零值即可
		if x, ok := v.(T); ok {
			out[i] = x
		}
	}
	return Stream[T]{out}
}
