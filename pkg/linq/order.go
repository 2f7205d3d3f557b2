package linq

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// 所有排序都是稳定排序: key 相等的元素保持原来的相对顺序
// 降序也一样，不是升序结果再整体反转

// OrderBy 按 key 升序
func OrderBy[T any, K constraints.Ordered](s Stream[T], key func(T) K) Stream[T] {
	return OrderByFunc(s, key, func(a, b K) bool { return a < b })
}

// OrderByFunc 按 key 升序，less 为自定义的全序关系
func OrderByFunc[T any, K any](s Stream[T], key func(T) K, less func(a, b K) bool) Stream[T] {
	return sortByKey(cloneSlice(s.data), key, less)
}

func OrderByDescending[T any, K constraints.Ordered](s Stream[T], key func(T) K) Stream[T] {
	return OrderByDescendingFunc(s, key, func(a, b K) bool { return a < b })
}

// OrderByDescendingFunc 反转比较方向而不是反转结果，这样才能保持稳定
func OrderByDescendingFunc[T any, K any](s Stream[T], key func(T) K, less func(a, b K) bool) Stream[T] {
	return sortByKey(cloneSlice(s.data), key, func(a, b K) bool { return less(b, a) })
}

// OrderBySafe 深拷贝后再排序，防止引用类型被结果带出去改动
func OrderBySafe[T any, K constraints.Ordered](s Stream[T], key func(T) K) Stream[T] {
	return OrderBy(s.Clone(), key)
}

// 先把 key 算好，避免比较时反复调用 key 函数
func sortByKey[T any, K any](data []T, key func(T) K, less func(a, b K) bool) Stream[T] {
	keys := make([]K, len(data))
	for i, v := range data {
		keys[i] = key(v)
	}
	sort.Stable(keyedSlice[T, K]{data, keys, less})
	return Stream[T]{data}
}

type keyedSlice[T any, K any] struct {
	data []T
	keys []K
	less func(a, b K) bool
}

func (k keyedSlice[T, K]) Len() int           { return len(k.data) }
func (k keyedSlice[T, K]) Less(i, j int) bool { return k.less(k.keys[i], k.keys[j]) }
func (k keyedSlice[T, K]) Swap(i, j int) {
	k.data[i], k.data[j] = k.data[j], k.data[i]
	k.keys[i], k.keys[j] = k.keys[j], k.keys[i]
}

// Comparer 返回负数、0、正数，OrderByComparers 按顺序使用，前一个相等再看下一个
type Comparer[T any] func(a, b T) int

func Ascending[T any, K constraints.Ordered](key func(T) K) Comparer[T] {
	return AscendingFunc(key, func(a, b K) bool { return a < b })
}

func Descending[T any, K constraints.Ordered](key func(T) K) Comparer[T] {
	return DescendingFunc(key, func(a, b K) bool { return a < b })
}

func AscendingFunc[T any, K any](key func(T) K, less func(a, b K) bool) Comparer[T] {
	return func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case less(ka, kb):
			return -1
		case less(kb, ka):
			return 1
		}
		return 0
	}
}

func DescendingFunc[T any, K any](key func(T) K, less func(a, b K) bool) Comparer[T] {
	asc := AscendingFunc(key, less)
	return func(a, b T) int { return asc(b, a) }
}

// OrderByComparers 多级排序(ThenBy)，整体依旧是稳定排序
func OrderByComparers[T any](s Stream[T], cmps ...Comparer[T]) Stream[T] {
	data := cloneSlice(s.data)
	sort.SliceStable(data, func(i, j int) bool {
		for _, c := range cmps {
			if r := c(data[i], data[j]); r != 0 {
				return r < 0
			}
		}
		return false
	})
	return Stream[T]{data}
}

// Reverse 反转流中元素顺序
func Reverse[T any](s Stream[T]) Stream[T] {
	cloned := cloneSlice(s.data)
	for i, j := 0, len(cloned)-1; i < j; i, j = i+1, j-1 {
		cloned[i], cloned[j] = cloned[j], cloned[i]
	}
	return Stream[T]{cloned}
}
