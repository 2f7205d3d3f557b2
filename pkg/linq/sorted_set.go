package linq

import (
	"sort"

	"github.com/xtgo/set"
)

// 有序集合运算: 两个操作数先按 less 排序去重，再交给 xtgo/set 原地合并
// 结果总是升序且无重复，!less(a,b) && !less(b,a) 视为相等

type lessSlice[T any] struct {
	data []T
	less func(x, y T) bool
}

func (l lessSlice[T]) Len() int           { return len(l.data) }
func (l lessSlice[T]) Less(i, j int) bool { return l.less(l.data[i], l.data[j]) }
func (l lessSlice[T]) Swap(i, j int)      { l.data[i], l.data[j] = l.data[j], l.data[i] }

// SortedSet 排序并去重，相等元素保留最先出现的那个
func SortedSet[T any](s Stream[T], less func(x, y T) bool) Stream[T] {
	return Stream[T]{sortedUniq(s.data, less)}
}

// SortedExcept 有序差集 a \ b
// 两个参数版本的 Distinct 实际上就是这个语义
func SortedExcept[T any](a, b Stream[T], less func(x, y T) bool) Stream[T] {
	return sortedDo(set.Diff, a, b, less)
}

func SortedUnion[T any](a, b Stream[T], less func(x, y T) bool) Stream[T] {
	return sortedDo(set.Union, a, b, less)
}

func SortedIntersect[T any](a, b Stream[T], less func(x, y T) bool) Stream[T] {
	return sortedDo(set.Inter, a, b, less)
}

func sortedDo[T any](op set.Op, a, b Stream[T], less func(x, y T) bool) Stream[T] {
	left := sortedUniq(a.data, less)
	right := sortedUniq(b.data, less)
	data := make([]T, 0, len(left)+len(right))
	data = append(data, left...)
	data = append(data, right...)
	n := op(lessSlice[T]{data, less}, len(left))
	return Stream[T]{cloneSlice(data[:n])}
}

func sortedUniq[T any](data []T, less func(x, y T) bool) []T {
	cloned := cloneSlice(data)
	ls := lessSlice[T]{cloned, less}
	sort.Stable(ls)
	n := set.Uniq(ls)
	return cloned[:n]
}
