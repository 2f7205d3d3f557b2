package linq

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// Grouping 一个分组: 键 + 组内元素(保持原始顺序)
type Grouping[K any, T any] struct {
	Key   K
	Items Stream[T]
}

// GroupBy 按 key 分组，分组顺序是 key 第一次出现的顺序
func GroupBy[T any, K comparable](s Stream[T], key func(T) K) Stream[Grouping[K, T]] {
	groups := linkedhashmap.New()
	for _, v := range s.data {
		k := key(v)
		items, _ := groups.Get(k)
		list, _ := items.([]T)
		groups.Put(k, append(list, v))
	}

	var out []Grouping[K, T]
	it := groups.Iterator()
	for it.Next() {
		k, _ := it.Key().(K)
		out = append(out, Grouping[K, T]{
			Key:   k,
			Items: Stream[T]{it.Value().([]T)},
		})
	}
	return Stream[Grouping[K, T]]{out}
}

// B 树的度数，分组数量一般不大，32 足够
const groupTreeDegree = 32

// GroupBySorted 按 key 分组，分组按 key 升序排列
func GroupBySorted[T any, K constraints.Ordered](s Stream[T], key func(T) K) Stream[Grouping[K, T]] {
	tree := btree.NewG(groupTreeDegree, func(a, b Grouping[K, T]) bool {
		return a.Key < b.Key
	})
	for _, v := range s.data {
		k := key(v)
		g, _ := tree.Get(Grouping[K, T]{Key: k})
		g.Key = k
		g.Items = Stream[T]{append(g.Items.data, v)}
		tree.ReplaceOrInsert(g)
	}

	out := make([]Grouping[K, T], 0, tree.Len())
	tree.Ascend(func(g Grouping[K, T]) bool {
		out = append(out, g)
		return true
	})
	return Stream[Grouping[K, T]]{out}
}

// ToLookup 按 key 分组到 map，组内保持原始顺序
func ToLookup[T any, K comparable](s Stream[T], key func(T) K) map[K][]T {
	result := make(map[K][]T)
	for _, v := range s.data {
		k := key(v)
		result[k] = append(result[k], v)
	}
	return result
}

// ToMap 键重复时返回 ErrDuplicateKey
func ToMap[T any, K comparable, V any](s Stream[T], key func(T) K, value func(T) V) (map[K]V, error) {
	result := make(map[K]V, len(s.data))
	for _, v := range s.data {
		k := key(v)
		if _, exists := result[k]; exists {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		result[k] = value(v)
	}
	return result, nil
}
