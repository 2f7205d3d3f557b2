package linq

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Number 泛型约束要求支持 + 和 / 运算
type Number interface {
	constraints.Integer | constraints.Float
}

// Min 空序列返回 Absent，相等时保留第一个出现的
func Min[T constraints.Ordered](s Stream[T]) Optional[T] {
	return MinFunc(s, func(a, b T) bool { return a < b })
}

func Max[T constraints.Ordered](s Stream[T]) Optional[T] {
	return MaxFunc(s, func(a, b T) bool { return a < b })
}

// MinFunc 使用自定义的全序关系 less
func MinFunc[T any](s Stream[T], less func(a, b T) bool) Optional[T] {
	if len(s.data) == 0 {
		return Absent[T]()
	}
	min := s.data[0]
	for _, v := range s.data[1:] {
		if less(v, min) {
			min = v
		}
	}
	return Some(min)
}

// MaxFunc 只有严格更大时才替换，所以相等时保留第一个
func MaxFunc[T any](s Stream[T], less func(a, b T) bool) Optional[T] {
	if len(s.data) == 0 {
		return Absent[T]()
	}
	max := s.data[0]
	for _, v := range s.data[1:] {
		if less(max, v) {
			max = v
		}
	}
	return Some(max)
}

// MinBy 返回变换后的最小值(不是元素本身)
func MinBy[T any, K constraints.Ordered](s Stream[T], transform func(T) K) Optional[K] {
	return Min(Select(s, transform))
}

func MaxBy[T any, K constraints.Ordered](s Stream[T], transform func(T) K) Optional[K] {
	return Max(Select(s, transform))
}

// MinByElement 返回 key 最小的元素，每个元素的 key 只计算一次
func MinByElement[T any, K constraints.Ordered](s Stream[T], key func(T) K) Optional[T] {
	return extremeByKey(s, key, func(a, b K) bool { return a < b })
}

func MaxByElement[T any, K constraints.Ordered](s Stream[T], key func(T) K) Optional[T] {
	return extremeByKey(s, key, func(a, b K) bool { return a > b })
}

func extremeByKey[T any, K any](s Stream[T], key func(T) K, better func(a, b K) bool) Optional[T] {
	if len(s.data) == 0 {
		return Absent[T]()
	}
	best, bestKey := s.data[0], key(s.data[0])
	for _, v := range s.data[1:] {
		if k := key(v); better(k, bestKey) {
			best, bestKey = v, k
		}
	}
	return Some(best)
}

// Sum 从零值开始从左到右累加，空序列返回零值
func Sum[T Number](s Stream[T]) T {
	var sum T
	for _, v := range s.data {
		sum += v
	}
	return sum
}

func SumBy[T any, N Number](s Stream[T], transform func(T) N) N {
	var sum N
	for _, v := range s.data {
		sum += transform(v)
	}
	return sum
}

// Average 空序列返回 ErrEmptySequence，不会做除零
// 整数类型按整数除法截断
func Average[T Number](s Stream[T]) (T, error) {
	if len(s.data) == 0 {
		var zero T
		return zero, fmt.Errorf("average: %w", ErrEmptySequence)
	}
	n, err := countAs[T](len(s.data))
	if err != nil {
		return n, err
	}
	return Sum(s) / n, nil
}

func AverageBy[T any, N Number](s Stream[T], transform func(T) N) (N, error) {
	if len(s.data) == 0 {
		var zero N
		return zero, fmt.Errorf("average: %w", ErrEmptySequence)
	}
	n, err := countAs[N](len(s.data))
	if err != nil {
		return n, err
	}
	return SumBy(s, transform) / n, nil
}

// countAs 把元素个数转换成元素类型，装不下时(比如 256 个 uint8)返回错误
// 否则转换会回绕成 0 或负数，整数除法直接 panic
func countAs[N Number](count int) (N, error) {
	n := N(count)
	if int(n) != count {
		var zero N
		return zero, invalidArgument("average: %d elements overflow %T", count, zero)
	}
	return n, nil
}

// SumDecimal 金额之类不能丢精度的场景用 decimal 累加
func SumDecimal[T any](s Stream[T], transform func(T) decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range s.data {
		sum = sum.Add(transform(v))
	}
	return sum
}

// AverageDecimal 除法精度使用 decimal.DivisionPrecision
func AverageDecimal[T any](s Stream[T], transform func(T) decimal.Decimal) (decimal.Decimal, error) {
	if len(s.data) == 0 {
		return decimal.Zero, fmt.Errorf("average: %w", ErrEmptySequence)
	}
	return SumDecimal(s, transform).Div(decimal.NewFromInt(int64(len(s.data)))), nil
}
