package linq

// Aggregate 左折叠，累加器从 T 的零值开始
// acc 通过指针原地修改累加器
func Aggregate[T any](s Stream[T], acc func(v T, acc *T)) T {
	var seed T
	return AggregateSeed(s, seed, acc)
}

// AggregateSeed 累加器从 seed 开始，空序列直接返回 seed
func AggregateSeed[T any, A any](s Stream[T], seed A, acc func(v T, acc *A)) A {
	result := seed
	for _, v := range s.data {
		acc(v, &result)
	}
	return result
}

// AggregateSelect 折叠结束后再经过 result 处理一次
func AggregateSelect[T any, A any, R any](s Stream[T], seed A, acc func(v T, acc *A), result func(A) R) R {
	return result(AggregateSeed(s, seed, acc))
}

// Reduce 将流中的元素归约为一个值(函数式写法，累加器通过返回值传递)
func Reduce[T any, R any](s Stream[T], init R, comb func(R, T) R) R {
	acc := init
	for _, v := range s.data {
		acc = comb(acc, v)
	}
	return acc
}
