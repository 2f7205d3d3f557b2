package linq

// Join 等值内连接，结果先按 outer 顺序，再按 inner 顺序
func Join[O any, I any, K comparable, R any](
	outer Stream[O], inner Stream[I],
	outerKey func(O) K, innerKey func(I) K,
	result func(O, I) R,
) Stream[R] {
	lookup := ToLookup(inner, innerKey)
	var out []R
	for _, o := range outer.data {
		for _, i := range lookup[outerKey(o)] {
			out = append(out, result(o, i))
		}
	}
	return Stream[R]{out}
}

// GroupJoin 每个 outer 元素配上所有匹配的 inner 元素(可能为空)
func GroupJoin[O any, I any, K comparable, R any](
	outer Stream[O], inner Stream[I],
	outerKey func(O) K, innerKey func(I) K,
	result func(O, Stream[I]) R,
) Stream[R] {
	lookup := ToLookup(inner, innerKey)
	if len(outer.data) == 0 {
		return Stream[R]{}
	}
	out := make([]R, 0, len(outer.data))
	for _, o := range outer.data {
		out = append(out, result(o, Of(lookup[outerKey(o)])))
	}
	return Stream[R]{out}
}
