// Package linq 提供一组对内存中有限序列做声明式变换的泛型组合函数
//
// 所有函数都是立即求值的纯函数: 不修改输入，不持有输入，返回新的 Stream
// 可能没有结果的查询返回 Optional，对应的 OrDefault 版本返回零值
//
//  1. 基本流构建 & Select
//     s := linq.Items(1, 2, 3, 4)
//     squared := linq.Select(s, func(x int) int { return x * x }).ToSlice()
//     // [1 4 9 16]
//
//  2. Where + Select + Sum
//     odd := linq.Where(linq.Items(1, 2, 3, 4, 5), func(n int) bool { return n%2 == 1 })
//     sum := linq.Sum(linq.Select(odd, func(x int) int { return x * 10 }))
//     // 输出: 90 (10+30+50)
//
//  3. Optional 和 OrDefault
//     linq.First(linq.Empty[int]()).IsPresent()  // false
//     linq.FirstOrDefault(linq.Empty[int]())     // 0
//     linq.Max(linq.Items(-1, 1, -4, 6)).OrZero() // 6
//
//  4. 集合运算(输出顺序为第一次出现的顺序)
//     linq.Union(linq.Items(1, 2, 3), linq.Items(3, 4))     // [1 2 3 4]
//     linq.Intersect(linq.Items(1, 2, 3), linq.Items(3, 2)) // [2 3]
//     linq.Except(linq.Items(1, 1, 2), linq.Items(2))       // [1 1]
//
//  5. 稳定排序
//     people := linq.Of([]Person{{"C", 10}, {"A", 15}, {"B", 20}})
//     linq.OrderBy(people, func(p Person) string { return p.Name })
//     // [{A 15} {B 20} {C 10}]
//
//  6. 多级排序
//     linq.OrderByComparers(people,
//     linq.Descending(func(p Person) int { return p.Age }),
//     linq.Ascending(func(p Person) string { return p.Name }))
//
//  7. 错误
//     _, err := linq.Average(linq.Empty[int]())
//     errors.Is(err, linq.ErrEmptySequence) // true
//     _, err = linq.Range(0, -1)
//     errors.Is(err, linq.ErrInvalidArgument) // true
package linq
