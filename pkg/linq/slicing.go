package linq

// Take 获取前 n 项，n 超过长度取全部，负数按 0 处理
func Take[T any](s Stream[T], n int) Stream[T] {
	n = clamp(n, len(s.data))
	return Stream[T]{cloneSlice(s.data[:n])}
}

// Skip 跳过前 n 项
func Skip[T any](s Stream[T], n int) Stream[T] {
	n = clamp(n, len(s.data))
	return Stream[T]{cloneSlice(s.data[n:])}
}

func clamp(n, length int) int {
	if n < 0 {
		return 0
	}
	if n > length {
		return length
	}
	return n
}

// TakeWhile 从头开始取，遇到第一个不满足的就永久停止(后面再满足也不要)
func TakeWhile[T any](s Stream[T], pred func(T) bool) Stream[T] {
	return TakeWhileIndexed(s, func(_ int, v T) bool { return pred(v) })
}

func TakeWhileIndexed[T any](s Stream[T], pred func(int, T) bool) Stream[T] {
	return Take(s, prefixLen(s, pred))
}

// SkipWhile 跳过满足条件的前缀，返回剩下的全部
func SkipWhile[T any](s Stream[T], pred func(T) bool) Stream[T] {
	return SkipWhileIndexed(s, func(_ int, v T) bool { return pred(v) })
}

func SkipWhileIndexed[T any](s Stream[T], pred func(int, T) bool) Stream[T] {
	return Skip(s, prefixLen(s, pred))
}

// 满足条件的最长前缀长度
func prefixLen[T any](s Stream[T], pred func(int, T) bool) int {
	for i, v := range s.data {
		if !pred(i, v) {
			return i
		}
	}
	return len(s.data)
}

// Chunk 把流按照大小切成小块，最后一块可以不满
func Chunk[T any](s Stream[T], size int) ([]Stream[T], error) {
	if size <= 0 {
		return nil, invalidArgument("chunk size must be positive, got %d", size)
	}
	var chunks []Stream[T]
	data := s.data
	for len(data) > 0 {
		end := min(size, len(data))
		chunks = append(chunks, Stream[T]{cloneSlice(data[:end])})
		data = data[end:]
	}
	return chunks, nil
}

// Window 常见有两种玩法：
// Tumbling Window（跃动窗口） 不重叠: data=[1,2,3,4,5,6], size=2 → [[1,2],[3,4],[5,6]]
// Sliding Window（滑动窗口） 可以重叠: size=3, step=1 → [[1,2,3],[2,3,4],[3,4,5],[4,5,6]]
// step<=0 时等同于 size，只产生完整窗口，不包含不足 size 的尾部
func Window[T any](s Stream[T], size, step int) ([]Stream[T], error) {
	if size <= 0 {
		return nil, invalidArgument("window size must be positive, got %d", size)
	}
	if step <= 0 {
		step = size
	}
	var out []Stream[T]
	for start := 0; start+size <= len(s.data); start += step {
		out = append(out, Stream[T]{cloneSlice(s.data[start : start+size])})
	}
	return out, nil
}

// Partition 一次遍历拆成满足和不满足两部分
func Partition[T any](s Stream[T], pred func(T) bool) (Stream[T], Stream[T]) {
	var matched, unmatched []T
	for _, v := range s.data {
		if pred(v) {
			matched = append(matched, v)
		} else {
			unmatched = append(unmatched, v)
		}
	}
	return Stream[T]{matched}, Stream[T]{unmatched}
}
