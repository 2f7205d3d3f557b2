package linq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linq_tool/pkg/linq"
)

// 测试 Skip
func TestSkip(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"Middle", 3, []int{4, 5}},
		{"Zero", 0, []int{1, 2, 3, 4, 5}},
		{"All", 5, nil},
		{"PastEnd", 10, nil},
		{"Negative", -2, []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := linq.Skip(first, tt.n)
			if tt.want == nil {
				assert.True(t, got.IsEmpty())
				return
			}
			assert.Equal(t, tt.want, got.ToSlice())
		})
	}
}

// 测试 Take
func TestTake(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, linq.Take(first, 3).ToSlice())
	assert.Equal(t, first.ToSlice(), linq.Take(first, 10).ToSlice())
	assert.True(t, linq.Take(first, 0).IsEmpty())
	assert.True(t, linq.Take(first, -1).IsEmpty())
	assert.True(t, linq.Take(empty, 3).IsEmpty())
}

// take(n) 接上 skip(n) 等于原序列
func TestTakeSkipConcat(t *testing.T) {
	for n := -1; n <= sample.Len()+1; n++ {
		got := linq.Concat(linq.Take(sample, n), linq.Skip(sample, n))
		assert.Equal(t, sample.ToSlice(), got.ToSlice(), "n = %d", n)
	}
}

// 测试 TakeWhile / SkipWhile
func TestTakeWhile(t *testing.T) {
	data := linq.Items(1, 2, 3, 4, 5, 1, 2)
	small := func(v int) bool { return v < 3 }

	// 遇到 3 以后就停止，后面的 1 2 不再取
	assert.Equal(t, []int{1, 2}, linq.TakeWhile(data, small).ToSlice())
	assert.Equal(t, []int{3, 4, 5, 1, 2}, linq.SkipWhile(data, small).ToSlice())

	assert.True(t, linq.TakeWhile(data, isZero).IsEmpty())
	assert.Equal(t, data.ToSlice(), linq.SkipWhile(data, isZero).ToSlice())
	assert.Equal(t, data.ToSlice(), linq.TakeWhile(data, positive).ToSlice())
	assert.True(t, linq.SkipWhile(data, positive).IsEmpty())
}

func TestTakeWhileIndexed(t *testing.T) {
	data := linq.Items(5, 4, 3, 9, 1)
	// 元素大于下标
	aboveIndex := func(i, v int) bool { return v > i }

	assert.Equal(t, []int{5, 4, 3, 9}, linq.TakeWhileIndexed(data, aboveIndex).ToSlice())
	assert.Equal(t, []int{1}, linq.SkipWhileIndexed(data, aboveIndex).ToSlice())

	firstTwo := func(i, _ int) bool { return i < 2 }
	assert.Equal(t, []int{5, 4}, linq.TakeWhileIndexed(data, firstTwo).ToSlice())
	assert.Equal(t, []int{3, 9, 1}, linq.SkipWhileIndexed(data, firstTwo).ToSlice())
}

// 测试 Chunk
func TestChunk(t *testing.T) {
	chunks, err := linq.Chunk(first, 2)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Equal(t, []int{1, 2}, chunks[0].ToSlice())
	assert.Equal(t, []int{3, 4}, chunks[1].ToSlice())
	assert.Equal(t, []int{5}, chunks[2].ToSlice())

	chunks, err = linq.Chunk(empty, 3)
	require.NoError(t, err)
	assert.Empty(t, chunks)

	_, err = linq.Chunk(first, 0)
	assert.ErrorIs(t, err, linq.ErrInvalidArgument)
}

// 测试 Window
func TestWindow(t *testing.T) {
	data := linq.Items(1, 2, 3, 4, 5, 6)

	t.Run("Tumbling", func(t *testing.T) {
		windows, err := linq.Window(data, 2, 0)
		require.NoError(t, err)
		require.Len(t, windows, 3)
		assert.Equal(t, []int{5, 6}, windows[2].ToSlice())
	})

	t.Run("Sliding", func(t *testing.T) {
		windows, err := linq.Window(data, 3, 1)
		require.NoError(t, err)
		require.Len(t, windows, 4)
		assert.Equal(t, []int{1, 2, 3}, windows[0].ToSlice())
		assert.Equal(t, []int{4, 5, 6}, windows[3].ToSlice())
	})

	t.Run("IncompleteTailDropped", func(t *testing.T) {
		windows, err := linq.Window(linq.Items(1, 2, 3, 4, 5), 2, 2)
		require.NoError(t, err)
		assert.Len(t, windows, 2)
	})

	t.Run("InvalidSize", func(t *testing.T) {
		_, err := linq.Window(data, -1, 1)
		assert.ErrorIs(t, err, linq.ErrInvalidArgument)
	})
}

// 测试 Partition
func TestPartition(t *testing.T) {
	even, odd := linq.Partition(sample, isEven)
	assert.Equal(t, []int{-4, 2, 6}, even.ToSlice())
	assert.Equal(t, []int{-1, 1, 5, 3, 5}, odd.ToSlice())
	assert.Equal(t, sample.Len(), even.Len()+odd.Len())

	matched, unmatched := linq.Partition(empty, isEven)
	assert.True(t, matched.IsEmpty())
	assert.True(t, unmatched.IsEmpty())
}
