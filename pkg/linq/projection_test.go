package linq_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linq_tool/pkg/linq"
)

// 测试 Select
func TestSelect(t *testing.T) {
	squared := linq.Select(first, func(v int) int { return v * v })
	assert.Equal(t, []int{1, 4, 9, 16, 25}, squared.ToSlice())

	text := linq.Select(first, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, text.ToSlice())

	assert.True(t, linq.Select(empty, strconv.Itoa).IsEmpty())
}

func TestSelectIndexed(t *testing.T) {
	got := linq.SelectIndexed(linq.Items("a", "b", "c")).ToSlice()
	require.Len(t, got, 3)
	assert.Equal(t, linq.Indexed[string]{Index: 2, Value: "c"}, got[2])
	assert.Equal(t, "(0, a)", got[0].String())

	withIndex := linq.SelectWithIndex(first, func(i, v int) int { return i * v })
	assert.Equal(t, []int{0, 2, 6, 12, 20}, withIndex.ToSlice())
}

func TestSelectSafe(t *testing.T) {
	shared := []string{"x"}
	got := linq.SelectSafe(linq.Items(1), func(int) []string { return shared }).ToSlice()
	got[0][0] = "MODIFIED"
	assert.Equal(t, "x", shared[0])
}

func TestSelectMany(t *testing.T) {
	got := linq.SelectMany(linq.Items(1, 2, 3), func(v int) linq.Stream[int] {
		s, _ := linq.Repeat(v, v)
		return s
	})
	assert.Equal(t, []int{1, 2, 2, 3, 3, 3}, got.ToSlice())
}

type shape interface{ Area() float64 }

type square struct{ side float64 }

func (s square) Area() float64 { return s.side * s.side }

// 测试 Cast
func TestCast(t *testing.T) {
	mixed := linq.Items[any](1, 2, 3)
	got, err := linq.Cast[int](mixed)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got.ToSlice())

	_, err = linq.Cast[int](linq.Items[any](1, "two", 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, linq.ErrInvalidCast)
	assert.Contains(t, err.Error(), "element 1 of type string is not int")

	shapes, err := linq.Cast[shape](linq.Items(square{1}, square{2}))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, linq.SumBy(shapes, shape.Area), 1e-9)

	got, err = linq.Cast[int](linq.Empty[any]())
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

// 测试 OfType
func TestOfType(t *testing.T) {
	mixed := linq.Items[any](1, "a", 2.5, 2, nil, square{3}, "b")

	assert.Equal(t, []int{1, 2}, linq.OfType[int](mixed).ToSlice())
	assert.Equal(t, []string{"a", "b"}, linq.OfType[string](mixed).ToSlice())
	assert.Equal(t, 1, linq.OfType[shape](mixed).Len())
	assert.Equal(t, 1, linq.OfType[fmt.Stringer](linq.Items[any](linq.Some(1), 1)).Len())
	assert.True(t, linq.OfType[bool](mixed).IsEmpty())
}

// 测试 Convert
func TestConvert(t *testing.T) {
	got, err := linq.Convert(linq.Items("1", "2", "42"), linq.ToInt)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 42}, got.ToSlice())

	text, err := linq.Convert(linq.Items(1, 2), linq.ToString)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, text.ToSlice())

	_, err = linq.Convert(linq.Items("1", "x"), linq.ToInt)
	assert.ErrorIs(t, err, linq.ErrInvalidCast)

	flags, err := linq.Convert(linq.Items[any]("true", 0, 1), linq.ToBool)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, flags.ToSlice())
}
