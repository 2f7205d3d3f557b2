package diffutil

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linq_tool/pkg/linq"
)

func TestCompareMultiline_BasicStructure(t *testing.T) {
	before := `
┌──>A(h=1)
│   └──>B(h=2)
└──>C(h=3)`
	after := `
┌──>A(h=1)
│   └──>B(h=2)
└──>D(h=3)`

	diff := CompareMultiline(before, after)
	require.NotEmpty(t, diff)
	last := diff[len(diff)-1]
	// 开头的空行也占一个行号
	assert.Equal(t, DiffLine{Left: "└──>C(h=3)", Right: "└──>D(h=3)", Mark: "~", LeftIndex: 3, RightIndex: 3}, last)
	assert.True(t, HasChanges(diff))

	output := FormatSideBySide(diff)
	t.Log("\nBasic Structure Diff:\n" + output)
}

func TestCompareMultiline_ChineseCharacters(t *testing.T) {
	before := `
┌──>你好(h=1)
│   └──>世界(h=2)
└──>测试(h=3)`
	after := `
┌──>你好(h=1)
│   └──>地球(h=2)
└──>测试(h=3)`

	output := FormatSideBySide(CompareMultiline(before, after))
	lines := strings.Split(output, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "* Before")
	assert.Contains(t, output, "地球")
	t.Log("\nChinese Character Diff:\n" + output)
}

func TestSequenceDiff(t *testing.T) {
	t.Run("Changed", func(t *testing.T) {
		diff := SequenceDiff(linq.Items(1, 2, 3), linq.Items(1, 2, 4), nil)
		want := []DiffLine{
			{Left: "1", Right: "1", Mark: "|", LeftIndex: 0, RightIndex: 0},
			{Left: "2", Right: "2", Mark: "|", LeftIndex: 1, RightIndex: 1},
			{Left: "3", Right: "4", Mark: "~", LeftIndex: 2, RightIndex: 2},
		}
		assert.Equal(t, want, diff)
	})

	t.Run("Appended", func(t *testing.T) {
		diff := SequenceDiff(linq.Items(1, 2), linq.Items(1, 2, 3), nil)
		require.Len(t, diff, 3)
		assert.Equal(t, DiffLine{Left: "", Right: "3", Mark: "+", LeftIndex: -1, RightIndex: 2}, diff[2])
	})

	t.Run("Removed", func(t *testing.T) {
		diff := SequenceDiff(linq.Items("a", "b", "c"), linq.Items("a", "c"), nil)
		want := []DiffLine{
			{Left: "a", Right: "a", Mark: "|", LeftIndex: 0, RightIndex: 0},
			{Left: "b", Mark: "-", LeftIndex: 1, RightIndex: -1},
			{Left: "c", Right: "c", Mark: "|", LeftIndex: 2, RightIndex: 1},
		}
		assert.Equal(t, want, diff)
	})

	t.Run("EmptyElements", func(t *testing.T) {
		diff := SequenceDiff(linq.Items("", "x"), linq.Items("", "x"), nil)
		require.Len(t, diff, 2)
		assert.Equal(t, DiffLine{Mark: "|", LeftIndex: 0, RightIndex: 0}, diff[0])
		assert.False(t, HasChanges(diff))
	})

	t.Run("Equal", func(t *testing.T) {
		diff := SequenceDiff(linq.Items("a", "b"), linq.Items("a", "b"), nil)
		assert.False(t, HasChanges(diff))
		assert.Len(t, diff, 2)
	})

	t.Run("CustomFormat", func(t *testing.T) {
		quote := func(s string) string { return "<" + s + ">" }
		diff := SequenceDiff(linq.Items("x\ny"), linq.Items("x\ny"), quote)
		require.Len(t, diff, 1)
		assert.Equal(t, `<x\ny>`, diff[0].Left)
	})
}

func TestFormatSideBySide_Alignment(t *testing.T) {
	diff := []DiffLine{
		{Left: "中文", Right: "中文", Mark: "|", LeftIndex: 0, RightIndex: 0},
		{Left: "ab", Right: "", Mark: "-", LeftIndex: 1, RightIndex: -1},
	}
	lines := strings.Split(FormatSideBySide(diff), "\n")
	require.Len(t, lines, 4)
	// 按显示宽度对齐，分隔符在同一列
	col := func(line, mark string) int {
		return runewidth.StringWidth(line[:strings.Index(line, mark)])
	}
	assert.Equal(t, col(lines[2], "|"), col(lines[3], "-"))
}

func TestFormatSideBySide_Indices(t *testing.T) {
	before := linq.Items("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k")
	after := linq.Items("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "K")
	lines := strings.Split(FormatSideBySide(SequenceDiff(before, after, nil)), "\n")
	require.Len(t, lines, 13)

	// 下标按最大的宽度右对齐
	assert.Equal(t, " 0  a         |   0  a", lines[2])
	assert.Equal(t, "10  k         ~  10  K", lines[12])
	assert.True(t, strings.HasPrefix(lines[0], "    * Before"))
}
