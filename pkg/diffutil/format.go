package diffutil

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	beforeTitle = "* Before"
	afterTitle  = "* After"
)

// FormatSideBySide 渲染成左右两栏，每栏前面是元素下标
//
//	   * Before     * After
//	0  1         |  0  1
//	2  3         ~  2  4
//
// fmt 的宽度按字符数计算，中文占两列，所以补齐宽度要换算:
// 字符数 + (最大显示宽度 - 当前显示宽度)
func FormatSideBySide(diff []DiffLine) string {
	// 模糊宽度的字符(比如制表符号)按 1 列算，不依赖终端的 locale
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	leftWidth := cond.StringWidth(beforeTitle)
	indexWidth := 1
	for _, d := range diff {
		leftWidth = max(leftWidth, cond.StringWidth(d.Left))
		for _, i := range []int{d.LeftIndex, d.RightIndex} {
			if i >= 0 {
				indexWidth = max(indexWidth, len(strconv.Itoa(i)))
			}
		}
	}

	pad := func(s string) int {
		return utf8.RuneCountInString(s) + leftWidth - cond.StringWidth(s)
	}
	index := func(i int) string {
		if i < 0 {
			return strings.Repeat(" ", indexWidth)
		}
		return fmt.Sprintf("%*d", indexWidth, i)
	}
	row := func(li int, left, mark string, ri int, right string) string {
		line := fmt.Sprintf("%s  %-*s  %s  %s  %s", index(li), pad(left), left, mark, index(ri), right)
		return strings.TrimRight(line, " ")
	}

	header := row(-1, beforeTitle, " ", -1, afterTitle)
	out := []string{header, strings.Repeat("-", cond.StringWidth(header))}
	for _, d := range diff {
		out = append(out, row(d.LeftIndex, d.Left, d.Mark, d.RightIndex, d.Right))
	}
	return strings.Join(out, "\n")
}
