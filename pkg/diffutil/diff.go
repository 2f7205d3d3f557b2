package diffutil

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"linq_tool/pkg/linq"
)

// DiffLine 左右对比的一行，Index 是元素下标(文本对比时是行号)，从 0 开始
// 某一侧没有内容时 Index 为 -1
type DiffLine struct {
	Left       string
	Right      string
	Mark       string // "|", "+", "-", "~"
	LeftIndex  int
	RightIndex int
}

// CompareMultiline 按行比较两段文本，空行不输出
func CompareMultiline(before, after string) []DiffLine {
	return compareLines(before, after, true)
}

func compareLines(before, after string, skipEmpty bool) []DiffLine {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(text1, text2, false)
	dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var result []DiffLine
	li, ri := 0, 0
	emit := func(d DiffLine) {
		if skipEmpty && d.Left == "" && d.Right == "" {
			return
		}
		result = append(result, d)
	}

	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		if d.Type == diffmatchpatch.DiffDelete &&
			i+1 < len(diffs) &&
			diffs[i+1].Type == diffmatchpatch.DiffInsert {

			delLines := splitLines(d.Text)
			insLines := splitLines(diffs[i+1].Text)
			for j, n := 0, max(len(delLines), len(insLines)); j < n; j++ {
				switch {
				case j >= len(insLines):
					emit(DiffLine{Left: delLines[j], Mark: "-", LeftIndex: li, RightIndex: -1})
					li++
				case j >= len(delLines):
					emit(DiffLine{Right: insLines[j], Mark: "+", LeftIndex: -1, RightIndex: ri})
					ri++
				default:
					emit(DiffLine{Left: delLines[j], Right: insLines[j], Mark: "~", LeftIndex: li, RightIndex: ri})
					li++
					ri++
				}
			}
			i++
			continue
		}

		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				emit(DiffLine{Left: line, Right: line, Mark: "|", LeftIndex: li, RightIndex: ri})
				li++
				ri++
			case diffmatchpatch.DiffDelete:
				emit(DiffLine{Left: line, Mark: "-", LeftIndex: li, RightIndex: -1})
				li++
			case diffmatchpatch.DiffInsert:
				emit(DiffLine{Right: line, Mark: "+", LeftIndex: -1, RightIndex: ri})
				ri++
			}
		}
	}
	return result
}

// splitLines 结尾的换行不产生额外的空行
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// SequenceDiff 两个序列逐行渲染后左右对比，format 为空时用 %v
// 元素内部的换行会被转义，保证一个元素一行
func SequenceDiff[T any](before, after linq.Stream[T], format func(T) string) []DiffLine {
	if format == nil {
		format = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	// 每一行都带换行符结尾，否则最后一行和中间的同内容行会被当成不同
	render := func(s linq.Stream[T]) string {
		lines := linq.Select(s, func(v T) string {
			return strings.ReplaceAll(format(v), "\n", `\n`) + "\n"
		})
		return strings.Join(lines.ToSlice(), "")
	}
	// 空字符串也是一个元素，不能跳过
	return compareLines(render(before), render(after), false)
}

// HasChanges 是否存在不是 "|" 的行
func HasChanges(diff []DiffLine) bool {
	return linq.Any(linq.Of(diff), func(d DiffLine) bool { return d.Mark != "|" })
}

