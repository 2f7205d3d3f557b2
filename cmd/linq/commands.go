package main

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"linq_tool/pkg/diffutil"
	"linq_tool/pkg/errorutil"
	"linq_tool/pkg/linq"
	"linq_tool/pkg/logutil"
	"linq_tool/pkg/seqjson"
)

// --match 对应的条件，没有指定时不加条件
func matchPreds(cmd *cobra.Command, path, match string) []func(gjson.Result) bool {
	if !cmd.Flags().Changed("match") {
		return nil
	}
	key := seqjson.KeyString(path)
	return []func(gjson.Result) bool{
		func(r gjson.Result) bool { return key(r) == match },
	}
}

// 键全部是数字时按数字比较，否则按字符串比较
func numericKeys(s linq.Stream[gjson.Result], path string) bool {
	return linq.All(s, func(r gjson.Result) bool {
		return seqjson.Value(r, path).Type == gjson.Number
	})
}

func decimalKey(path string) func(gjson.Result) decimal.Decimal {
	return func(r gjson.Result) decimal.Decimal {
		d, err := decimal.NewFromString(seqjson.Value(r, path).String())
		if err != nil {
			return decimal.Zero
		}
		return d
	}
}

func countCmd(opts *rootOptions) *cobra.Command {
	var match string
	cmd := &cobra.Command{
		Use:   "count",
		Short: "元素个数，--match 只统计键等于指定值的元素",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}
			n := linq.Count(s, matchPreds(cmd, opts.path, match)...)
			return opts.printer(cmd).value("count", n)
		},
	}
	cmd.Flags().StringVarP(&match, "match", "m", "", "键需要等于的值")
	return cmd
}

func firstCmd(opts *rootOptions, use, short string,
	pick func(linq.Stream[gjson.Result], ...func(gjson.Result) bool) linq.Optional[gjson.Result]) *cobra.Command {
	var match string
	cmd := &cobra.Command{
		Use:   use,
		Short: short + "，序列为空时报错",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}
			v, err := pick(s, matchPreds(cmd, opts.path, match)...).MustGet()
			if err != nil {
				return err
			}
			return opts.printer(cmd).value(use, v)
		},
	}
	cmd.Flags().StringVarP(&match, "match", "m", "", "键需要等于的值")
	return cmd
}

func extremeCmd(opts *rootOptions, use, short string,
	byNumber func(linq.Stream[gjson.Result], func(gjson.Result) float64) linq.Optional[gjson.Result],
	byString func(linq.Stream[gjson.Result], func(gjson.Result) string) linq.Optional[gjson.Result],
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short + "，键全部是数字时按数字比较",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}
			var result linq.Optional[gjson.Result]
			if numericKeys(s, opts.path) {
				result = byNumber(s, seqjson.KeyNumber(opts.path))
			} else {
				result = byString(s, seqjson.KeyString(opts.path))
			}
			v, err := result.MustGet()
			if err != nil {
				return err
			}
			return opts.printer(cmd).value(use, v)
		},
	}
}

func sumCmd(opts *rootOptions) *cobra.Command {
	var precise bool
	cmd := &cobra.Command{
		Use:   "sum",
		Short: "键求和，空序列结果为 0",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}
			if precise {
				sum := linq.SumDecimal(s, decimalKey(opts.path))
				return opts.printer(cmd).value("sum", json.Number(sum.String()))
			}
			return opts.printer(cmd).value("sum", linq.SumBy(s, seqjson.KeyNumber(opts.path)))
		},
	}
	cmd.Flags().BoolVarP(&precise, "decimal", "d", false, "使用十进制定点数计算，不丢精度")
	return cmd
}

func averageCmd(opts *rootOptions) *cobra.Command {
	var precise bool
	cmd := &cobra.Command{
		Use:   "average",
		Short: "键的平均值，序列为空时报错",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}
			if precise {
				avg, err := linq.AverageDecimal(s, decimalKey(opts.path))
				if err != nil {
					return err
				}
				return opts.printer(cmd).value("average", json.Number(avg.String()))
			}
			avg, err := linq.AverageBy(s, seqjson.KeyNumber(opts.path))
			if err != nil {
				return err
			}
			return opts.printer(cmd).value("average", avg)
		},
	}
	cmd.Flags().BoolVarP(&precise, "decimal", "d", false, "使用十进制定点数计算，不丢精度")
	return cmd
}

func orderByCmd(opts *rootOptions) *cobra.Command {
	var desc bool
	cmd := &cobra.Command{
		Use:   "orderby",
		Short: "按键稳定排序，键相同的元素保持原来的顺序",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}

			var sorted linq.Stream[gjson.Result]
			switch numeric := numericKeys(s, opts.path); {
			case numeric && desc:
				sorted = linq.OrderByDescending(s, seqjson.KeyNumber(opts.path))
			case numeric:
				sorted = linq.OrderBy(s, seqjson.KeyNumber(opts.path))
			case desc:
				sorted = linq.OrderByDescending(s, seqjson.KeyString(opts.path))
			default:
				sorted = linq.OrderBy(s, seqjson.KeyString(opts.path))
			}
			return opts.printer(cmd).stream(sorted)
		},
	}
	cmd.Flags().BoolVar(&desc, "desc", false, "降序")
	return cmd
}

func reverseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse",
		Short: "反转顺序",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}
			return opts.printer(cmd).stream(linq.Reverse(s))
		},
	}
}

func takeSkipCmd(opts *rootOptions, use, short string,
	op func(linq.Stream[gjson.Result], int) linq.Stream[gjson.Result]) *cobra.Command {
	return &cobra.Command{
		Use:   use + " N",
		Short: short + "，N 超过长度时按长度处理",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cast.ToIntE(args[0])
			if err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "N 必须是整数", err)
			}
			s, err := opts.load()
			if err != nil {
				return err
			}
			return opts.printer(cmd).stream(op(s, n))
		},
	}
}

func distinctCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "distinct",
		Short: "按键去重，保留第一次出现的元素",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}
			unique := linq.DistinctBy(s, seqjson.SameKey(opts.path))
			logutil.Debug("distinct: %d 个元素, 去重后 %d 个", s.Len(), unique.Len())
			return opts.printer(cmd).stream(unique)
		},
	}
}

func setCmd(opts *rootOptions, use, short string,
	op func(a, b linq.Stream[gjson.Result], eq func(x, y gjson.Result) bool) linq.Stream[gjson.Result]) *cobra.Command {
	return &cobra.Command{
		Use:   use + " OTHER",
		Short: short + "，元素按键的原始 JSON 判断是否相等",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := opts.loadPair(args[0])
			if err != nil {
				return err
			}
			return opts.printer(cmd).stream(op(a, b, seqjson.SameKey(opts.path)))
		},
	}
}

func concatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "concat OTHER",
		Short: "把 OTHER 的元素接在输入后面",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := opts.loadPair(args[0])
			if err != nil {
				return err
			}
			return opts.printer(cmd).stream(linq.Concat(a, b))
		},
	}
}

func diffCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff OTHER",
		Short: "逐个元素比较两个序列，不相同时左右对比输出并返回 1",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := opts.loadPair(args[0])
			if err != nil {
				return err
			}
			if linq.SequenceEqualBy(a, b, seqjson.SameKey(opts.path)) {
				fmt.Fprintln(cmd.OutOrStdout(), "两个序列相同")
				return nil
			}
			diff := diffutil.SequenceDiff(a, b, seqjson.KeyRaw(opts.path))
			fmt.Fprintln(cmd.OutOrStdout(), diffutil.FormatSideBySide(diff))
			return errorutil.NewCmdFailure(1, "两个序列不相同", nil)
		},
	}
}
