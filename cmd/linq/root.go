package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tidwall/gjson"

	"linq_tool/pkg/errorutil"
	"linq_tool/pkg/initutil"
	"linq_tool/pkg/linq"
	"linq_tool/pkg/logutil"
	"linq_tool/pkg/seqjson"
)

// 自定义类型要能直接用 VarP 绑定
var (
	_ pflag.Value = (*logutil.Level)(nil)
	_ pflag.Value = (*initutil.OutputFormat)(nil)
)

type rootOptions struct {
	input    string
	array    string
	path     string
	logFile  string
	logLevel logutil.Level
	output   initutil.OutputFormat

	cfg initutil.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{
		logLevel: logutil.WARN,
		output:   initutil.OutputPretty,
	}

	rootCmd := &cobra.Command{
		Use:   "linq",
		Short: fmt.Sprintf("linq v%s 对 JSON 数组做 LINQ 风格的查询和变换", TOOL_VERSION),
		Long: fmt.Sprintf(`linq v%s 对 JSON 数组做 LINQ 风格的查询和变换

输入是一个 JSON 数组(文件或者标准输入)，--array 可以指定数组所在的 gjson 路径，
--path 指定每个元素上用来比较、排序、求和的键，不指定时使用元素本身。

Examples:

1. 计数和求和
cat people.json | linq count
linq sum -i people.json -p age

2. 排序
linq orderby -i people.json -p name
linq orderby -i people.json -p age --desc -o table

3. 集合运算，第二个序列通过参数传入
linq union -i a.json b.json -p id
linq except -i a.json b.json

4. 比较两个序列，不相同时退出码为 1
linq diff -i before.json after.json
`, TOOL_VERSION),
	}

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.input, "input", "i", seqjson.Stdin, "输入的 JSON 文件(- 表示标准输入)")
	flags.StringVarP(&opts.array, "array", "a", "", "数组在输入 JSON 中的 gjson 路径(默认整个输入)")
	flags.StringVarP(&opts.path, "path", "p", "", "元素上的 gjson 键路径(默认元素本身)")
	flags.VarP(&opts.logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	flags.StringVarP(&opts.logFile, "log-file", "l", "", "日志文件名(默认标准错误，stdout 表示标准输出)")
	flags.VarP(&opts.output, "output", "o", "输出格式(json|pretty|table)")

	// 阻止 Cobra 在命令参数错误时输出帮助
	rootCmd.SilenceUsage = true
	// 阻止Cobra自动打印RunEs返回的错误内容
	rootCmd.SilenceErrors = true
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "参数错误", err)
	})

	// PersistentPreRunE 回调，这个钩子会在用户的命令解析完成、flag 值填充后执行
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return opts.init(cmd)
	}

	rootCmd.AddCommand(
		countCmd(opts),
		firstCmd(opts, "first", "第一个元素", linq.First[gjson.Result]),
		firstCmd(opts, "last", "最后一个元素", linq.Last[gjson.Result]),
		extremeCmd(opts, "min", "键最小的元素", linq.MinByElement[gjson.Result, float64], linq.MinByElement[gjson.Result, string]),
		extremeCmd(opts, "max", "键最大的元素", linq.MaxByElement[gjson.Result, float64], linq.MaxByElement[gjson.Result, string]),
		sumCmd(opts),
		averageCmd(opts),
		orderByCmd(opts),
		reverseCmd(opts),
		takeSkipCmd(opts, "take", "取前 N 个元素", linq.Take[gjson.Result]),
		takeSkipCmd(opts, "skip", "跳过前 N 个元素", linq.Skip[gjson.Result]),
		distinctCmd(opts),
		setCmd(opts, "union", "并集(按第一次出现的顺序)", linq.UnionBy[gjson.Result]),
		setCmd(opts, "intersect", "交集", linq.IntersectBy[gjson.Result]),
		setCmd(opts, "except", "差集，保留左边的重复元素", linq.ExceptBy[gjson.Result]),
		concatCmd(opts),
		diffCmd(opts),
	)

	return rootCmd
}

// 命令行参数优先，没有指定的交给环境变量和默认值
func (o *rootOptions) init(cmd *cobra.Command) error {
	var raw initutil.Options
	if cmd.Flags().Changed("log-file") {
		raw.LogFile = o.logFile
	}
	if cmd.Flags().Changed("log-level") {
		raw.LogLevel = o.logLevel.String()
	}
	if cmd.Flags().Changed("output") {
		raw.Output = o.output.String()
	}

	cfg, err := initutil.BuildConfig(raw, os.Getenv)
	if err != nil {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeConfigError, "配置错误", err)
	}
	if err := initutil.InitSystem(cfg); err != nil {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeConfigError, "初始化失败", err)
	}
	o.cfg = cfg
	logutil.Info("执行命令 %s, input=%s array=%q path=%q", cmd.Name(), o.input, o.array, o.path)
	return nil
}

func (o *rootOptions) load() (linq.Stream[gjson.Result], error) {
	return seqjson.LoadFile(o.input, o.array)
}

// 第二个序列，集合运算使用
func (o *rootOptions) loadOther(name string) (linq.Stream[gjson.Result], error) {
	return seqjson.LoadFile(name, o.array)
}

func (o *rootOptions) printer(cmd *cobra.Command) *printer {
	return &printer{out: cmd.OutOrStdout(), format: o.cfg.Output, path: o.path}
}

// 参数个数错误属于用法错误
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "参数个数错误", err)
		}
		return nil
	}
}

func (o *rootOptions) loadPair(other string) (linq.Stream[gjson.Result], linq.Stream[gjson.Result], error) {
	a, err := o.load()
	if err != nil {
		return a, linq.Empty[gjson.Result](), err
	}
	b, err := o.loadOther(other)
	return a, b, err
}
