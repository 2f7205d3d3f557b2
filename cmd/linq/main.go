package main

import (
	"fmt"
	"io"
	"os"

	"linq_tool/pkg/errorutil"
	"linq_tool/pkg/logutil"
)

const TOOL_VERSION = "1.0.0+20251017"

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		code := reportError(os.Stderr, err)
		logutil.CloseLogger()
		os.Exit(code)
	}

	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(0)
}

// reportError 记录日志，向 w 输出一行可读消息和一行 JSON 错误体，返回进程退出码
func reportError(w io.Writer, err error) int {
	err = errorutil.FromLinqError(err)
	body, code := errorutil.FormatErrorAndCode(err)

	msg := errorutil.UserMessage(err)
	if msg == "" {
		msg = "命令执行失败"
	}
	root := errorutil.RootError(err)

	// diff 不相同之类的业务失败不算程序错误
	if errorutil.ExitCodeFromError(err) == errorutil.CodeCmdFailed {
		logutil.Warn("%s, 退出码 %d", msg, code)
	} else {
		logutil.Error("%s: %v", msg, root)
	}

	if root != nil && !errorutil.HasExitCode(root) {
		fmt.Fprintf(w, "错误: %s: %v\n", msg, root)
	} else {
		fmt.Fprintf(w, "错误: %s\n", msg)
	}
	fmt.Fprintln(w, body)
	return code
}
