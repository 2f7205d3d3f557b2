package seqjson

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"linq_tool/pkg/errorutil"
	"linq_tool/pkg/linq"
	"linq_tool/pkg/logutil"
)

var (
	ErrInvalidJSON  = errors.New("invalid json")
	ErrPathNotFound = errors.New("path not found")
	// ErrNotArray 输入的 JSON 不是数组
	ErrNotArray = errors.New("json input is not an array")
)

// Stdin 作为文件名时表示从标准输入读取
const Stdin = "-"

// Load 读取一个 JSON 数组，每个元素是流中的一项
// 如果指定了 path，先用 gjson 路径取出数组再展开
func Load(r io.Reader, path string) (linq.Stream[gjson.Result], error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return linq.Empty[gjson.Result](), errorutil.NewExitErrorWithMessage(
			errorutil.CodeIOError, "读取失败", err)
	}
	return Parse(raw, path)
}

// LoadFile 从文件读取，name 为 "-" 时读取标准输入
func LoadFile(name string, path string) (linq.Stream[gjson.Result], error) {
	if name == "" || name == Stdin {
		logutil.Debug("从标准输入读取 JSON")
		return Load(os.Stdin, path)
	}

	f, err := os.Open(name)
	if err != nil {
		return linq.Empty[gjson.Result](), errorutil.NewExitErrorWithMessage(
			errorutil.CodeMissingInput, fmt.Sprintf("无法打开文件 %s", name), err)
	}
	defer f.Close()

	logutil.Debug("读取 JSON 文件: %s", name)
	return Load(f, path)
}

func Parse(raw []byte, path string) (linq.Stream[gjson.Result], error) {
	// 校验 JSON 格式
	if !gjson.ValidBytes(raw) {
		return linq.Empty[gjson.Result](), errorutil.NewExitErrorWithMessage(
			errorutil.CodeInvalidData, "输入内容不是有效的 JSON", ErrInvalidJSON)
	}

	var result gjson.Result
	if strings.TrimSpace(path) == "" {
		result = gjson.ParseBytes(raw)
	} else {
		result = gjson.GetBytes(raw, path)
		if !result.Exists() {
			return linq.Empty[gjson.Result](), errorutil.NewExitErrorWithMessage(
				errorutil.CodeInvalidData, fmt.Sprintf("字段 %q 不存在", path),
				fmt.Errorf("%w: %s", ErrPathNotFound, path))
		}
	}

	if !result.IsArray() {
		return linq.Empty[gjson.Result](), errorutil.NewExitErrorWithMessage(
			errorutil.CodeInvalidData, "需要一个 JSON 数组", ErrNotArray)
	}

	items := linq.Of(result.Array())
	logutil.Debug("加载了 %d 个元素", items.Len())
	return items, nil
}

// JoinPath 把多段键拼成 gjson 路径，键里的 . [ ] 会被转义
func JoinPath(parts ...string) string {
	escaped := linq.Select(linq.Of(parts), func(p string) string {
		p = strings.ReplaceAll(p, ".", `\.`)
		p = strings.ReplaceAll(p, "[", `\[`)
		p = strings.ReplaceAll(p, "]", `\]`)
		return p
	})
	return strings.Join(escaped.ToSlice(), ".")
}

// Value 取出元素本身或者元素下 path 对应的值
func Value(r gjson.Result, path string) gjson.Result {
	if path == "" {
		return r
	}
	return r.Get(path)
}

// KeyString 按字符串取键，不存在时为空字符串
func KeyString(path string) func(gjson.Result) string {
	return func(r gjson.Result) string { return Value(r, path).String() }
}

// KeyNumber 按数字取键，不是数字的按 0 处理
func KeyNumber(path string) func(gjson.Result) float64 {
	return func(r gjson.Result) float64 { return Value(r, path).Float() }
}

// KeyRaw 原始 JSON 文本，用来判断两个元素是否相等
func KeyRaw(path string) func(gjson.Result) string {
	return func(r gjson.Result) string { return strings.TrimSpace(Value(r, path).Raw) }
}

// SameKey 两个元素在 path 下的原始 JSON 相同即认为相等
func SameKey(path string) func(a, b gjson.Result) bool {
	key := KeyRaw(path)
	return func(a, b gjson.Result) bool { return key(a) == key(b) }
}

// Encode 把流重新编码成 JSON 数组，indent 为 true 时美化输出
func Encode(s linq.Stream[gjson.Result], indent bool) ([]byte, error) {
	out := []byte("[]")
	var err error
	s.ForEach(func(r gjson.Result) {
		if err != nil {
			return
		}
		raw := r.Raw
		if raw == "" {
			raw = "null"
		}
		// -1 表示追加到数组末尾
		out, err = sjson.SetRawBytes(out, "-1", []byte(raw))
	})
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInternalErr, "编码 JSON 失败", err)
	}
	return format(out, indent), nil
}

// EncodeValues 普通 Go 值组成的流，比如 Select 之后的结果
func EncodeValues[T any](s linq.Stream[T], indent bool) ([]byte, error) {
	out := []byte("[]")
	var err error
	s.ForEach(func(v T) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, "-1", v)
	})
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInternalErr, "编码 JSON 失败", err)
	}
	return format(out, indent), nil
}

// EncodeValue 单个值，标量查询(count/sum/first)的输出
func EncodeValue(v any, indent bool) ([]byte, error) {
	if r, ok := v.(gjson.Result); ok {
		raw := r.Raw
		if raw == "" {
			raw = "null"
		}
		return format([]byte(raw), indent), nil
	}
	out, err := sjson.SetBytes([]byte(`{"v":null}`), "v", v)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInternalErr, "编码 JSON 失败", err)
	}
	return format([]byte(gjson.GetBytes(out, "v").Raw), indent), nil
}

func format(data []byte, indent bool) []byte {
	if indent {
		return pretty.PrettyOptions(data, &pretty.Options{Width: 80, Indent: "    "})
	}
	return append(pretty.Ugly(data), '\n')
}
