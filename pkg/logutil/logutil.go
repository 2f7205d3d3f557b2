package logutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level 日志级别，值越小打印得越多
type Level int

const (
	DEBUG Level = iota // 0
	INFO               // 1
	WARN               // 2
	ERROR              // 3
)

// 定义日志级别映射字符串
var LOG_LEVELS = map[string]Level{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
}

func (l Level) String() string {
	for name, v := range LOG_LEVELS {
		if v == l {
			return name
		}
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// 为了让 VarP 接收自定义类型，实现 pflag.Value 接口(String Set Type)
func (l *Level) Set(val string) error {
	v, err := ParseLevel(val)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func (l *Level) Type() string {
	return "loglevel"
}

// ParseLevel 不区分大小写
func ParseLevel(val string) (Level, error) {
	v, ok := LOG_LEVELS[strings.ToUpper(strings.TrimSpace(val))]
	if !ok {
		return INFO, fmt.Errorf("无效的日志等级: %q (DEBUG/INFO/WARN/ERROR)", val)
	}
	return v, nil
}

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case DEBUG:
		return logrus.DebugLevel
	case WARN:
		return logrus.WarnLevel
	case ERROR:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

var (
	logger  *logrus.Logger
	logFile *os.File
	once    sync.Once
	mu      sync.Mutex
)

func newLogger(out io.Writer, level Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level.logrusLevel())
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	return l
}

// InitLogger 初始化日志，允许指定输出目标（stdout 或 文件）
// 只有第一次调用生效
func InitLogger(output string, level Level) error {
	var initErr error
	once.Do(func() {
		out := io.Writer(os.Stdout)
		switch output {
		case "", "stdout":
		case "stderr":
			out = os.Stderr
		default:
			f, err := os.OpenFile(
				// 以追加模式打开日志文件，不会覆盖已有内容
				output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				initErr = fmt.Errorf("无法创建日志文件 %s: %w", output, err)
				return
			}
			logFile = f
			out = f
		}
		mu.Lock()
		logger = newLogger(out, level)
		mu.Unlock()
	})
	return initErr
}

// SetOutput 直接替换输出目标，测试里用来捕获日志
func SetOutput(w io.Writer) {
	current().SetOutput(w)
}

// 设置日志级别
func SetLogLevel(level Level) {
	current().SetLevel(level.logrusLevel())
}

func current() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		// 没有初始化时默认输出到标准错误，不污染命令的标准输出
		logger = newLogger(os.Stderr, INFO)
	}
	return logger
}

// logMessage 记录日志，**仅输出符合当前级别的日志**
func logMessage(level Level, fields logrus.Fields, msg string, args ...any) {
	l := current()
	if !l.IsLevelEnabled(level.logrusLevel()) {
		return
	}

	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	entry := l.WithField("caller", fmt.Sprintf("%s:%d", filepath.Base(file), line))
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}

	var formattedArgs []any
	for _, arg := range args {
		// 使用了反射效率低点，但是结构体更美观
		v := reflect.ValueOf(arg)
		// 先检查是否是指针，如果是，则解引用
		if v.Kind() == reflect.Ptr && !v.IsNil() {
			v = v.Elem()
		}

		switch v.Kind() {
		case reflect.Struct:
			// error 保持原样，交给 %v 处理
			if _, ok := arg.(error); ok {
				formattedArgs = append(formattedArgs, arg)
				continue
			}
			formattedArgs = append(formattedArgs, "\n"+PrintStruct(arg, false))
		case reflect.Slice, reflect.Map:
			// 如果是集合类型，转换为 JSON
			jsonData, err := json.MarshalIndent(arg, "", "    ")
			if err != nil {
				formattedArgs = append(
					formattedArgs, fmt.Sprintf("无法格式化: %v", err))
			} else {
				formattedArgs = append(formattedArgs, string(jsonData))
			}
		default:
			formattedArgs = append(formattedArgs, arg) // 直接使用原值
		}
	}

	entry.Log(level.logrusLevel(), fmt.Sprintf(msg, formattedArgs...))
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, nil, msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, nil, msg, args...)
}

// Error 记录 ERROR 日志，DEBUG 级别下附带调用堆栈
func Error(msg string, args ...any) {
	var fields logrus.Fields
	if current().IsLevelEnabled(logrus.DebugLevel) {
		fields = logrus.Fields{"stack": stack()}
	}
	logMessage(ERROR, fields, msg, args...)
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	// 确保参数被展开在传入进去
	logMessage(DEBUG, nil, msg, args...)
}

func stack() string {
	size := 1024 // 初始缓冲区大小
	for {
		buf := make([]byte, size)
		n := runtime.Stack(buf, false)
		if n < size {
			return string(buf[:n])
		}
		// 扩展缓冲区大小，倍增策略
		size *= 2
	}
}

// 关闭日志文件（如果有的话）
func CloseLogger() error {
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		if err != nil {
			return err
		}
	}
	return nil
}

// 递归格式化结构体信息
func formatStruct(s any, indent string) string {
	v := reflect.ValueOf(s)
	// 先检查是否是指针，如果是，则解引用
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	// 处理非结构体类型
	if v.Kind() != reflect.Struct {
		return fmt.Sprintf("%s非结构体类型: %#v\n", indent, v.Kind())
	}
	t := v.Type()

	var builder strings.Builder
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)

		if value.Kind() != reflect.Struct {
			// 如果不是嵌套结构体，就直接打印内容
			builder.WriteString(fmt.Sprintf("%s%s: %#v\n", indent, field.Name, value))
		} else {
			// 如果是嵌套结构体,先打印标头,再递归处理
			builder.WriteString(fmt.Sprintf("%s%s:\n", indent, field.Name))
			if field.IsExported() {
				builder.WriteString(formatStruct(value.Interface(), indent+"    "))
			}
		}
	}

	return builder.String()
}

// 打印结构体信息（支持控制是否输出到标准输出）
func PrintStruct(s any, printToStdout bool) string {
	result := formatStruct(s, "")

	if printToStdout {
		fmt.Print(result) // 直接打印到标准输出
	}

	return result // 返回格式化字符串
}
