package initutil

import (
	"fmt"
	"strings"
	"sync"

	"linq_tool/pkg/logutil"
)

// 环境变量兜底，命令行参数优先
const (
	EnvLogLevel = "LINQ_LOG_LEVEL"
	EnvOutput   = "LINQ_OUTPUT"
	EnvLogFile  = "LINQ_LOG_FILE"
)

// OutputFormat 命令结果的输出格式
type OutputFormat string

const (
	OutputJSON   OutputFormat = "json"   // 一行 JSON
	OutputPretty OutputFormat = "pretty" // 美化后的 JSON
	OutputTable  OutputFormat = "table"  // 表格
)

// 为了让 VarP 接收自定义类型，实现 flag.Value 接口(String Set Type)即可：
func (f *OutputFormat) String() string { return string(*f) }

func (f *OutputFormat) Set(val string) error {
	switch OutputFormat(val) {
	case OutputJSON, OutputPretty, OutputTable:
		*f = OutputFormat(val)
		return nil
	default:
		return fmt.Errorf("无效的输出格式: %s (%s)", val, strings.Join(f.Values(), "|"))
	}
}

func (f *OutputFormat) Type() string {
	return "output"
}

// 列出所有的合法值
func (OutputFormat) Values() []string {
	return []string{string(OutputJSON), string(OutputPretty), string(OutputTable)}
}

// Options 来自命令行的原始值，空值表示用户没有指定
type Options struct {
	LogFile  string
	LogLevel string
	Output   string
}

type Config struct {
	LogFile  string
	LogLevel logutil.Level
	Output   OutputFormat
}

func DefaultConfig() Config {
	return Config{
		LogFile:  "stderr",
		LogLevel: logutil.WARN,
		Output:   OutputPretty,
	}
}

var once sync.Once

// BuildConfig 合并默认值、环境变量和命令行参数
func BuildConfig(opts Options, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := pick(opts.LogFile, getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
	if v := pick(opts.LogLevel, getenv(EnvLogLevel)); v != "" {
		if err := cfg.LogLevel.Set(v); err != nil {
			return cfg, err
		}
	}
	if v := pick(opts.Output, getenv(EnvOutput)); v != "" {
		if err := cfg.Output.Set(v); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func pick(flagValue, envValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return strings.TrimSpace(envValue)
}

// InitSystem 按合并好的配置初始化日志，只有第一次调用生效
// 每次命令执行的配置由 BuildConfig 单独得到，不保存在全局
func InitSystem(cfg Config) error {
	var initErr error
	once.Do(func() {
		if err := logutil.InitLogger(cfg.LogFile, cfg.LogLevel); err != nil {
			initErr = err
			return
		}
		logutil.Debug("config struct: %v", cfg)
	})
	return initErr
}
