package logutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetOutput(buf)
	SetLogLevel(level)
	return buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"DEBUG", DEBUG, false},
		{"info", INFO, false},
		{" Warn ", WARN, false},
		{"ERROR", ERROR, false},
		{"trace", INFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Level 要能直接绑定到 cobra 的 flag 上
func TestLevelFlagValue(t *testing.T) {
	var l Level
	require.NoError(t, l.Set("warn"))
	assert.Equal(t, WARN, l)
	assert.Equal(t, "WARN", l.String())
	assert.Equal(t, "loglevel", l.Type())
	assert.Error(t, l.Set("verbose"))
	assert.Equal(t, WARN, l)
}

func TestLogLevelFilter(t *testing.T) {
	buf := captureLogs(t, WARN)

	Debug("debug message")
	Info("info message")
	Warn("warn %d", 42)

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn 42")
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "logutil_test.go:")
}

func TestLogFormatsArgs(t *testing.T) {
	buf := captureLogs(t, DEBUG)

	type point struct {
		X int
		Y int
	}
	Debug("point: %v", point{1, 2})
	Debug("items: %v", []int{1, 2})
	Error("failed: %v", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "X: 1")
	assert.Contains(t, out, "failed: boom")
	assert.Contains(t, out, "stack=")
	// 切片按 JSON 打印
	assert.True(t, strings.Contains(out, "1,"), out)
}

func TestPrintStruct(t *testing.T) {
	type inner struct {
		Name string
	}
	type outer struct {
		ID    int
		Inner inner
	}

	got := PrintStruct(&outer{ID: 7, Inner: inner{Name: "x"}}, false)
	assert.Equal(t, "ID: 7\nInner:\n    Name: \"x\"\n", got)
	assert.Contains(t, PrintStruct(3, false), "非结构体类型")
}
