package linq

import (
	"errors"
	"fmt"
)

// 组合函数返回的哨兵错误，调用方用 errors.Is 判断
var (
	// ErrEmptySequence 需要至少一个元素的操作遇到了空序列(Average、Single)
	ErrEmptySequence = errors.New("linq: sequence contains no elements")

	// ErrInvalidArgument 参数结构上不合法，比如 Range/Repeat 的负数 count
	ErrInvalidArgument = errors.New("linq: invalid argument")

	// ErrInvalidCast 元素不能转换成目标类型
	ErrInvalidCast = errors.New("linq: invalid cast")

	// ErrMultipleElements Single 遇到了不止一个满足条件的元素
	ErrMultipleElements = errors.New("linq: sequence contains more than one matching element")

	// ErrDuplicateKey ToMap 遇到了重复的键，同时也是 ErrInvalidArgument
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrInvalidArgument)
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
