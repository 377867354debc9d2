package xresolve

import (
	"errors"
	"fmt"
)

var (
	// ErrNilResolver 表示传入的解析器为空。
	ErrNilResolver = errors.New("xresolve: nil resolver")

	// ErrEmptyName 表示待解析的名称为空。
	ErrEmptyName = errors.New("xresolve: empty name")
)

// Code 是解析器状态码的统一分类。
// 具体实现把底层状态（net.DNSError 字段、DNS Rcode）映射到这些值。
type Code uint8

const (
	// CodeInternal 表示未能进一步分类的解析器内部失败。
	CodeInternal Code = iota
	// CodeNotFound 表示名称不存在（NXDOMAIN / no such host）。
	CodeNotFound
	// CodeTimeout 表示查询超时。
	CodeTimeout
	// CodeTemporary 表示临时性失败（SERVFAIL 等），重试可能成功。
	CodeTemporary
)

// String 返回状态码的字符串表示。
func (c Code) String() string {
	switch c {
	case CodeNotFound:
		return "not_found"
	case CodeTimeout:
		return "timeout"
	case CodeTemporary:
		return "temporary"
	case CodeInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// ResolutionError 表示解析器报告的失败，携带被解析的名称和状态码。
// 永远向调用方透传，不会被静默吞掉。
type ResolutionError struct {
	// Name 是尝试解析的名称。
	Name string
	// Code 是解析器状态码的统一分类。
	Code Code
	// Err 是底层解析器错误。
	Err error
}

// Error 实现 error 接口。
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("xresolve: resolve %q failed (%s): %v", e.Name, e.Code, e.Err)
}

// Unwrap 返回底层错误，支持 errors.Is/As 链式判断。
func (e *ResolutionError) Unwrap() error {
	return e.Err
}
