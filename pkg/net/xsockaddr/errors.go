package xsockaddr

import "errors"

var (
	// ErrInvalidLiteral 表示文本不是合法的数字 IP 字面量（主机名也会被拒绝）。
	ErrInvalidLiteral = errors.New("xsockaddr: invalid numeric host literal")

	// ErrInvalidAddress 表示传入的 netip.Addr 无效（零值）。
	ErrInvalidAddress = errors.New("xsockaddr: invalid address")

	// ErrFamilyMismatch 表示操作对当前地址族不适用。
	ErrFamilyMismatch = errors.New("xsockaddr: operation not applicable to address family")

	// ErrShortBuffer 表示原生结构缓冲区长度不足以容纳对应族的字段。
	ErrShortBuffer = errors.New("xsockaddr: buffer too short")
)
