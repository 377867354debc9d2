package xsockaddr

import (
	"fmt"
	"net"
	"net/netip"
)

// ParseNumericHost 尝试把 text 解释为数字 IPv4/IPv6 字面量
// （不做主机名解析，不产生任何 DNS 流量；主机名需经 xresolve）。
// 成功时用解析出的族和地址替换缓冲区，当前端口保留——纯字面量解析
// 不设置端口。IPv6 字面量的 zone（数字或接口名，如 "fe80::1%3"、
// "fe80::1%eth0"）被转换为 scope id。
// 失败时返回 [ErrInvalidLiteral] 且实例保持原状。
func (a *Addr) ParseNumericHost(text string) error {
	addr, err := netip.ParseAddr(text)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLiteral, text)
	}

	port := a.Port()
	var scratch Addr
	if err := scratch.SetNetip(addr); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLiteral, text)
	}
	scratch.SetPort(port, HostOrder)
	a.buf = scratch.buf
	return nil
}

// ParseComplete 解析 [Addr.FormatCompleteAddress] 产出的完整端点形式：
//
//	"1.2.3.4:80"、"[fe80::1%3]:443"、"fe80::1%3"、"::1"
//
// 地址、端口和 scope（若存在）全部写入返回值。
// 主机名和其他非字面量形式返回 [ErrInvalidLiteral]。
func ParseComplete(text string) (Addr, error) {
	// 带端口的形式优先（对 IPv6 要求方括号）
	if ap, err := netip.ParseAddrPort(text); err == nil {
		return FromAddrPort(ap)
	}
	// 无端口的裸字面量
	addr, err := netip.ParseAddr(text)
	if err != nil {
		return Addr{}, fmt.Errorf("%w: %q", ErrInvalidLiteral, text)
	}
	return FromNetip(addr)
}

// MustParse 是 [ParseComplete] 的 panic 版本，仅用于测试和常量初始化。
func MustParse(text string) Addr {
	a, err := ParseComplete(text)
	if err != nil {
		panic(err)
	}
	return a
}

// interfaceIndexByName 通过系统接口表把接口名 zone 转换为索引。
func interfaceIndexByName(name string) (uint32, error) {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return 0, err
	}
	if ifi.Index < 0 {
		return 0, fmt.Errorf("negative interface index %d", ifi.Index)
	}
	return uint32(ifi.Index), nil
}
