//go:build unix

package xsockaddr

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"
)

// 原生 sockaddr 结构中端口以网络序存放在一个按本机字节序读写的
// uint16 字段里。转换经由字节数组完成，不依赖本机端序假设。

func portToNative(port uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], port)
	return binary.NativeEndian.Uint16(b[:])
}

func portFromNative(v uint16) uint16 {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], v)
	return binary.BigEndian.Uint16(b[:])
}

// RawSockaddrInet4 把地址转换为原生 IPv4 sockaddr 结构。
// 族不是 IPv4 时返回 [ErrFamilyMismatch]。
func (a Addr) RawSockaddrInet4() (*unix.RawSockaddrInet4, error) {
	if fam := a.Family(); fam != FamilyInet {
		return nil, fmt.Errorf("%w: %s", ErrFamilyMismatch, fam)
	}
	return &unix.RawSockaddrInet4{
		Family: unix.AF_INET,
		Port:   portToNative(a.Port()),
		Addr:   [4]byte(a.buf[offAddr4 : offAddr4+4]),
	}, nil
}

// RawSockaddrInet6 把地址转换为原生 IPv6 sockaddr 结构。
// 族不是 IPv6 时返回 [ErrFamilyMismatch]。
func (a Addr) RawSockaddrInet6() (*unix.RawSockaddrInet6, error) {
	if fam := a.Family(); fam != FamilyInet6 {
		return nil, fmt.Errorf("%w: %s", ErrFamilyMismatch, fam)
	}
	return &unix.RawSockaddrInet6{
		Family:   unix.AF_INET6,
		Port:     portToNative(a.Port()),
		Flowinfo: a.FlowInfo(),
		Addr:     [16]byte(a.buf[offAddr6 : offAddr6+16]),
		Scope_id: a.ScopeID(),
	}, nil
}

// FromRawSockaddrInet4 从原生 IPv4 sockaddr 结构构造地址。
func FromRawSockaddrInet4(rsa *unix.RawSockaddrInet4) Addr {
	return FromInet4(rsa.Addr, portFromNative(rsa.Port))
}

// FromRawSockaddrInet6 从原生 IPv6 sockaddr 结构构造地址。
func FromRawSockaddrInet6(rsa *unix.RawSockaddrInet6) Addr {
	return FromInet6(rsa.Addr, portFromNative(rsa.Port), rsa.Flowinfo, rsa.Scope_id)
}
