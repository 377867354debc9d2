package xsockaddr

import (
	"fmt"
	"net/netip"
)

// v4MappedPrefix 是 IPv4-mapped IPv6 的 ::ffff:0:0/96 前缀。
var v4MappedPrefix = [16]byte{10: 0xff, 11: 0xff}

// MapDualMode4To6 把 IPv4 地址就地转换为 IPv4-mapped IPv6 表示
// （::ffff:a.b.c.d），端口保留，flow/scope 清零。双栈 socket 显式
// 连接 v4 目标时需要这种映射。
// 前置条件：当前族必须是 IPv4，否则返回 [ErrFamilyMismatch] 且实例不变。
func (a *Addr) MapDualMode4To6() error {
	if fam := a.Family(); fam != FamilyInet {
		return fmt.Errorf("%w: MapDualMode4To6 requires IPv4, got %s", ErrFamilyMismatch, fam)
	}

	mapped := v4MappedPrefix
	copy(mapped[12:], a.buf[offAddr4:offAddr4+4])

	v6 := New(FamilyInet6)
	v6.SetAddr6(mapped)
	v6.SetPort(a.Port(), HostOrder)
	a.Swap(&v6)
	return nil
}

// UnmapDualMode6To4 是 [Addr.MapDualMode4To6] 的逆操作：把
// IPv4-mapped IPv6 地址还原为纯 IPv4，端口保留。
// 当前族不是 IPv6 或地址不在 ::ffff:0:0/96 内时返回
// [ErrFamilyMismatch]，实例不变。
func (a *Addr) UnmapDualMode6To4() error {
	if fam := a.Family(); fam != FamilyInet6 {
		return fmt.Errorf("%w: UnmapDualMode6To4 requires IPv6, got %s", ErrFamilyMismatch, fam)
	}
	ip := netip.AddrFrom16([16]byte(a.buf[offAddr6 : offAddr6+16]))
	if !ip.Is4In6() {
		return fmt.Errorf("%w: address %s is not IPv4-mapped", ErrFamilyMismatch, ip)
	}

	v4 := FromInet4(ip.Unmap().As4(), a.Port())
	a.Swap(&v4)
	return nil
}

// IsV4Mapped 报告 a 是否为 IPv4-mapped IPv6 地址。
func (a Addr) IsV4Mapped() bool {
	if a.Family() != FamilyInet6 {
		return false
	}
	return netip.AddrFrom16([16]byte(a.buf[offAddr6 : offAddr6+16])).Is4In6()
}
