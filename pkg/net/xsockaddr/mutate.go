package xsockaddr

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strconv"
)

// SetPort 写入端口字段。
// order 为 [HostOrder] 时输入先转为网络序；[NetworkOrder] 表示输入
// 已是按本机内存读出的网络序值，两个字节原样落盘。
func (a *Addr) SetPort(port uint16, order ByteOrder) {
	if order == HostOrder {
		binary.BigEndian.PutUint16(a.buf[offPort:], port)
		return
	}
	binary.NativeEndian.PutUint16(a.buf[offPort:], port)
}

// SetFlowInfo 写入 IPv6 flow info；族不是 IPv6 时为 no-op。
func (a *Addr) SetFlowInfo(flowInfo uint32) {
	if a.Family() != FamilyInet6 {
		return
	}
	binary.BigEndian.PutUint32(a.buf[offFlow:], flowInfo)
}

// SetScopeID 写入 IPv6 scope id；族不是 IPv6 时为 no-op。
func (a *Addr) SetScopeID(scopeID uint32) {
	if a.Family() != FamilyInet6 {
		return
	}
	binary.BigEndian.PutUint32(a.buf[offScope:], scopeID)
}

// SetAddr4 强制族为 IPv4 并覆盖地址字段。
// 不清零其余字段：从其他族切换时如需干净状态，先调用 [Addr.Reset]。
func (a *Addr) SetAddr4(addr [4]byte) {
	binary.BigEndian.PutUint16(a.buf[offFamily:], uint16(FamilyInet))
	copy(a.buf[offAddr4:offAddr4+4], addr[:])
}

// SetAddr6 强制族为 IPv6 并覆盖地址字段。
// 不清零其余字段，契约同 [Addr.SetAddr4]。
func (a *Addr) SetAddr6(addr [16]byte) {
	binary.BigEndian.PutUint16(a.buf[offFamily:], uint16(FamilyInet6))
	copy(a.buf[offAddr6:offAddr6+16], addr[:])
}

// SetNetip 按 addr 的形态写入地址并设置对应族。
// 纯 IPv4 走 [Addr.SetAddr4]；其余（含 IPv4-mapped IPv6）走
// [Addr.SetAddr6]。数字 zone（如 "fe80::1%3" 的 "3"）写入 scope id。
// 无效地址返回 [ErrInvalidAddress]，实例不变。
func (a *Addr) SetNetip(addr netip.Addr) error {
	if !addr.IsValid() {
		return ErrInvalidAddress
	}
	if addr.Is4() {
		a.SetAddr4(addr.As4())
		return nil
	}
	a.SetAddr6(addr.As16())
	if zone := addr.Zone(); zone != "" {
		scope, err := zoneToScope(zone)
		if err != nil {
			return err
		}
		a.SetScopeID(scope)
	}
	return nil
}

// SetAddrLoopback 将缓冲区重写为当前族的规范 loopback 地址
// （IPv4: 127.0.0.1，IPv6: ::1），保留当前端口，其余字段清零。
// 族不是 IPv4/IPv6 时返回 [ErrFamilyMismatch]，实例不变。
func (a *Addr) SetAddrLoopback() error {
	switch fam := a.Family(); fam {
	case FamilyInet:
		port := a.Port()
		a.Reset(FamilyInet)
		a.SetPort(port, HostOrder)
		copy(a.buf[offAddr4:offAddr4+4], []byte{127, 0, 0, 1})
		return nil
	case FamilyInet6:
		port := a.Port()
		a.Reset(FamilyInet6)
		a.SetPort(port, HostOrder)
		a.buf[offAddr6+15] = 1
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrFamilyMismatch, fam)
	}
}

// SetAddrAny 将缓冲区重写为当前族的通配地址（0.0.0.0 / ::），
// 保留当前端口，其余字段清零。
// 族不是 IPv4/IPv6 时返回 [ErrFamilyMismatch]，实例不变，
// 与 [Addr.SetAddrLoopback] 策略对称。
func (a *Addr) SetAddrAny() error {
	fam := a.Family()
	if !fam.IsInet() {
		return fmt.Errorf("%w: %s", ErrFamilyMismatch, fam)
	}
	port := a.Port()
	a.Reset(fam)
	a.SetPort(port, HostOrder)
	return nil
}

// IsAddrLoopback 报告 a 是否恰为当前族的规范 loopback 值。
// 通过"草稿副本应用 setter 后字节比较"定义成员关系：端口由 setter
// 保留，因此端口也参与相等判断。
func (a Addr) IsAddrLoopback() bool {
	scratch := a
	if scratch.SetAddrLoopback() != nil {
		return false
	}
	return scratch.buf == a.buf
}

// IsAddrAny 报告 a 是否恰为当前族的通配地址值，语义同 [Addr.IsAddrLoopback]。
func (a Addr) IsAddrAny() bool {
	scratch := a
	if scratch.SetAddrAny() != nil {
		return false
	}
	return scratch.buf == a.buf
}

// zoneToScope 把 netip zone 转换为数字 scope id。
// 数字 zone 直接解析；接口名 zone 通过系统接口表取 Index。
func zoneToScope(zone string) (uint32, error) {
	if n, err := strconv.ParseUint(zone, 10, 32); err == nil {
		return uint32(n), nil
	}
	idx, err := interfaceIndexByName(zone)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown zone %q", ErrInvalidAddress, zone)
	}
	return idx, nil
}
