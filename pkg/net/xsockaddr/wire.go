package xsockaddr

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// MarshalBinary 实现 encoding.BinaryMarshaler，返回整个线路缓冲区
// 的副本（定长 [StorageSize]，含零填充，布局见 doc.go）。
func (a Addr) MarshalBinary() ([]byte, error) {
	out := make([]byte, StorageSize)
	copy(out, a.buf[:])
	return out, nil
}

// UnmarshalBinary 实现 encoding.BinaryUnmarshaler，语义同 [FromRaw]：
// 有界有损复制，超长截断、不足补零，永不报错。
func (a *Addr) UnmarshalBinary(data []byte) error {
	*a = FromRaw(data)
	return nil
}

// MarshalText 实现 encoding.TextMarshaler，输出完整端点形式。
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.FormatCompleteAddress(false)), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler，接受 [ParseComplete]
// 支持的全部字面量形式。
func (a *Addr) UnmarshalText(data []byte) error {
	parsed, err := ParseComplete(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// WireAddr 是 [Addr] 的序列化格式，用于 JSON/BSON/YAML。
// FlowInfo 和 ScopeID 仅对 IPv6 有意义，零值省略。
type WireAddr struct {
	Address  string `json:"address" bson:"address" yaml:"address"`
	Port     uint16 `json:"port,omitempty" bson:"port,omitempty" yaml:"port,omitempty"`
	FlowInfo uint32 `json:"flow_info,omitempty" bson:"flow_info,omitempty" yaml:"flow_info,omitempty"`
	ScopeID  uint32 `json:"scope_id,omitempty" bson:"scope_id,omitempty" yaml:"scope_id,omitempty"`
}

// WireAddrFrom 从 [Addr] 创建 WireAddr。
// 族不是 IPv4/IPv6 时返回 [ErrFamilyMismatch]。
func WireAddrFrom(a Addr) (WireAddr, error) {
	if !a.Family().IsInet() {
		return WireAddr{}, fmt.Errorf("%w: %s", ErrFamilyMismatch, a.Family())
	}
	return WireAddr{
		Address:  a.FormatAddress(),
		Port:     a.Port(),
		FlowInfo: a.FlowInfo(),
		ScopeID:  a.ScopeID(),
	}, nil
}

// ToAddr 把 WireAddr 还原为 [Addr]。
func (w WireAddr) ToAddr() (Addr, error) {
	ip, err := netip.ParseAddr(w.Address)
	if err != nil {
		return Addr{}, fmt.Errorf("%w: %q", ErrInvalidLiteral, w.Address)
	}
	a, err := FromNetip(ip)
	if err != nil {
		return Addr{}, err
	}
	a.SetPort(w.Port, HostOrder)
	a.SetFlowInfo(w.FlowInfo)
	a.SetScopeID(w.ScopeID)
	return a, nil
}

// IsZero 报告 w 是否为零值。
func (w WireAddr) IsZero() bool {
	return w == WireAddr{}
}

// InSet 报告地址部分是否落在 set 内。
// IPv4-mapped IPv6 地址按纯 IPv4 参与匹配（与集合构建侧的惯例一致）。
// set 为 nil 或族不是 IPv4/IPv6 时返回 false。
func (a Addr) InSet(set *netipx.IPSet) bool {
	if set == nil {
		return false
	}
	ip, ok := a.Netip()
	if !ok {
		return false
	}
	return set.Contains(ip.Unmap())
}
