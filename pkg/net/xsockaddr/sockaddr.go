package xsockaddr

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"net/netip"
)

const (
	// StorageSize 是每个 [Addr] 的定长存储大小（字节），
	// 对齐原生 sockaddr_storage。所有实例大小恒定，无变长分配。
	StorageSize = 128

	// IPStringMaxLength 是任意 IPv4/IPv6 字面量渲染结果的最大长度
	// （含结尾符），[Addr.FormatAddress] 的输出保证不超过该值。
	IPStringMaxLength = 65
)

// 线路布局偏移（见 doc.go 与 wire.go）。
// IPv4 和 IPv6 布局共享端口字段的偏移与宽度，
// 因此 [Addr.Port] 无需判别族即可读取。
const (
	offFamily = 0  // [0:2)  族判别符，大端 uint16
	offPort   = 2  // [2:4)  端口，网络序
	offAddr4  = 4  // [4:8)  IPv4 地址
	offFlow   = 4  // [4:8)  IPv6 flow info，大端 uint32
	offAddr6  = 8  // [8:24) IPv6 地址
	offScope  = 24 // [24:28) IPv6 scope id，大端 uint32

	sizeInet4 = 8  // IPv4 原生结构有效字节数
	sizeInet6 = 28 // IPv6 原生结构有效字节数
)

// Addr 是族多态的 socket 地址值。
// 零值即 [FamilyUnspec] 的全零地址；直接赋值即深拷贝。
type Addr struct {
	buf [StorageSize]byte
}

// New 创建指定族的全零地址。
func New(family Family) Addr {
	var a Addr
	binary.BigEndian.PutUint16(a.buf[offFamily:], uint16(family))
	return a
}

// FromRaw 从原始线路缓冲区构造地址。
// 复制 min(len(raw), StorageSize) 字节，剩余部分保持零。
// 输入短于完整原生结构不是错误；超长输入被截断（有损但有界，
// 通过 debug 日志记录，不改变截断行为本身）。
func FromRaw(raw []byte) Addr {
	var a Addr
	n := len(raw)
	if n > StorageSize {
		slog.Debug("xsockaddr: raw buffer truncated", "len", n, "storage_size", StorageSize)
		n = StorageSize
	}
	copy(a.buf[:], raw[:n])
	return a
}

// FromRawUnion 从族标记的原生联合体缓冲区构造地址：读取头部判别符，
// 按对应族的原生结构大小精确复制，之后全部保持零。
// 判别符不是 IPv4/IPv6 返回 [ErrFamilyMismatch]；
// 缓冲区不足该族的结构大小返回 [ErrShortBuffer]。
func FromRawUnion(raw []byte) (Addr, error) {
	if len(raw) < 2 {
		return Addr{}, fmt.Errorf("%w: need 2 bytes for family discriminator, got %d", ErrShortBuffer, len(raw))
	}
	var need int
	switch fam := Family(binary.BigEndian.Uint16(raw)); fam {
	case FamilyInet:
		need = sizeInet4
	case FamilyInet6:
		need = sizeInet6
	default:
		return Addr{}, fmt.Errorf("%w: %s", ErrFamilyMismatch, fam)
	}
	if len(raw) < need {
		return Addr{}, fmt.Errorf("%w: need %d bytes, got %d", ErrShortBuffer, need, len(raw))
	}
	return FromRaw(raw[:need]), nil
}

// FromInet4 从 IPv4 地址和端口构造地址。
func FromInet4(addr [4]byte, port uint16) Addr {
	a := New(FamilyInet)
	a.SetPort(port, HostOrder)
	copy(a.buf[offAddr4:offAddr4+4], addr[:])
	return a
}

// FromInet6 从 IPv6 地址、端口及 flow/scope 元数据构造地址。
func FromInet6(addr [16]byte, port uint16, flowInfo, scopeID uint32) Addr {
	a := New(FamilyInet6)
	a.SetPort(port, HostOrder)
	copy(a.buf[offAddr6:offAddr6+16], addr[:])
	binary.BigEndian.PutUint32(a.buf[offFlow:], flowInfo)
	binary.BigEndian.PutUint32(a.buf[offScope:], scopeID)
	return a
}

// FromNetip 从 [netip.Addr] 构造地址（端口为 0）。
// IPv4-mapped IPv6 地址保持 IPv6 族（映射语义见 dualstack.go）。
// 数字 zone 被写入 scope id；无效地址返回错误。
func FromNetip(addr netip.Addr) (Addr, error) {
	var a Addr
	if err := a.SetNetip(addr); err != nil {
		return Addr{}, err
	}
	return a, nil
}

// FromAddrPort 从 [netip.AddrPort] 构造地址。
func FromAddrPort(ap netip.AddrPort) (Addr, error) {
	a, err := FromNetip(ap.Addr())
	if err != nil {
		return Addr{}, err
	}
	a.SetPort(ap.Port(), HostOrder)
	return a, nil
}

// Reset 将缓冲区清零并写入新的族判别符。总是成功。
func (a *Addr) Reset(family Family) {
	a.buf = [StorageSize]byte{}
	binary.BigEndian.PutUint16(a.buf[offFamily:], uint16(family))
}

// Swap 交换两个地址的缓冲区。无分配，不会失败。
func (a *Addr) Swap(other *Addr) {
	a.buf, other.buf = other.buf, a.buf
}

// Clone 返回 a 的独立副本。Addr 是值类型，赋值即复制；
// Clone 仅为通过指针持有地址的调用方提供显式拷贝入口。
func (a Addr) Clone() Addr {
	return a
}

// Take 实现移动语义：接管 src 的内容并把 src 置为全零
// （[FamilyUnspec]）。被移走的 src 处于良定义的零状态，而非
// 仅凭约定的"未指定"。
func (a *Addr) Take(src *Addr) {
	a.buf = src.buf
	src.buf = [StorageSize]byte{}
}

// Equal 报告两个地址是否相等：整个缓冲区（含零填充区）的字节比较。
// 族不同的地址因判别符不同而永不相等。
func (a Addr) Equal(other Addr) bool {
	return a.buf == other.buf
}

// IsZero 报告 a 是否为全零（未指定族且无任何字段）。
func (a Addr) IsZero() bool {
	return a.buf == [StorageSize]byte{}
}

// Family 返回族判别符。
func (a Addr) Family() Family {
	return Family(binary.BigEndian.Uint16(a.buf[offFamily:]))
}

// Port 返回端口（主机序）。
// IPv4 与 IPv6 布局共享端口字段的偏移与宽度，读取无需判别族。
func (a Addr) Port() uint16 {
	return binary.BigEndian.Uint16(a.buf[offPort:])
}

// FlowInfo 返回 IPv6 flow info；族不是 IPv6 时返回 0。
func (a Addr) FlowInfo() uint32 {
	if a.Family() != FamilyInet6 {
		return 0
	}
	return binary.BigEndian.Uint32(a.buf[offFlow:])
}

// ScopeID 返回 IPv6 scope id；族不是 IPv6 时返回 0。
func (a Addr) ScopeID() uint32 {
	if a.Family() != FamilyInet6 {
		return 0
	}
	return binary.BigEndian.Uint32(a.buf[offScope:])
}

// Len 返回存储大小，恒为 [StorageSize]。
func (a Addr) Len() int {
	return StorageSize
}

// Raw 返回整个存储缓冲区的副本。
func (a Addr) Raw() [StorageSize]byte {
	return a.buf
}

// Netip 返回地址部分的 [netip.Addr] 表示（不含端口和 scope）。
// 族不是 IPv4/IPv6 时返回 (netip.Addr{}, false)。
func (a Addr) Netip() (netip.Addr, bool) {
	switch a.Family() {
	case FamilyInet:
		return netip.AddrFrom4([4]byte(a.buf[offAddr4 : offAddr4+4])), true
	case FamilyInet6:
		return netip.AddrFrom16([16]byte(a.buf[offAddr6 : offAddr6+16])), true
	default:
		return netip.Addr{}, false
	}
}

// AddrPort 返回地址加端口的 [netip.AddrPort] 表示。
// 族不是 IPv4/IPv6 时返回 (netip.AddrPort{}, false)。
func (a Addr) AddrPort() (netip.AddrPort, bool) {
	ip, ok := a.Netip()
	if !ok {
		return netip.AddrPort{}, false
	}
	return netip.AddrPortFrom(ip, a.Port()), true
}
