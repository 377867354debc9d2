package xsockaddr

// Family 是地址族判别符，存储在缓冲区头部 2 字节。
// 数值与经典 sockaddr 的 AF_* 常量（Linux 取值）对齐，
// 但线路布局本身与平台无关（见 wire.go）。
type Family uint16

const (
	// FamilyUnspec 表示未指定族。
	FamilyUnspec Family = 0
	// FamilyInet 表示 IPv4。
	FamilyInet Family = 2
	// FamilyInet6 表示 IPv6。
	FamilyInet6 Family = 10
)

// String 返回族的字符串表示。
func (f Family) String() string {
	switch f {
	case FamilyUnspec:
		return "unspec"
	case FamilyInet:
		return "IPv4"
	case FamilyInet6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// IsInet 报告 f 是否为 IP 族（IPv4 或 IPv6）。
func (f Family) IsInet() bool {
	return f == FamilyInet || f == FamilyInet6
}

// ByteOrder 指示 [Addr.SetPort] 输入值的字节序。
type ByteOrder uint8

const (
	// HostOrder 表示输入是普通的主机序数值，写入前转为网络序。
	HostOrder ByteOrder = iota
	// NetworkOrder 表示输入已经是按本机内存读出的网络序值，原样透写。
	NetworkOrder
)
