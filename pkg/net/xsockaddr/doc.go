// Package xsockaddr 提供族多态的 socket 地址值类型 [Addr]。
//
// [Addr] 用一个定长 128 字节缓冲区（[StorageSize]，对齐原生
// sockaddr_storage 的大小）统一表示 IPv4 和 IPv6 端点，
// 通过缓冲区头部的 2 字节族判别符在运行时决定解释方式：
//
//   - [FamilyUnspec]: 未指定族，全零缓冲区
//   - [FamilyInet]:   IPv4 端点 {4 字节地址, 16 位端口}
//   - [FamilyInet6]:  IPv6 端点 {16 字节地址, 16 位端口, 32 位 flow info, 32 位 scope id}
//
// # 核心功能
//
//   - sockaddr.go: 类型定义、构造、复制/移动/交换、字节级相等比较
//   - mutate.go: 字段修改器（端口、地址、flow/scope、loopback/any 哨兵值）
//   - dualstack.go: IPv4 到 IPv4-mapped IPv6 的双栈映射及其逆操作
//   - parse.go: 数字字面量解析（[Addr.ParseNumericHost]、[ParseComplete]）
//   - format.go: 文本渲染（[Addr.FormatAddress]、[Addr.FormatCompleteAddress]）
//   - wire.go: 线路格式布局、Binary/Text/JSON 序列化、[WireAddr]
//   - sockaddr_unix.go: 与 [golang.org/x/sys/unix] 原生结构的互转（仅 unix）
//
// # 快速示例
//
// 从字面量构造并渲染完整端点：
//
//	var a xsockaddr.Addr
//	_ = a.ParseNumericHost("127.0.0.1")
//	a.SetPort(8080, xsockaddr.HostOrder)
//	fmt.Println(a.FormatCompleteAddress(false))  // 127.0.0.1:8080
//
// IPv6 带 scope 的端点：
//
//	var a xsockaddr.Addr
//	_ = a.ParseNumericHost("fe80::1")
//	a.SetScopeID(3)
//	a.SetPort(443, xsockaddr.HostOrder)
//	fmt.Println(a.FormatCompleteAddress(false))  // [fe80::1%3]:443
//	fmt.Println(a.FormatCompleteAddress(true))   // [fe80::1]:443
//
// # 设计决策
//
//   - 存储保持单一定长字节数组而非多字段结构体。Go 下通过
//     encoding/binary 按偏移读写字节数组不需要任何 unsafe 重新解释，
//     同时字节级相等、零填充、截断、swap/move 语义都由数组直接给出。
//     族相关的解释完全封装在访问器中。
//   - 线路布局与平台无关：判别符和端口等多字节字段固定为网络字节序
//     （大端），与原生平台结构的互转集中在 sockaddr_unix.go 边界完成。
//   - 从原始缓冲区构造是有界有损复制：超过 [StorageSize] 的输入被
//     截断（debug 日志记录），不足的部分保持零。这是明确的契约而非
//     实现副作用，永远不会越界读写。
//   - [Addr.SetAddrLoopback] 与 [Addr.SetAddrAny] 在族不是 IPv4/IPv6
//     时对称地返回 [ErrFamilyMismatch]。调用方若确信族已设置，
//     可以忽略返回值。
//
// # 相等语义
//
// [Addr.Equal] 是整个缓冲区（含零填充区）的字节比较。族不同的两个
// 地址永远不等（判别符不同）；同一逻辑地址经不同长度原始缓冲区构造，
// 只要解码后字节一致（含填充）即相等。
//
// # 并发
//
// Addr 是纯值：复制即独立，无别名风险。多 goroutine 只读共享同一实例
// 安全；并发修改同一实例需要外部同步。
package xsockaddr
