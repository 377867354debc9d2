// Package net 提供网络地址相关的子包。
//
// 子包列表：
//   - xsockaddr: 族多态的 socket 地址值类型（IPv4/IPv6 端点的统一定长表示）
//   - xresolve: 名称解析集成（把主机名解析为 xsockaddr.Addr 序列）
//
// 设计原则：
//   - 值语义：地址是可自由复制的定长值，无堆指针、无共享状态
//   - 边界安全：所有原始缓冲区操作有界复制，超长截断、不足补零
//   - 可失败操作统一返回 error，预定义错误变量支持 errors.Is
package net
