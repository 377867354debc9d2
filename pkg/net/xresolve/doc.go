// Package xresolve 提供主机名到 [xsockaddr.Addr] 的解析集成。
//
// 包的中心抽象是 [RawResolver]：一个把名称解析为原始线路地址缓冲区
// 序列的外部能力。[Resolve] 消费这个能力，把每个缓冲区经
// [xsockaddr.FromRaw] 构造成地址值，并把解析器失败统一包装为
// [*ResolutionError]（携带被解析的名称和解析器状态码）。
//
// # 核心功能
//
//   - resolver.go: [RawResolver] 能力接口与 [Resolve] 集成函数
//   - std.go: [StdResolver]——基于标准库 net.Resolver 的默认实现，
//     支持自定义 DNS 服务器地址
//   - dns.go: [DNSResolver]——直连指定 DNS 服务器的 A/AAAA 查询实现
//     （github.com/miekg/dns），DNS Rcode 即解析器状态码
//   - options.go: 功能选项（日志、超时、重试、地址范围过滤）
//
// # 快速示例
//
//	r := xresolve.NewStdResolver()
//	addrs, err := xresolve.Resolve(ctx, r, "localhost")
//	if err != nil {
//	    var rerr *xresolve.ResolutionError
//	    if errors.As(err, &rerr) {
//	        log.Printf("resolve %s failed: code=%s", rerr.Name, rerr.Code)
//	    }
//	    return
//	}
//	for _, a := range addrs {
//	    fmt.Println(a.FormatAddress())
//	}
//
// # 语义约定
//
//   - 解析器成功但结果为零条是合法的空序列，不是错误；
//     只有解析器报告失败才返回 [*ResolutionError]。
//   - [Resolve] 本身不设置超时（调用方用 context 包裹）；
//     具体实现可以通过 [WithTimeout] 配置自身的查询超时。
//   - 重试是具体解析器自己的策略（[WithRetry]），[Resolve] 不重试。
//   - [WithAllowedRanges] 在解析器内部过滤掉不在允许范围内的结果，
//     过滤后为空同样是合法的空序列。
package xresolve
