package xresolve

import (
	"context"
	"errors"
	"net"
	"net/netip"

	retry "github.com/avast/retry-go/v5"

	"github.com/omeyang/sockkit/pkg/net/xsockaddr"
)

// StdResolver 是基于标准库 net.Resolver 的默认 [RawResolver] 实现。
// 配置了 [WithDialAddress] 时强制走 Go 内建解析器并拨号到指定的
// DNS 服务器，否则使用系统默认解析路径。
type StdResolver struct {
	resolver *net.Resolver
	opts     *options
}

// NewStdResolver 创建标准库解析器。
func NewStdResolver(opts ...Option) *StdResolver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	r := &StdResolver{opts: o}
	if o.dialAddress != "" {
		server := o.dialAddress
		r.resolver = &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
				d := net.Dialer{Timeout: o.timeout}
				return d.DialContext(ctx, network, server)
			},
		}
	} else {
		r.resolver = net.DefaultResolver
	}
	return r
}

// Resolve 实现 [RawResolver]：查询 name 的 IP 地址并编码为线路缓冲区。
// 失败返回 [*ResolutionError]；成功但零结果返回空切片。
func (r *StdResolver) Resolve(ctx context.Context, name string) ([][]byte, error) {
	if name == "" {
		return nil, &ResolutionError{Name: name, Code: CodeInternal, Err: ErrEmptyName}
	}

	var ips []netip.Addr
	lookup := func() error {
		lctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
		defer cancel()
		var err error
		ips, err = r.resolver.LookupNetIP(lctx, r.opts.network, name)
		return err
	}

	err := retry.New(
		retry.Attempts(r.opts.attempts),
		retry.Delay(r.opts.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			// 名称不存在不值得重试
			return classifyDNSError(err) != CodeNotFound
		}),
	).Do(lookup)
	if err != nil {
		return nil, &ResolutionError{Name: name, Code: classifyDNSError(err), Err: err}
	}

	return encodeResults(ips, r.opts)
}

// classifyDNSError 把 net 包的解析错误映射为统一状态码。
func classifyDNSError(err error) Code {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		switch {
		case dnsErr.IsNotFound:
			return CodeNotFound
		case dnsErr.IsTimeout:
			return CodeTimeout
		case dnsErr.IsTemporary:
			return CodeTemporary
		}
		return CodeInternal
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CodeTimeout
	}
	return CodeInternal
}

// encodeResults 把解析出的地址编码为线路缓冲区，应用允许范围过滤。
func encodeResults(ips []netip.Addr, o *options) ([][]byte, error) {
	raws := make([][]byte, 0, len(ips))
	for _, ip := range ips {
		a, err := xsockaddr.FromNetip(ip)
		if err != nil {
			o.logger.Debug("xresolve: skip unencodable address", "addr", ip.String(), "error", err)
			continue
		}
		if o.allowed != nil && !a.InSet(o.allowed) {
			o.logger.Debug("xresolve: filtered by allowed ranges", "addr", ip.String())
			continue
		}
		raw, err := a.MarshalBinary()
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	return raws, nil
}
