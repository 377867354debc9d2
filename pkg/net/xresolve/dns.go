package xresolve

import (
	"context"
	"fmt"
	"net/netip"

	retry "github.com/avast/retry-go/v5"
	"github.com/miekg/dns"
)

// DNSResolver 是直连指定 DNS 服务器的 [RawResolver] 实现，
// 通过 github.com/miekg/dns 发送 A/AAAA 查询。
// 与 [StdResolver] 不同，它完全绕开系统解析路径（hosts 文件、
// nsswitch），DNS 应答的 Rcode 即解析器状态码。
type DNSResolver struct {
	server string
	client *dns.Client
	opts   *options
}

// NewDNSResolver 创建直连解析器。server 为 DNS 服务器地址 "ip:port"。
func NewDNSResolver(server string, opts ...Option) *DNSResolver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &DNSResolver{
		server: server,
		client: &dns.Client{Timeout: o.timeout},
		opts:   o,
	}
}

// Resolve 实现 [RawResolver]。按 [WithNetwork] 的限定发送 A/AAAA
// 查询；任一查询的 Rcode 非 Success 即失败（NXDOMAIN 映射为
// [CodeNotFound]，SERVFAIL 映射为 [CodeTemporary]）。
func (r *DNSResolver) Resolve(ctx context.Context, name string) ([][]byte, error) {
	if name == "" {
		return nil, &ResolutionError{Name: name, Code: CodeInternal, Err: ErrEmptyName}
	}

	var qtypes []uint16
	switch r.opts.network {
	case "ip4":
		qtypes = []uint16{dns.TypeA}
	case "ip6":
		qtypes = []uint16{dns.TypeAAAA}
	default:
		qtypes = []uint16{dns.TypeA, dns.TypeAAAA}
	}

	fqdn := dns.Fqdn(name)
	var ips []netip.Addr
	for _, qtype := range qtypes {
		answers, err := r.query(ctx, fqdn, qtype)
		if err != nil {
			return nil, err
		}
		ips = append(ips, answers...)
	}

	return encodeResults(ips, r.opts)
}

// query 发送单个查询并提取地址记录，应用解析器自身的重试策略。
func (r *DNSResolver) query(ctx context.Context, fqdn string, qtype uint16) ([]netip.Addr, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(fqdn, qtype)
	msg.RecursionDesired = true

	var resp *dns.Msg
	exchange := func() error {
		var err error
		resp, _, err = r.client.ExchangeContext(ctx, msg, r.server)
		return err
	}

	err := retry.New(
		retry.Attempts(r.opts.attempts),
		retry.Delay(r.opts.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	).Do(exchange)
	if err != nil {
		return nil, &ResolutionError{Name: fqdn, Code: classifyDNSError(err), Err: err}
	}

	if resp.Rcode != dns.RcodeSuccess {
		return nil, &ResolutionError{
			Name: fqdn,
			Code: classifyRcode(resp.Rcode),
			Err:  fmt.Errorf("dns rcode %s", dns.RcodeToString[resp.Rcode]),
		}
	}

	var ips []netip.Addr
	for _, rr := range resp.Answer {
		switch rec := rr.(type) {
		case *dns.A:
			if ip, ok := netip.AddrFromSlice(rec.A); ok {
				ips = append(ips, ip.Unmap())
			}
		case *dns.AAAA:
			if ip, ok := netip.AddrFromSlice(rec.AAAA); ok {
				ips = append(ips, ip)
			}
		}
	}
	return ips, nil
}

// classifyRcode 把 DNS Rcode 映射为统一状态码。
func classifyRcode(rcode int) Code {
	switch rcode {
	case dns.RcodeNameError:
		return CodeNotFound
	case dns.RcodeServerFailure, dns.RcodeRefused:
		return CodeTemporary
	default:
		return CodeInternal
	}
}
