package xresolve

import (
	"log/slog"
	"time"

	"go4.org/netipx"
)

// 默认值。
const (
	defaultTimeout  = 5 * time.Second
	defaultAttempts = 1 // 不重试
)

// options 是具体解析器（[StdResolver]、[DNSResolver]）的共享配置。
type options struct {
	logger      *slog.Logger
	timeout     time.Duration
	attempts    uint
	retryDelay  time.Duration
	allowed     *netipx.IPSet
	network     string // "ip"、"ip4"、"ip6"
	dialAddress string // 自定义 DNS 服务器 "ip:port"（仅 StdResolver）
}

func defaultOptions() *options {
	return &options{
		logger:   slog.Default(),
		timeout:  defaultTimeout,
		attempts: defaultAttempts,
		network:  "ip",
	}
}

// Option 配置具体解析器。
type Option func(*options)

// WithLogger 设置日志器。nil 时保持默认（slog.Default）。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTimeout 设置单次查询超时。
// 这是具体解析器自身的策略；[Resolve] 集成函数不加超时。
// d <= 0 时静默忽略（保持默认值）。
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithRetry 设置查询的总尝试次数和固定重试间隔。
// 重试是具体解析器自己的策略。attempts < 1 时静默忽略。
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(o *options) {
		if attempts >= 1 {
			o.attempts = attempts
			o.retryDelay = delay
		}
	}
}

// WithAllowedRanges 设置结果过滤集合：只保留落在 set 内的地址。
// nil 表示不过滤。过滤后为空是合法的空结果，不是错误。
func WithAllowedRanges(set *netipx.IPSet) Option {
	return func(o *options) {
		o.allowed = set
	}
}

// WithNetwork 限定查询的地址族："ip"（默认，双栈）、"ip4"、"ip6"。
// 其他值静默忽略。
func WithNetwork(network string) Option {
	return func(o *options) {
		switch network {
		case "ip", "ip4", "ip6":
			o.network = network
		}
	}
}

// WithDialAddress 设置自定义 DNS 服务器地址（"ip:port"）。
// 仅 [StdResolver] 使用；[DNSResolver] 的服务器在构造时显式给出。
func WithDialAddress(addr string) Option {
	return func(o *options) {
		o.dialAddress = addr
	}
}
