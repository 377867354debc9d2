package main

import (
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go4.org/netipx"

	"github.com/omeyang/sockkit/pkg/net/xresolve"
)

// resolverConfig 是配置文件 resolver 段和命令行覆盖的合并结果。
//
// 示例 (YAML):
//
//	resolver:
//	  server: "1.1.1.1:53"
//	  timeout: 3s
//	  network: ip4
//	  retry:
//	    attempts: 3
//	    delay: 200ms
//	  allow:
//	    - 10.0.0.0/8
//	    - 192.0.2.1
//	    - 198.51.100.10-198.51.100.20
type resolverConfig struct {
	Server  string        `koanf:"server"`
	Timeout time.Duration `koanf:"timeout"`
	Network string        `koanf:"network"`
	Retry   struct {
		Attempts uint          `koanf:"attempts"`
		Delay    time.Duration `koanf:"delay"`
	} `koanf:"retry"`
	Allow []string `koanf:"allow"`
}

// loadConfig 读取配置文件并反序列化 resolver 段。
// path 为空时返回零值配置（全部走默认值）。
// 格式按扩展名检测：.yaml/.yml 或 .json。
func loadConfig(path string) (*resolverConfig, error) {
	cfg := &resolverConfig{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	parser, err := parserForPath(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if err := k.Unmarshal("resolver", cfg); err != nil {
		return nil, fmt.Errorf("配置反序列化失败: %w", err)
	}
	return cfg, nil
}

// parserForPath 根据文件扩展名选择解析器。
func parserForPath(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("不支持的配置格式: %s (仅支持 .yaml/.yml/.json)", path)
	}
}

// resolverOptions 把配置转换为 xresolve 选项。
func (c *resolverConfig) resolverOptions() ([]xresolve.Option, error) {
	var opts []xresolve.Option
	if c.Timeout > 0 {
		opts = append(opts, xresolve.WithTimeout(c.Timeout))
	}
	if c.Network != "" {
		switch c.Network {
		case "ip", "ip4", "ip6":
			opts = append(opts, xresolve.WithNetwork(c.Network))
		default:
			return nil, fmt.Errorf("无效的地址族限定 %q (仅支持 ip/ip4/ip6)", c.Network)
		}
	}
	if c.Retry.Attempts > 1 {
		opts = append(opts, xresolve.WithRetry(c.Retry.Attempts, c.Retry.Delay))
	}
	if len(c.Allow) > 0 {
		set, err := buildAllowedSet(c.Allow)
		if err != nil {
			return nil, err
		}
		opts = append(opts, xresolve.WithAllowedRanges(set))
	}
	return opts, nil
}

// buildAllowedSet 把范围表达式集合编译为 IPSet。
// 每个条目可以是 CIDR（"10.0.0.0/8"）、单个 IP（"192.0.2.1"）
// 或显式区间（"198.51.100.10-198.51.100.20"）。
func buildAllowedSet(exprs []string) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, expr := range exprs {
		expr = strings.TrimSpace(expr)
		switch {
		case strings.Contains(expr, "/"):
			prefix, err := netip.ParsePrefix(expr)
			if err != nil {
				return nil, fmt.Errorf("无效的 CIDR %q: %w", expr, err)
			}
			b.AddPrefix(prefix)
		case strings.Contains(expr, "-"):
			r, err := netipx.ParseIPRange(expr)
			if err != nil {
				return nil, fmt.Errorf("无效的地址区间 %q: %w", expr, err)
			}
			b.AddRange(r)
		default:
			ip, err := netip.ParseAddr(expr)
			if err != nil {
				return nil, fmt.Errorf("无效的地址 %q: %w", expr, err)
			}
			b.Add(ip)
		}
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("编译允许范围失败: %w", err)
	}
	return set, nil
}
