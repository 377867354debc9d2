package main

import (
	"bytes"
	"context"
	"errors"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// runApp 执行一次 CLI 调用并返回标准输出。
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := createApp()
	var buf bytes.Buffer
	app.Writer = &buf
	err := app.Run(context.Background(), append([]string{"sockctl"}, args...))
	return buf.String(), err
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "bare IPv4",
			args: []string{"parse", "192.0.2.1"},
			want: "192.0.2.1\n",
		},
		{
			name: "complete IPv4",
			args: []string{"parse", "192.0.2.1:80"},
			want: "192.0.2.1:80\n",
		},
		{
			name: "port override",
			args: []string{"parse", "--port", "80", "192.0.2.1"},
			want: "192.0.2.1:80\n",
		},
		{
			name: "complete IPv6 with scope",
			args: []string{"parse", "[fe80::1%3]:443"},
			want: "[fe80::1%3]:443\n",
		},
		{
			name: "trim scope",
			args: []string{"parse", "--trim-scope", "[fe80::1%3]:443"},
			want: "[fe80::1]:443\n",
		},
		{
			name: "map46",
			args: []string{"parse", "--map46", "--port", "80", "192.0.2.1"},
			want: "[::ffff:192.0.2.1]:80\n",
		},
		{
			name: "scope override",
			args: []string{"parse", "--scope", "7", "fe80::1"},
			want: "fe80::1%7\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runApp(t, tt.args...)
			if err != nil {
				t.Fatalf("run %v error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("run %v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseCommandJSON(t *testing.T) {
	got, err := runApp(t, "parse", "--json", "--port", "443", "fe80::1%3")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	for _, want := range []string{`"address": "fe80::1"`, `"port": 443`, `"scope_id": 3`} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestParseCommandUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no argument", []string{"parse"}},
		{"two arguments", []string{"parse", "1.2.3.4", "5.6.7.8"}},
		{"hostname rejected", []string{"parse", "example.com"}},
		{"garbage rejected", []string{"parse", "not-an-address"}},
		{"port out of range", []string{"parse", "--port", "70000", "192.0.2.1"}},
		{"map46 on IPv6", []string{"parse", "--map46", "fe80::1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, tt.args...)
			var usageErr *usageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("run %v error = %v, want *usageError", tt.args, err)
			}
		})
	}
}

func TestResolveCommandUsageErrors(t *testing.T) {
	if _, err := runApp(t, "resolve"); err == nil {
		t.Fatal("resolve without name should fail")
	}

	_, err := runApp(t, "--config", "no-such-file.yaml", "resolve", "example.com")
	var usageErr *usageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("missing config error = %v, want *usageError", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty path gives zero config", func(t *testing.T) {
		cfg, err := loadConfig("")
		if err != nil {
			t.Fatalf("loadConfig(\"\") error = %v", err)
		}
		if cfg.Server != "" || cfg.Timeout != 0 || len(cfg.Allow) != 0 {
			t.Errorf("loadConfig(\"\") = %+v, want zero value", cfg)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeTempConfig(t, "sockctl.yaml", `
resolver:
  server: "1.1.1.1:53"
  timeout: 3s
  network: ip4
  retry:
    attempts: 3
    delay: 200ms
  allow:
    - 10.0.0.0/8
`)
		cfg, err := loadConfig(path)
		if err != nil {
			t.Fatalf("loadConfig error = %v", err)
		}
		if cfg.Server != "1.1.1.1:53" {
			t.Errorf("Server = %q", cfg.Server)
		}
		if cfg.Timeout != 3*time.Second {
			t.Errorf("Timeout = %v", cfg.Timeout)
		}
		if cfg.Network != "ip4" {
			t.Errorf("Network = %q", cfg.Network)
		}
		if cfg.Retry.Attempts != 3 || cfg.Retry.Delay != 200*time.Millisecond {
			t.Errorf("Retry = %+v", cfg.Retry)
		}
		if len(cfg.Allow) != 1 || cfg.Allow[0] != "10.0.0.0/8" {
			t.Errorf("Allow = %v", cfg.Allow)
		}
	})

	t.Run("json", func(t *testing.T) {
		path := writeTempConfig(t, "sockctl.json",
			`{"resolver": {"server": "192.0.2.53:53", "allow": ["192.0.2.0/24"]}}`)
		cfg, err := loadConfig(path)
		if err != nil {
			t.Fatalf("loadConfig error = %v", err)
		}
		if cfg.Server != "192.0.2.53:53" {
			t.Errorf("Server = %q", cfg.Server)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempConfig(t, "sockctl.toml", "x = 1")
		if _, err := loadConfig(path); err == nil {
			t.Fatal("expected error for .toml")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := loadConfig("does-not-exist.yaml"); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

func TestResolverOptions(t *testing.T) {
	t.Run("invalid network rejected", func(t *testing.T) {
		cfg := &resolverConfig{Network: "tcp"}
		if _, err := cfg.resolverOptions(); err == nil {
			t.Fatal("expected error for invalid network")
		}
	})

	t.Run("invalid allow rejected", func(t *testing.T) {
		cfg := &resolverConfig{Allow: []string{"not-a-range"}}
		if _, err := cfg.resolverOptions(); err == nil {
			t.Fatal("expected error for invalid allow entry")
		}
	})

	t.Run("full config accepted", func(t *testing.T) {
		cfg := &resolverConfig{
			Timeout: time.Second,
			Network: "ip6",
			Allow:   []string{"10.0.0.0/8", "192.0.2.1", "198.51.100.10-198.51.100.20"},
		}
		cfg.Retry.Attempts = 2
		opts, err := cfg.resolverOptions()
		if err != nil {
			t.Fatalf("resolverOptions error = %v", err)
		}
		if len(opts) != 4 {
			t.Errorf("len(opts) = %d, want 4", len(opts))
		}
	})
}

func TestBuildAllowedSet(t *testing.T) {
	set, err := buildAllowedSet([]string{"10.0.0.0/8", "192.0.2.1", "198.51.100.10-198.51.100.20"})
	if err != nil {
		t.Fatalf("buildAllowedSet error = %v", err)
	}

	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"192.0.2.1", true},
		{"192.0.2.2", false},
		{"198.51.100.15", true},
		{"198.51.100.21", false},
		{"2001:db8::1", false},
	}
	for _, tt := range tests {
		if got := set.Contains(mustAddr(t, tt.ip)); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.ip, got, tt.want)
		}
	}

	for _, bad := range []string{"10.0.0.0/99", "1.2.3", "a-b"} {
		if _, err := buildAllowedSet([]string{bad}); err == nil {
			t.Errorf("buildAllowedSet(%q) should fail", bad)
		}
	}
}

// mustAddr 解析地址字面量，失败时终止测试。
func mustAddr(t *testing.T, s string) netip.Addr {
	t.Helper()
	ip, err := netip.ParseAddr(s)
	if err != nil {
		t.Fatalf("ParseAddr(%q): %v", s, err)
	}
	return ip
}

// writeTempConfig 写入临时配置文件并返回路径。
func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}
