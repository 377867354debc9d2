package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/sockkit/pkg/net/xresolve"
	"github.com/omeyang/sockkit/pkg/net/xsockaddr"
)

// usageError 表示用户侧参数错误，run() 将其映射为退出码 2。
type usageError struct {
	msg string
	err error
}

func (e *usageError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *usageError) Unwrap() error { return e.err }

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createParseCommand(),
		createResolveCommand(),
	}
}

// createParseCommand 创建 parse 子命令。
func createParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "解析地址字面量并按规范形式输出",
		ArgsUsage: "<literal>",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "port",
				Usage: "覆盖端口 (0-65535)",
			},
			&cli.UintFlag{
				Name:  "flow",
				Usage: "覆盖 IPv6 flow info",
			},
			&cli.UintFlag{
				Name:  "scope",
				Usage: "覆盖 IPv6 scope id",
			},
			&cli.BoolFlag{
				Name:  "trim-scope",
				Usage: "输出时去掉 scope id 段",
			},
			&cli.BoolFlag{
				Name:  "map46",
				Usage: "把 IPv4 地址映射为 v4-mapped IPv6",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "以 JSON 输出",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "parse 命令需要且仅需要一个地址字面量"}
			}
			return cmdParse(cmd, cmd.Root().Writer, cmd.Args().First())
		},
	}
}

// cmdParse 解析字面量、应用覆盖项并输出。
func cmdParse(cmd *cli.Command, w io.Writer, literal string) error {
	a, err := xsockaddr.ParseComplete(literal)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("无效的地址字面量 %q", literal), err: err}
	}

	if cmd.IsSet("port") {
		port := cmd.Uint("port")
		if port > 65535 {
			return &usageError{msg: fmt.Sprintf("端口 %d 超出范围", port)}
		}
		a.SetPort(uint16(port), xsockaddr.HostOrder)
	}
	if cmd.IsSet("flow") {
		a.SetFlowInfo(uint32(cmd.Uint("flow")))
	}
	if cmd.IsSet("scope") {
		a.SetScopeID(uint32(cmd.Uint("scope")))
	}
	if cmd.Bool("map46") {
		if err := a.MapDualMode4To6(); err != nil {
			return &usageError{msg: "--map46 仅适用于 IPv4 地址", err: err}
		}
	}

	if cmd.Bool("json") {
		return printJSON(w, a)
	}
	fmt.Fprintln(w, a.FormatCompleteAddress(cmd.Bool("trim-scope")))
	return nil
}

// createResolveCommand 创建 resolve 子命令。
func createResolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Aliases:   []string{"r"},
		Usage:     "把名称解析为地址集合",
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "直连 DNS 服务器地址 (ip:port)",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "单次查询超时",
			},
			&cli.StringFlag{
				Name:  "network",
				Usage: "限定地址族 (ip/ip4/ip6)",
			},
			&cli.StringSliceFlag{
				Name:  "allow",
				Usage: "允许的地址范围 (CIDR、单 IP 或 起-止 区间，可重复)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "以 JSON 输出",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "resolve 命令需要且仅需要一个名称"}
			}
			return cmdResolve(ctx, cmd, cmd.Root().Writer, cmd.Args().First())
		},
	}
}

// cmdResolve 按配置文件默认值 + 命令行覆盖解析名称。
func cmdResolve(ctx context.Context, cmd *cli.Command, w io.Writer, name string) error {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return &usageError{msg: "加载配置失败", err: err}
	}

	// 命令行参数优先于配置文件
	if cmd.IsSet("server") {
		cfg.Server = cmd.String("server")
	}
	if cmd.IsSet("timeout") {
		cfg.Timeout = cmd.Duration("timeout")
	}
	if cmd.IsSet("network") {
		cfg.Network = cmd.String("network")
	}
	if allow := cmd.StringSlice("allow"); len(allow) > 0 {
		cfg.Allow = allow
	}

	opts, err := cfg.resolverOptions()
	if err != nil {
		return &usageError{msg: "无效的解析器配置", err: err}
	}

	var r xresolve.RawResolver
	if cfg.Server != "" {
		r = xresolve.NewDNSResolver(cfg.Server, opts...)
	} else {
		r = xresolve.NewStdResolver(opts...)
	}

	addrs, err := xresolve.Resolve(ctx, r, name)
	if err != nil {
		return fmt.Errorf("解析 %q 失败: %w", name, err)
	}

	if cmd.Bool("json") {
		return printJSON(w, addrs...)
	}
	for _, a := range addrs {
		fmt.Fprintln(w, a.FormatCompleteAddress(false))
	}
	return nil
}

// printJSON 以 WireAddr JSON 形式输出地址。
// 单个地址输出对象，多个输出数组。
func printJSON(w io.Writer, addrs ...xsockaddr.Addr) error {
	wires := make([]xsockaddr.WireAddr, 0, len(addrs))
	for _, a := range addrs {
		wire, err := xsockaddr.WireAddrFrom(a)
		if err != nil {
			return err
		}
		wires = append(wires, wire)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(wires) == 1 {
		return enc.Encode(wires[0])
	}
	return enc.Encode(wires)
}
