// sockctl 是 sockkit 的命令行工具，用于解析、格式化与解析域名。
//
// 用法:
//
//	sockctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config   配置文件路径 (YAML/JSON，提供 resolve 命令默认值)
//
// 命令:
//
//	parse <literal>    解析地址字面量并按规范形式输出
//	resolve <name>     把名称解析为地址集合
//	help               显示帮助信息
//
// parse 命令说明:
//
//	接受数字 IP 字面量（"192.0.2.1"、"fe80::1%eth0"）或完整形式
//	（"192.0.2.1:80"、"[fe80::1%3]:443"）。不做任何名称解析。
//	--port/--flow/--scope 在解析结果上覆盖相应字段，
//	--map46 把 IPv4 地址映射为 v4-mapped IPv6，
//	--trim-scope 输出时去掉 scope id 段，--json 输出 JSON。
//
// resolve 命令说明:
//
//	默认走系统解析路径；--server 指定后直连该 DNS 服务器。
//	--allow 限定结果必须落在给定范围内（CIDR、单 IP 或 "起-止" 区间），
//	过滤后为空是合法的空结果。配置文件的 resolver 段提供默认值，
//	命令行参数优先。
//
// 退出码:
//
//	0: 命令执行成功
//	1: 执行失败（解析器错误等）
//	2: 参数错误（无效字面量、无效范围、未知命令等）
//
// 示例:
//
//	sockctl parse 192.0.2.1 --port 80               # → 192.0.2.1:80
//	sockctl parse "[fe80::1%3]:443" --trim-scope    # → [fe80::1]:443
//	sockctl parse 192.0.2.1 --map46 --json          # → {"address":"::ffff:192.0.2.1",...}
//	sockctl resolve example.com --server 1.1.1.1:53
//	sockctl -c sockctl.yaml resolve db.internal --allow 10.0.0.0/8
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "sockctl",
		Usage:   "套接字地址解析与格式化工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (YAML/JSON)",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if _, ok := err.(cli.ExitCoder); ok {
			// ExitErrHandler 已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// setupSignalHandler 设置信号处理。
// 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
