package xresolve_test

import (
	"context"
	"fmt"

	"github.com/omeyang/sockkit/pkg/net/xresolve"
	"github.com/omeyang/sockkit/pkg/net/xsockaddr"
)

// ExampleResolve 演示通过自定义解析器把名称解析为地址值。
func ExampleResolve() {
	// 固定结果的解析器，真实场景用 NewStdResolver / NewDNSResolver。
	stub := xresolve.RawResolverFunc(func(_ context.Context, _ string) ([][]byte, error) {
		a := xsockaddr.MustParse("192.0.2.1:443")
		raw, err := a.MarshalBinary()
		if err != nil {
			return nil, err
		}
		return [][]byte{raw}, nil
	})

	addrs, err := xresolve.Resolve(context.Background(), stub, "api.example.com")
	if err != nil {
		fmt.Println("resolve:", err)
		return
	}
	for _, a := range addrs {
		fmt.Println(a.FormatCompleteAddress(false))
	}
	// Output:
	// 192.0.2.1:443
}

// ExampleRawResolverFunc 演示函数适配器满足 RawResolver 接口。
func ExampleRawResolverFunc() {
	var r xresolve.RawResolver = xresolve.RawResolverFunc(
		func(_ context.Context, name string) ([][]byte, error) {
			fmt.Println("resolving", name)
			return nil, nil
		})

	_, _ = r.Resolve(context.Background(), "cache.internal")
	// Output:
	// resolving cache.internal
}
