package xresolve

import (
	"context"
	"errors"

	"github.com/omeyang/sockkit/pkg/net/xsockaddr"
)

// RawResolver 是外部名称解析能力：把名称解析为原始线路地址缓冲区
// 序列（布局见 xsockaddr 的 wire.go）。
// 实现失败时应返回 [*ResolutionError]；返回其他错误时由 [Resolve]
// 补齐包装。成功但结果为零条时返回空切片和 nil。
type RawResolver interface {
	Resolve(ctx context.Context, name string) ([][]byte, error)
}

// RawResolverFunc 是 [RawResolver] 的函数适配器。
type RawResolverFunc func(ctx context.Context, name string) ([][]byte, error)

// Resolve 实现 [RawResolver]。
func (f RawResolverFunc) Resolve(ctx context.Context, name string) ([][]byte, error) {
	return f(ctx, name)
}

// Resolve 通过 r 解析 name，把每个原始缓冲区经 [xsockaddr.FromRaw]
// 构造为地址值。解析器失败以 [*ResolutionError] 形式返回；
// 解析器成功但零结果时返回空切片和 nil（合法结果，区别于失败）。
// Resolve 自身不设置超时，取消和截止期由 ctx 承担。
func Resolve(ctx context.Context, r RawResolver, name string) ([]xsockaddr.Addr, error) {
	if r == nil {
		return nil, ErrNilResolver
	}
	if name == "" {
		return nil, &ResolutionError{Name: name, Code: CodeInternal, Err: ErrEmptyName}
	}

	raws, err := r.Resolve(ctx, name)
	if err != nil {
		var rerr *ResolutionError
		if errors.As(err, &rerr) {
			return nil, err
		}
		return nil, &ResolutionError{Name: name, Code: CodeInternal, Err: err}
	}

	addrs := make([]xsockaddr.Addr, 0, len(raws))
	for _, raw := range raws {
		addrs = append(addrs, xsockaddr.FromRaw(raw))
	}
	return addrs, nil
}
