package xsockaddr

import (
	"strconv"
)

// FormatAddress 只渲染地址部分（不含端口和 scope）的规范文本形式。
// 输出长度不超过 [IPStringMaxLength]。族不是 IPv4/IPv6 时返回空串。
func (a Addr) FormatAddress() string {
	ip, ok := a.Netip()
	if !ok {
		return ""
	}
	return ip.String()
}

// FormatCompleteAddress 渲染完整端点：地址、IPv6 的 scope id（非零时）
// 以及端口（非零时），形式与平台规范一致：
//
//	IPv4:        "1.2.3.4:80"、"1.2.3.4"
//	IPv6:        "[fe80::1%3]:443"、"fe80::1%3"、"::1"
//
// trimScope 为 true 且族为 IPv6 时，"%scope" 段通过纯字符串手术移除：
// 后续字符（若有端口段）左移覆盖 scope 段，没有端口段时直接截断。
// 字符串其余部分保持逐字不变。族不是 IPv4/IPv6 时返回空串。
func (a Addr) FormatCompleteAddress(trimScope bool) string {
	ip, ok := a.Netip()
	if !ok {
		return ""
	}

	port := a.Port()
	var s string
	if a.Family() == FamilyInet6 {
		s = ip.String()
		if scope := a.ScopeID(); scope != 0 {
			s += "%" + strconv.FormatUint(uint64(scope), 10)
		}
		if port != 0 {
			s = "[" + s + "]:" + strconv.FormatUint(uint64(port), 10)
		}
		if trimScope {
			s = trimScopeSegment(s)
		}
		return s
	}

	s = ip.String()
	if port != 0 {
		s += ":" + strconv.FormatUint(uint64(port), 10)
	}
	return s
}

// String 返回完整端点形式（不裁剪 scope），实现 fmt.Stringer。
func (a Addr) String() string {
	return a.FormatCompleteAddress(false)
}

// trimScopeSegment 在渲染结果上移除 "%scope" 段。
// 若 '%' 之后存在 ']'（带端口的方括号形式），把 ']' 起的后续字符
// 左移覆盖 scope 段；否则 scope 段位于末尾，直接截断。
// 操作只在已渲染的长度内进行，不越界读取。
func trimScopeSegment(s string) string {
	b := []byte(s)
	scope := -1
	for i := 0; i < len(b); i++ {
		if b[i] == '%' {
			scope = i
			break
		}
	}
	if scope < 0 {
		return s
	}
	move := -1
	for i := scope + 1; i < len(b); i++ {
		if b[i] == ']' {
			move = i
			break
		}
	}
	if move < 0 {
		// 没有端口段跟随，scope 段在末尾
		return string(b[:scope])
	}
	n := copy(b[scope:], b[move:])
	return string(b[:scope+n])
}
