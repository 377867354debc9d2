package xsockaddr_test

import (
	"fmt"

	"github.com/omeyang/sockkit/pkg/net/xsockaddr"
)

func ExampleAddr_ParseNumericHost() {
	var a xsockaddr.Addr
	if err := a.ParseNumericHost("127.0.0.1"); err != nil {
		fmt.Println("error:", err)
		return
	}
	a.SetPort(8080, xsockaddr.HostOrder)
	fmt.Println(a.Family())
	fmt.Println(a.FormatCompleteAddress(false))
	// Output:
	// IPv4
	// 127.0.0.1:8080
}

func ExampleAddr_FormatCompleteAddress() {
	var a xsockaddr.Addr
	_ = a.ParseNumericHost("fe80::1")
	a.SetScopeID(3)
	a.SetPort(443, xsockaddr.HostOrder)
	fmt.Println(a.FormatCompleteAddress(false))
	fmt.Println(a.FormatCompleteAddress(true))
	// Output:
	// [fe80::1%3]:443
	// [fe80::1]:443
}

func ExampleAddr_MapDualMode4To6() {
	a := xsockaddr.MustParse("1.2.3.4:80")
	if err := a.MapDualMode4To6(); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(a.FormatAddress())
	fmt.Println(a.Port())
	// Output:
	// ::ffff:1.2.3.4
	// 80
}

func ExampleAddr_SetAddrLoopback() {
	a := xsockaddr.New(xsockaddr.FamilyInet6)
	a.SetPort(443, xsockaddr.HostOrder)
	_ = a.SetAddrLoopback()
	fmt.Println(a.FormatCompleteAddress(false))
	fmt.Println(a.IsAddrLoopback())
	// Output:
	// [::1]:443
	// true
}
