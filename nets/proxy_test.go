package nets

import (
	"testing"

	"github.com/reusee/aide/configs"
	"github.com/reusee/aide/modes"
	"github.com/reusee/dscope"
)

func TestGetProxyURL(t *testing.T) {
	scope := dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	)

	scope.Fork(func() ProxyAddr {
		return "socks://127.0.0.1:1080"
	}).Call(func(
		getURL GetProxyURL,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" {
			t.Fatalf("got scheme %q", u.Scheme)
		}
		if u.Host != "127.0.0.1:1080" {
			t.Fatalf("got host %q", u.Host)
		}
	})

	scope.Fork(func() ProxyAddr {
		return ""
	}).Call(func(
		getURL GetProxyURL,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u != nil {
			t.Fatalf("expected no proxy, got %v", u)
		}
	})
}
