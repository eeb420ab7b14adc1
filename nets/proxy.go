package nets

import (
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/aide/configs"
	"github.com/reusee/aide/logs"
	"github.com/reusee/aide/modes"
	"github.com/reusee/aide/vars"
	"golang.org/x/net/proxy"
)

// ProxyAddr is the proxy URL for remote destinations. Empty means
// connections dial direct.
type ProxyAddr string

func (p ProxyAddr) ConfigExpr() string {
	return "proxy_addr"
}

var _ configs.Configurable = ProxyAddr("")

var proxyEnvNames = []string{
	"ALL_PROXY", "all_proxy",
	"HTTP_PROXY", "http_proxy",
	"SOCKS_PROXY", "socks_proxy",
}

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (addr ProxyAddr) {
	defer func() {
		logger.Info("proxy", "addr", addr)
	}()

	if mode == modes.ModeDevelopment {
		return ""
	}

	addr = vars.FirstNonZero(
		configs.First[ProxyAddr](loader, "proxy_addr"),
		configs.First[ProxyAddr](loader, "proxy_address"),
		configs.First[ProxyAddr](loader, "http_proxy"),
		configs.First[ProxyAddr](loader, "socks_proxy"),
	)
	if addr != "" {
		return addr
	}
	for _, name := range proxyEnvNames {
		if value := os.Getenv(name); value != "" {
			return ProxyAddr(value)
		}
	}
	return ""
}

// GetProxyURL parses ProxyAddr once. A nil URL means no proxy is
// configured.
type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	addr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if addr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(addr))
		if err != nil {
			return nil, err
		}
		// golang.org/x/net/proxy registers socks5, not socks
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		return u, nil
	})
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	direct := any(&net.Dialer{}).(Dialer)
	return sync.OnceValues(func() (Dialer, error) {
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil {
			return direct, nil
		}
		p, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		return p.(Dialer), nil
	})
}
