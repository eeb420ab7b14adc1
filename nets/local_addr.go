package nets

import "net"

// IsLocalAddr reports whether addr resolves to a loopback or private
// address. Unresolvable hosts count as remote.
type IsLocalAddr func(addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			// no port in addr
			host = addr
		}

		ips, err := net.LookupIP(host)
		if err != nil {
			return false, nil
		}

		for _, ip := range ips {
			if ip.IsLoopback() || ip.IsPrivate() {
				return true, nil
			}
		}
		return false, nil
	}
}
