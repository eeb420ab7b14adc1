package nets

import (
	"net/http"
)

// HTTPClient dials through the proxy-aware Dialer. No client timeout:
// assistant requests can legitimately run for minutes.
type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
		},
	}
}
