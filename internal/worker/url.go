package worker

import (
	"fmt"
	"net/http"
	"net/url"
)

// RequestURL reconstructs the absolute URL of an inbound request.
//
// Requests in absolute form (proxy-style targets) round-trip byte for byte.
// For the usual origin form the scheme is inferred from the connection's TLS
// state and the host is taken from the Host header.
func RequestURL(r *http.Request) (string, error) {
	u, err := url.ParseRequestURI(r.RequestURI)
	if err != nil {
		return "", fmt.Errorf("parse request target %q: %w", r.RequestURI, err)
	}

	if u.Scheme == "" {
		if r.TLS != nil {
			u.Scheme = "https"
		} else {
			u.Scheme = "http"
		}
	}

	if u.Host == "" {
		u.Host = r.Host
	}

	return u.String(), nil
}
