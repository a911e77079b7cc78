package httpx

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// HTTPStatusCoder is implemented by transport errors that carry the
// upstream HTTP status code.
type HTTPStatusCoder interface {
	HTTPStatusCode() int
}

// StatusCode extracts the upstream HTTP status from err, or 0 when the
// error carries none (network failure, timeout, decode error).
func StatusCode(err error) int {
	if err == nil {
		return 0
	}
	var sc HTTPStatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatusCode()
	}
	return 0
}

// IsAuthStatus reports whether the upstream rejected our credentials.
func IsAuthStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// IsOverloadedStatus reports whether the upstream is shedding load.
func IsOverloadedStatus(code int) bool {
	return code == http.StatusTooManyRequests
}

// IsUnavailableStatus covers transient upstream failure modes worth
// advising the caller to retry later.
func IsUnavailableStatus(code int) bool {
	if code == http.StatusRequestTimeout {
		return true
	}
	return code >= 500 && code <= 599
}

// IsTimeoutError reports whether err is a deadline or network timeout
// rather than an upstream-reported failure.
func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
