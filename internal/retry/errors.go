package retry

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// statusCoder matches SDK API errors that carry an HTTP status code.
type statusCoder interface {
	StatusCode() int
}

// IsTransient determines whether an error is transient and worth retrying:
// rate limits (HTTP 429), server errors (HTTP 5xx), network timeouts,
// connection resets, and temporary DNS failures.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var sc statusCoder
	if errors.As(err, &sc) {
		if isTransientStatusCode(sc.StatusCode()) {
			return true
		}
	}

	return isTransientNetworkError(err)
}

func isTransientStatusCode(code int) bool {
	if code == 429 {
		return true
	}
	return code >= 500 && code < 600
}

func isTransientNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true
		}
		if urlErr.Err != nil && isTransientNetworkError(urlErr.Err) {
			return true
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Temporary()
	}

	var syscallErr syscall.Errno
	if errors.As(err, &syscallErr) {
		switch syscallErr {
		case syscall.ECONNRESET,
			syscall.ECONNREFUSED,
			syscall.ETIMEDOUT:
			return true
		}
	}

	// Message-pattern fallback for errors the SDKs wrap opaquely.
	errMsg := strings.ToLower(err.Error())
	transientPatterns := []string{
		"connection reset",
		"connection refused",
		"timeout",
		"temporary failure",
		"service unavailable",
		"too many requests",
		"rate limit",
		"bad gateway",
		"gateway timeout",
	}
	for _, pattern := range transientPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}
