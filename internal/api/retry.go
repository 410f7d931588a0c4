package api

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// RetryPolicy reports whether a request should be retried. It receives
// the response (possibly nil) and the transport error (possibly nil).
type RetryPolicy func(resp *resty.Response, err error) bool

// DefaultRetryPolicy retries throttled (429) and server-side (5xx)
// responses. It never retries cancelled or deadline-exceeded contexts,
// and treats DNS resolution failures as permanent.
func DefaultRetryPolicy(resp *resty.Response, err error) bool {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return false
		}
		return true
	}

	if resp == nil {
		return false
	}

	switch {
	case resp.StatusCode() == http.StatusTooManyRequests:
		return true
	case resp.StatusCode() >= http.StatusInternalServerError:
		return true
	}

	return false
}
