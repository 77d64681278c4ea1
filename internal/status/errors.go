package status

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Pipeline errors. The fetch path surfaces only the two upstream
// failures; everything downstream of a successful fetch is total.
var (
	// ErrInvalidTimezone is returned for timezones outside the allow
	// list, before any network call is attempted.
	ErrInvalidTimezone = errors.New("timezone not allowed")

	// ErrUpstreamTimeout is returned when the source fetch exhausted
	// its retries on timeouts.
	ErrUpstreamTimeout = errors.New("upstream status source timed out")

	// ErrUpstreamUnreachable is returned for all other upstream fetch
	// failures.
	ErrUpstreamUnreachable = errors.New("upstream status source unreachable")
)

// ClassifyFetchError maps a transport failure onto the upstream error
// taxonomy. Timeouts and deadline expiries become ErrUpstreamTimeout;
// everything else is ErrUpstreamUnreachable.
func ClassifyFetchError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
}
