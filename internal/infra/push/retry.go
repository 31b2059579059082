// Package push wraps the concrete push transports with delivery
// reliability concerns shared across gateways.
package push

import (
	"context"
	"log/slog"
	"time"

	"huddle/internal/domain/service"

	"github.com/pkg/errors"
)

// Default retry budget: one initial send plus two re-sends.
const (
	DefaultMaxRetries = 2
	DefaultRetryDelay = time.Second
)

// Retrier wraps a PushTransport with a bounded retry budget for
// transient network failures. Validation failures and gateway
// rejections are terminal and pass through untouched.
//
// When fallback is enabled, each re-send toggles between the default
// path and the alternate port so a blocked 443 does not consume the
// whole budget. The current path is per-send state, never shared.
type Retrier struct {
	transport      service.PushTransport
	maxRetries     int
	delay          time.Duration
	enableFallback bool
	logger         *slog.Logger
}

// NewRetrier builds a retrier around a transport. Negative maxRetries
// and non-positive delay fall back to the defaults.
func NewRetrier(transport service.PushTransport, maxRetries int, delay time.Duration, enableFallback bool, logger *slog.Logger) *Retrier {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	return &Retrier{
		transport:      transport,
		maxRetries:     maxRetries,
		delay:          delay,
		enableFallback: enableFallback,
		logger:         logger,
	}
}

// Send delivers one push, re-sending on transient failures until the
// attempt budget is spent. It returns a terminal outcome in every case
// except context cancellation.
func (r *Retrier) Send(ctx context.Context, deviceToken string, msg *service.PushMessage) (*service.DeliveryOutcome, error) {
	path := service.PathDefault
	attempts := 0

	for {
		attempts++

		outcome, err := r.transport.Send(ctx, deviceToken, msg, path)
		if err == nil {
			outcome.Attempts = attempts

			return outcome, nil
		}

		if attempts > r.maxRetries {
			return &service.DeliveryOutcome{
				Class:    service.FailureNetwork,
				Reason:   err.Error(),
				Attempts: attempts,
				Path:     path,
			}, nil
		}

		r.logger.Warn("push attempt failed, retrying",
			slog.Int("attempt", attempts),
			slog.String("path", string(path)),
			slog.Any("error", err),
		)

		if r.enableFallback {
			path = path.Toggle()
		}

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "push cancelled while waiting to retry")
		case <-time.After(r.delay):
		}
	}
}
