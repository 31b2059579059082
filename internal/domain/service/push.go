package service

import (
	"context"
	"time"
)

// PushType distinguishes user-visible alerts from silent background pushes.
type PushType string

// Push types mapped to the apns-push-type header.
const (
	PushTypeAlert      PushType = "alert"
	PushTypeBackground PushType = "background"
)

// Delivery priorities mapped to the apns-priority header.
// Background pushes must use PriorityLow.
const (
	PriorityLow  = 5
	PriorityHigh = 10
)

// DeliveryPath selects which HTTPS port the gateway is dialed on.
// Some networks block 443 outbound; the alternate path uses 2197.
type DeliveryPath string

// Delivery paths.
const (
	PathDefault   DeliveryPath = "default"
	PathAlternate DeliveryPath = "alternate"
)

// Toggle returns the other delivery path.
func (p DeliveryPath) Toggle() DeliveryPath {
	if p == PathDefault {
		return PathAlternate
	}

	return PathDefault
}

// Alert is the user-visible portion of a push message.
// It is nil on background pushes.
type Alert struct {
	Title    string
	Subtitle string
	Body     string
}

// PushMessage is a transport-independent push notification payload.
type PushMessage struct {
	Type     PushType
	Alert    *Alert // Required for alert pushes, must be nil for background pushes.
	Data     map[string]string
	Badge    *int
	Sound    string
	Priority int

	// CollapseID folds multiple undelivered pushes into one on the
	// device. At most 64 bytes.
	CollapseID string

	// Expiration is the time until which the gateway stores the push
	// for an offline device. Zero means deliver once, now or never.
	Expiration time.Time
}

// FailureClass categorizes why a delivery did not succeed.
type FailureClass string

// Failure classes.
const (
	// FailureNone means the push was delivered.
	FailureNone FailureClass = ""

	// FailureValidation means the message or endpoint failed local
	// checks and was never sent. Never retried.
	FailureValidation FailureClass = "validation"

	// FailureRejected means the gateway refused the push with a
	// definitive reason. Never retried.
	FailureRejected FailureClass = "rejected"

	// FailureNetwork means the gateway could not be reached. The
	// retrier re-sends these up to its attempt budget.
	FailureNetwork FailureClass = "network"
)

// DeliveryOutcome is the terminal result of delivering one push to one endpoint.
type DeliveryOutcome struct {
	Delivered bool
	Class     FailureClass
	Reason    string // Gateway reason string or validation message.

	// Invalid marks the endpoint as permanently unusable (bad token,
	// unregistered device, token for another topic). Callers should
	// drop the endpoint instead of ever sending to it again.
	Invalid bool

	// ApnsID is the gateway-assigned ID of the accepted push.
	ApnsID string

	// Attempts is the number of sends performed, including the
	// successful or final failing one.
	Attempts int

	// Path is the delivery path of the final attempt.
	Path DeliveryPath
}

// PushTransport delivers a single push message to a single device token.
//
// A non-nil error means the gateway could not be reached and the send
// may be retried. Validation failures and gateway rejections are NOT
// errors; they come back as a classified outcome with a nil error.
type PushTransport interface {
	Send(ctx context.Context, deviceToken string, msg *PushMessage, path DeliveryPath) (*DeliveryOutcome, error)
}

// PushCredentialSource manages the provider authentication used by a
// transport. Refresh re-signs the bearer if it is older than the
// provider allows; the dispatcher calls it once per fan-out batch so
// every concurrent send shares one fresh credential.
type PushCredentialSource interface {
	Refresh(ctx context.Context) error
}

// PushRetrier is a transport wrapped with a bounded retry budget for
// transient network failures. The returned error is non-nil only when
// the context is cancelled mid-send.
type PushRetrier interface {
	Send(ctx context.Context, deviceToken string, msg *PushMessage) (*DeliveryOutcome, error)
}

// FanoutReport aggregates the per-endpoint outcomes of one dispatch.
type FanoutReport struct {
	Delivered int
	Failed    int

	// InvalidTokens lists the push tokens whose endpoints were
	// reported permanently invalid. The dispatcher only collects
	// them; removal is the caller's concern.
	InvalidTokens []string
}
