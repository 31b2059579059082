package usecase

import (
	"context"

	"huddle/internal/domain/service"
)

// Dispatch summary statuses reported back to the mutation's caller.
const (
	DispatchStatusSent    = "sent"
	DispatchStatusQueued  = "queued"
	DispatchStatusDropped = "dropped"
	DispatchStatusFailed  = "failed"
)

// DispatchSummary reports what became of the push fan-out a mutation
// triggered, so handlers can surface the counts in their response.
// Sent means an inline dispatch ran and the counts are final; queued
// means the worker delivers later and no counts exist yet; dropped
// means the audience resolved to nobody.
type DispatchSummary struct {
	Status    string `json:"status"`
	Delivered int    `json:"delivered"`
	Failed    int    `json:"failed"`
}

// NotificationUsecase defines the interface for push notification fan-out.
type NotificationUsecase interface {
	// Notify resolves the event's audience and hands it off for
	// delivery: dispatched inline or published to the queue for the
	// worker, depending on configuration. An event whose audience
	// resolves to nobody is dropped without touching any transport.
	// The summary carries the delivery counts when dispatch ran inline.
	Notify(ctx context.Context, event *service.NotificationEvent) (*DispatchSummary, error)

	// Dispatch fans the event out to every device of its pre-resolved
	// audience and reports the aggregate outcome. Dispatch never writes
	// domain state; endpoints a gateway reported permanently invalid
	// come back in the report for the caller to purge.
	Dispatch(ctx context.Context, event *service.NotificationEvent) (*service.FanoutReport, error)

	// PurgeInvalidEndpoints removes device endpoints whose push tokens
	// a gateway declared permanently invalid.
	PurgeInvalidEndpoints(ctx context.Context, pushTokens []string) error
}
