// Package service hosts the application use cases. Each service orchestrates
// stores and domain construction for one entity family and owns the
// conflict/not-found semantics; the domain entities own field validation.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"flightplanner/internal/audit"
	"flightplanner/internal/platform/metrics"
)

type options struct {
	logger  *slog.Logger
	audit   audit.Publisher
	metrics *metrics.Metrics
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(o *options) {
		o.audit = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// emit records an entity change on the audit trail. Audit failures are logged
// and never fail the business operation.
func (o options) emit(ctx context.Context, entityType string, entityID uuid.UUID, action string) {
	if o.logger != nil {
		o.logger.InfoContext(ctx, "entity changed",
			"entity_type", entityType,
			"entity_id", entityID,
			"action", action,
			"log_type", "audit")
	}
	if o.audit == nil {
		return
	}
	event := audit.Event{EntityType: entityType, EntityID: entityID, Action: action}
	if err := o.audit.Emit(ctx, event); err != nil && o.logger != nil {
		o.logger.WarnContext(ctx, "audit emit failed",
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err)
	}
}
