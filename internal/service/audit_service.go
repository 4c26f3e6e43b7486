package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/prakashprasanna/employee-directory/internal/events"
	"github.com/prakashprasanna/employee-directory/internal/observability"
)

// AuditService records domain events in the log and in metrics.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventEmployeeCreated, a.handleEmployeeCreated)
}

func (a *AuditService) handleEmployeeCreated(_ context.Context, event events.Event) error {
	a.metrics.RecordEmployeeCreated()
	a.logger.Info("EmployeeCreated",
		zap.String("event_id", event.ID),
		zap.Int64("employee_id", event.ResourceID),
		zap.Any("payload", event.Payload),
	)
	return nil
}
