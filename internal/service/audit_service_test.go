package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/prakashprasanna/employee-directory/internal/events"
	"github.com/prakashprasanna/employee-directory/internal/observability"
)

func TestAuditServiceCountsCreatedEmployees(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	NewAuditService(dispatcher, zap.NewNop(), metrics).RegisterHandlers()

	for i := int64(1); i <= 2; i++ {
		if err := dispatcher.Publish(context.Background(), events.NewEvent(events.EventEmployeeCreated, "employees", i, nil)); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	if got := metrics.Snapshot().EmployeesCreated; got != 2 {
		t.Fatalf("expected 2 created employees, got %d", got)
	}
}
