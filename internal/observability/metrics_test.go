package observability

import (
	"testing"
	"time"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/v1/employees", "GET", 200, 3*time.Millisecond)
	m.RecordRequest("/api/v1/employees", "GET", 200, 2*time.Millisecond)
	m.RecordError("/api/v1/addEmployees", "POST", "CONFLICT")
	m.RecordEmployeeCreated()

	snap := m.Snapshot()
	if got := snap.Requests["/api/v1/employees|GET|200"]; got != 2 {
		t.Fatalf("expected 2 requests, got %d", got)
	}
	if got := snap.RequestDurationsMS["/api/v1/employees|GET|200"]; got != 5 {
		t.Fatalf("expected 5ms total, got %d", got)
	}
	if got := snap.Errors["/api/v1/addEmployees|POST|CONFLICT"]; got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if snap.EmployeesCreated != 1 {
		t.Fatalf("expected 1 created employee, got %d", snap.EmployeesCreated)
	}

	// the snapshot is a copy
	snap.Requests["/api/v1/employees|GET|200"] = 99
	if got := m.Snapshot().Requests["/api/v1/employees|GET|200"]; got != 2 {
		t.Fatalf("snapshot mutation leaked into metrics: %d", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	m.RecordEmployeeCreated()
	if snap := m.Snapshot(); len(snap.Requests) != 0 {
		t.Fatalf("expected empty snapshot")
	}
}
