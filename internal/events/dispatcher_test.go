package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherInvokesAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls []string
	d.Subscribe(EventEmployeeCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "first")
		return errors.New("first failed")
	})
	d.Subscribe(EventEmployeeCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "second")
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventEmployeeCreated, "employees", 7, nil))
	if err == nil {
		t.Fatalf("expected joined handler error")
	}
	if len(calls) != 2 {
		t.Fatalf("expected both handlers to run, got %v", calls)
	}
}

func TestDispatcherIgnoresOtherTypes(t *testing.T) {
	d := NewInMemoryDispatcher()
	called := false
	d.Subscribe(EventType("other"), func(context.Context, Event) error {
		called = true
		return nil
	})

	if err := d.Publish(context.Background(), NewEvent(EventEmployeeCreated, "employees", 1, nil)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if called {
		t.Fatalf("handler for another type was invoked")
	}
}

func TestNewEvent(t *testing.T) {
	e := NewEvent(EventEmployeeCreated, "employees", 3, EmployeeCreatedPayload{FirstName: "Ada"})
	if e.ID == "" || e.Timestamp.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", e)
	}
	if e.ResourceID != 3 || e.ResourceType != "employees" {
		t.Fatalf("unexpected resource fields %+v", e)
	}
}
