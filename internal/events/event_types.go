package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated EventType = "employee_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID           string      `json:"id"`
	Type         EventType   `json:"type"`
	ResourceType string      `json:"resource_type"`
	ResourceID   int64       `json:"resource_id"`
	Timestamp    time.Time   `json:"timestamp"`
	Payload      interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, resourceType string, resourceID int64, payload interface{}) Event {
	return Event{
		ID:           uuid.NewString(),
		Type:         eventType,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Timestamp:    time.Now().UTC(),
		Payload:      payload,
	}
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DepartmentID   int64  `json:"department_id"`
	DepartmentName string `json:"department_name"`
}
