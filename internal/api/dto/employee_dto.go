package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Creation payload field names. department_id carries a department name.
const (
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldAge          = "age"
	FieldPosition     = "position"
	FieldDepartmentID = "department_id"
)

// RequiredEmployeeFields lists the creation fields in reporting order.
var RequiredEmployeeFields = []string{FieldFirstName, FieldLastName, FieldAge, FieldPosition, FieldDepartmentID}

// ErrMalformedBody is returned when the body is not a single JSON object.
var ErrMalformedBody = errors.New("malformed JSON body")

// CreateEmployeeRequest is the decoded POST /addEmployees payload.
// It is kept loose so absent, null and blank fields can be told apart from
// type errors, which the store reports.
type CreateEmployeeRequest map[string]any

// DecodeCreateEmployeeRequest parses body as one JSON object. Numbers stay json.Number.
func DecodeCreateEmployeeRequest(body []byte) (CreateEmployeeRequest, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var req CreateEmployeeRequest
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if req == nil {
		return nil, ErrMalformedBody
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformedBody)
	}
	return req, nil
}

// MissingFields returns every required field that is absent, null or blank.
func (r CreateEmployeeRequest) MissingFields() []string {
	var missing []string
	for _, field := range RequiredEmployeeFields {
		if r.blank(field) {
			missing = append(missing, field)
		}
	}
	return missing
}

// Text returns a field as trimmed text; non-string values are formatted.
func (r CreateEmployeeRequest) Text(field string) string {
	return strings.TrimSpace(r.Exact(field))
}

// Exact returns a field as text without trimming.
func (r CreateEmployeeRequest) Exact(field string) string {
	switch v := r[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Raw returns a field exactly as decoded.
func (r CreateEmployeeRequest) Raw(field string) any {
	return r[field]
}

func (r CreateEmployeeRequest) blank(field string) bool {
	v, ok := r[field]
	if !ok || v == nil {
		return true
	}
	if s, isString := v.(string); isString {
		return strings.TrimSpace(s) == ""
	}
	return false
}
