package repository

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/prakashprasanna/employee-directory/internal/domain"
)

const maxStringColumn = 255

// EmployeeDraft is an employee row before the store has coerced its values.
// Age holds the raw payload value (json.Number, string or a Go number).
type EmployeeDraft struct {
	FirstName    string
	LastName     string
	Age          any
	Position     string
	DepartmentID int64
}

// Build coerces the draft into a row, collecting every field-level failure.
func (d EmployeeDraft) Build() (domain.Employee, error) {
	var messages []string

	for _, col := range []struct {
		label string
		value string
	}{
		{"First name", d.FirstName},
		{"Last name", d.LastName},
		{"Position", d.Position},
	} {
		if utf8.RuneCountInString(col.value) > maxStringColumn {
			messages = append(messages, fmt.Sprintf("%s is too long (maximum is %d characters)", col.label, maxStringColumn))
		}
	}

	age, msg := coerceAge(d.Age)
	if msg != "" {
		messages = append(messages, msg)
	}

	if len(messages) > 0 {
		return domain.Employee{}, &ValidationError{Messages: messages}
	}

	return domain.Employee{
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Age:          age,
		Position:     d.Position,
		DepartmentID: d.DepartmentID,
	}, nil
}

func coerceAge(raw any) (int, string) {
	var f float64
	switch v := raw.(type) {
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		return coerceAge(string(v))
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			f = float64(n)
			break
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, "Age is not a number"
		}
		f = parsed
	default:
		return 0, "Age is not a number"
	}

	switch {
	case f != math.Trunc(f):
		return 0, "Age must be an integer"
	case f < 0:
		return 0, "Age must be greater than or equal to 0"
	case f > math.MaxInt32:
		return 0, fmt.Sprintf("Age must be less than or equal to %d", math.MaxInt32)
	}
	return int(f), ""
}
