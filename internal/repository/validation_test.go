package repository

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestEmployeeDraftBuildAge(t *testing.T) {
	cases := []struct {
		name string
		age  any
		want int
		msg  string
	}{
		{name: "json number", age: json.Number("42"), want: 42},
		{name: "numeric string", age: " 31 ", want: 31},
		{name: "integral float", age: 30.0, want: 30},
		{name: "float string", age: "28.0", want: 28},
		{name: "word", age: "forty", msg: "Age is not a number"},
		{name: "bool", age: true, msg: "Age is not a number"},
		{name: "fraction", age: json.Number("30.5"), msg: "Age must be an integer"},
		{name: "negative", age: -1, msg: "Age must be greater than or equal to 0"},
		{name: "overflow", age: json.Number("3000000000"), msg: "Age must be less than or equal to 2147483647"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			emp, err := EmployeeDraft{FirstName: "A", LastName: "B", Position: "C", Age: tc.age}.Build()
			if tc.msg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if emp.Age != tc.want {
					t.Fatalf("expected age %d, got %d", tc.want, emp.Age)
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !reflect.DeepEqual(vErr.Messages, []string{tc.msg}) {
				t.Fatalf("expected %q, got %v", tc.msg, vErr.Messages)
			}
		})
	}
}

func TestEmployeeDraftBuildCollectsAllMessages(t *testing.T) {
	long := strings.Repeat("x", 256)
	_, err := EmployeeDraft{FirstName: long, LastName: "B", Position: long, Age: "abc"}.Build()

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{
		"First name is too long (maximum is 255 characters)",
		"Position is too long (maximum is 255 characters)",
		"Age is not a number",
	}
	if !reflect.DeepEqual(vErr.Messages, want) {
		t.Fatalf("unexpected messages: %v", vErr.Messages)
	}
}
