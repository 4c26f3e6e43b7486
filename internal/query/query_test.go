package query

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/prakashprasanna/employee-directory/internal/repository"
	apperrors "github.com/prakashprasanna/employee-directory/pkg/errorutil"
)

var employeeRules = Rules{
	DefaultPageSize: 1000,
	MaxPageSize:     1000,
	Sortable: map[string]string{
		"id":         "id",
		"first_name": "first_name",
		"last_name":  "last_name",
		"age":        "age",
	},
}

func getter(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestParse(t *testing.T) {
	params, err := Parse(getter(map[string]string{
		"page[size]":         "25",
		"page[number]":       "3",
		"sort":               "-age, last_name,,",
		"stats[total]":       "count",
		"filter[department]": "Sales",
	}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := Params{
		PageSize:   25,
		PageNumber: 3,
		Sort:       []SortField{{Name: "age", Desc: true}, {Name: "last_name"}},
		StatsTotal: true,
	}
	if !reflect.DeepEqual(params, want) {
		t.Fatalf("expected %+v, got %+v", want, params)
	}
}

func TestParseDefaults(t *testing.T) {
	params, err := Parse(getter(nil))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if params.PageSize != 0 || params.PageNumber != 1 || len(params.Sort) != 0 || params.StatsTotal {
		t.Fatalf("unexpected defaults: %+v", params)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"zero size":       {"page[size]": "0"},
		"negative size":   {"page[size]": "-5"},
		"word size":       {"page[size]": "many"},
		"zero number":     {"page[number]": "0"},
		"bare minus sort": {"sort": "-"},
		"unknown stat":    {"stats[total]": "sum"},
	}

	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(getter(values))
			if err == nil {
				t.Fatalf("expected error")
			}
			if status := apperrors.ToDomainError(err).HTTPStatus; status != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", status)
			}
		})
	}
}

func TestTranslateAppendsTieBreak(t *testing.T) {
	opts, err := Translate(Params{PageSize: 10, PageNumber: 3, Sort: []SortField{{Name: "age", Desc: true}}}, employeeRules)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	want := repository.ListOptions{
		Sort:   []repository.SortKey{{Column: "age", Desc: true}, {Column: "id"}},
		Limit:  10,
		Offset: 20,
	}
	if !reflect.DeepEqual(opts, want) {
		t.Fatalf("expected %+v, got %+v", want, opts)
	}
}

func TestTranslateKeepsExplicitID(t *testing.T) {
	opts, err := Translate(Params{PageNumber: 1, Sort: []SortField{{Name: "id", Desc: true}}}, employeeRules)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if !reflect.DeepEqual(opts.Sort, []repository.SortKey{{Column: "id", Desc: true}}) {
		t.Fatalf("expected only the requested id key, got %+v", opts.Sort)
	}
	if opts.Limit != 1000 {
		t.Fatalf("expected default page size, got %d", opts.Limit)
	}
}

func TestTranslateRejects(t *testing.T) {
	if _, err := Translate(Params{PageSize: 1001, PageNumber: 1}, employeeRules); err == nil {
		t.Fatalf("expected error above max page size")
	}
	if _, err := Translate(Params{PageNumber: 1, Sort: []SortField{{Name: "department_name"}}}, employeeRules); err == nil {
		t.Fatalf("expected error for computed attribute sort")
	}
}

func TestTranslateRejectsOffsetOverflow(t *testing.T) {
	for _, raw := range []string{"4611686018427387905", "9223372036854775807"} {
		params, err := Parse(func(key string) string {
			switch key {
			case ParamPageSize:
				return "2"
			case ParamPageNumber:
				return raw
			}
			return ""
		})
		if err != nil {
			t.Fatalf("parse %s: %v", raw, err)
		}
		_, err = Translate(params, employeeRules)
		if domainErr := apperrors.ToDomainError(err); domainErr == nil || domainErr.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("page %s: expected 400, got %v", raw, err)
		}
	}

	opts, err := Translate(Params{PageSize: 2, PageNumber: 3}, employeeRules)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if opts.Offset != 4 || opts.Limit != 2 {
		t.Fatalf("unexpected page window %+v", opts)
	}
}
