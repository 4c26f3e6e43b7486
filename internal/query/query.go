// Package query turns pagination and sort parameters into deterministic
// store queries.
package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/prakashprasanna/employee-directory/internal/repository"
	apperrors "github.com/prakashprasanna/employee-directory/pkg/errorutil"
)

const (
	ParamPageSize   = "page[size]"
	ParamPageNumber = "page[number]"
	ParamSort       = "sort"
	ParamStatsTotal = "stats[total]"

	// TieBreakColumn is appended to every sort so equal rows keep a fixed order across pages.
	TieBreakColumn = "id"
)

// Params are the raw listing parameters of one request.
// Filter parameters are not read; clients filter the fetched page themselves.
type Params struct {
	PageSize   int // 0 means the resource default
	PageNumber int
	Sort       []SortField
	StatsTotal bool
}

// SortField is one requested sort key.
type SortField struct {
	Name string
	Desc bool
}

// Rules describe what one resource allows.
type Rules struct {
	DefaultPageSize int
	MaxPageSize     int
	// Sortable maps attribute names to store columns.
	Sortable map[string]string
}

// Parse reads listing parameters through get, which returns "" for absent keys.
func Parse(get func(key string) string) (Params, error) {
	params := Params{PageNumber: 1}

	if raw := get(ParamPageSize); raw != "" {
		size, err := positiveInt(raw)
		if err != nil {
			return Params{}, apperrors.NewInvalidQuery(ParamPageSize + " must be a positive integer")
		}
		params.PageSize = size
	}

	if raw := get(ParamPageNumber); raw != "" {
		number, err := positiveInt(raw)
		if err != nil {
			return Params{}, apperrors.NewInvalidQuery(ParamPageNumber + " must be a positive integer")
		}
		params.PageNumber = number
	}

	for _, part := range strings.Split(get(ParamSort), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		field := SortField{Name: part}
		if strings.HasPrefix(part, "-") {
			field = SortField{Name: strings.TrimSpace(part[1:]), Desc: true}
		}
		if field.Name == "" {
			return Params{}, apperrors.NewInvalidQuery("sort attribute must not be empty")
		}
		params.Sort = append(params.Sort, field)
	}

	switch stats := get(ParamStatsTotal); stats {
	case "":
	case "count":
		params.StatsTotal = true
	default:
		return Params{}, apperrors.NewInvalidQuery(fmt.Sprintf("unsupported stat %q for total", stats))
	}

	return params, nil
}

// Translate validates params against rules and builds the store query.
func Translate(params Params, rules Rules) (repository.ListOptions, error) {
	size := params.PageSize
	if size == 0 {
		size = rules.DefaultPageSize
	}
	if size <= 0 {
		return repository.ListOptions{}, apperrors.NewInvalidQuery(ParamPageSize + " must be a positive integer")
	}
	if rules.MaxPageSize > 0 && size > rules.MaxPageSize {
		return repository.ListOptions{}, apperrors.NewInvalidQuery(fmt.Sprintf("%s must not exceed %d", ParamPageSize, rules.MaxPageSize))
	}

	number := params.PageNumber
	if number <= 0 {
		number = 1
	}
	if number-1 > math.MaxInt/size {
		return repository.ListOptions{}, apperrors.NewInvalidQuery(ParamPageNumber + " is out of range")
	}

	keys := make([]repository.SortKey, 0, len(params.Sort)+1)
	hasTieBreak := false
	for _, field := range params.Sort {
		column, ok := rules.Sortable[field.Name]
		if !ok {
			return repository.ListOptions{}, apperrors.NewInvalidQuery("unknown sort attribute: " + field.Name)
		}
		if column == TieBreakColumn {
			hasTieBreak = true
		}
		keys = append(keys, repository.SortKey{Column: column, Desc: field.Desc})
	}
	if !hasTieBreak {
		keys = append(keys, repository.SortKey{Column: TieBreakColumn})
	}

	return repository.ListOptions{
		Sort:   keys,
		Limit:  size,
		Offset: (number - 1) * size,
	}, nil
}

func positiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}
