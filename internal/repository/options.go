package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert collides with the employee identity index.
	ErrDuplicate = errors.New("duplicate employee identity")
)

// ValidationError carries field-level messages from the store.
type ValidationError struct {
	Messages []string
	Err      error
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SortKey orders a listing by one column.
type SortKey struct {
	Column string
	Desc   bool
}

// ListOptions describes one page of a listing. A zero Limit returns every row.
type ListOptions struct {
	Sort   []SortKey
	Limit  int
	Offset int
}

func orderByClause(keys []SortKey, columns map[string]struct{}) (string, error) {
	if len(keys) == 0 {
		return " ORDER BY id ASC", nil
	}
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := columns[key.Column]; !ok {
			return "", fmt.Errorf("unsortable column %q", key.Column)
		}
		dir := "ASC"
		if key.Desc {
			dir = "DESC"
		}
		parts = append(parts, pgx.Identifier{key.Column}.Sanitize()+" "+dir)
	}
	return " ORDER BY " + strings.Join(parts, ", "), nil
}

func pageClause(opts ListOptions) string {
	if opts.Limit <= 0 {
		return ""
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", opts.Limit, offset)
}
