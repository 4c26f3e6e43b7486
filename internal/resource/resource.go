// Package resource declares how stored entities are exposed on the wire:
// which attributes are visible, their types, computed attributes, and
// relationship links.
package resource

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/prakashprasanna/employee-directory/internal/query"
	"github.com/prakashprasanna/employee-directory/internal/repository"
	apperrors "github.com/prakashprasanna/employee-directory/pkg/errorutil"
)

// Namespace prefixes every resource endpoint.
const Namespace = "/api/v1"

// AttributeType tags an attribute with its semantic type.
type AttributeType string

const (
	Integer AttributeType = "integer"
	String  AttributeType = "string"
)

// RelationKind names the cardinality of a relationship.
type RelationKind string

const (
	HasMany   RelationKind = "has_many"
	BelongsTo RelationKind = "belongs_to"
)

// Store is the read side a resource is served from.
type Store[T any] interface {
	List(ctx context.Context, opts repository.ListOptions) ([]T, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*T, error)
}

// Attribute is one exposed field. Exactly one of Value and Resolve is set.
type Attribute[T any] struct {
	Name     string
	Type     AttributeType
	Sortable bool
	// Value passes a stored column through unchanged.
	Value func(T) any
	// Resolve computes the attribute for a whole page in one call and
	// returns one value per row, nil where nothing resolves.
	Resolve func(ctx context.Context, rows []T) ([]any, error)
}

// Relationship is a descriptive link; it never triggers a fetch.
type Relationship[T any] struct {
	Name    string
	Kind    RelationKind
	Related func(baseURL string, row T) string
}

// Resource is the static schema of one exposed entity type.
type Resource[T any] struct {
	Type            string
	Singular        string
	BaseURL         string
	DefaultPageSize int
	MaxPageSize     int
	ID              func(T) int64
	Attributes      []Attribute[T]
	Relationships   []Relationship[T]
	Store           Store[T]
}

// Rules exposes the pagination and sort rules for the query translator.
func (r *Resource[T]) Rules() query.Rules {
	sortable := map[string]string{query.TieBreakColumn: query.TieBreakColumn}
	for _, attr := range r.Attributes {
		if attr.Sortable && attr.Value != nil {
			sortable[attr.Name] = attr.Name
		}
	}
	return query.Rules{
		DefaultPageSize: r.DefaultPageSize,
		MaxPageSize:     r.MaxPageSize,
		Sortable:        sortable,
	}
}

// Columns lists the stored fields: id followed by every direct attribute.
func (r *Resource[T]) Columns() []string {
	cols := []string{"id"}
	for _, attr := range r.Attributes {
		if attr.Value != nil {
			cols = append(cols, attr.Name)
		}
	}
	return cols
}

// List returns one page of the collection.
func (r *Resource[T]) List(ctx context.Context, params query.Params) (*Document, error) {
	opts, err := query.Translate(params, r.Rules())
	if err != nil {
		return nil, err
	}

	rows, err := r.Store.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.Type, err)
	}

	objects, err := r.serialize(ctx, rows)
	if err != nil {
		return nil, err
	}

	doc := newDocument(objects)
	if params.StatsTotal {
		total, err := r.Store.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", r.Type, err)
		}
		doc.setTotal(total)
	}
	return doc, nil
}

// Find returns the resource with the given id, or a NotFound error.
func (r *Resource[T]) Find(ctx context.Context, rawID string) (*Document, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, r.notFound(rawID)
	}

	row, err := r.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, r.notFound(rawID)
		}
		return nil, fmt.Errorf("find %s %d: %w", r.Singular, id, err)
	}

	objects, err := r.serialize(ctx, []T{*row})
	if err != nil {
		return nil, err
	}
	return newDocument(objects[0]), nil
}

// AttributesOf returns the attribute map of a single row, id included.
func (r *Resource[T]) AttributesOf(ctx context.Context, row T) (map[string]any, error) {
	objects, err := r.serialize(ctx, []T{row})
	if err != nil {
		return nil, err
	}
	attrs := objects[0].Attributes
	attrs["id"] = r.ID(row)
	return attrs, nil
}

func (r *Resource[T]) serialize(ctx context.Context, rows []T) ([]Object, error) {
	objects := make([]Object, len(rows))
	for i, row := range rows {
		objects[i] = Object{
			ID:         strconv.FormatInt(r.ID(row), 10),
			Type:       r.Type,
			Attributes: make(map[string]any, len(r.Attributes)),
		}
		for _, attr := range r.Attributes {
			if attr.Value != nil {
				objects[i].Attributes[attr.Name] = attr.Value(row)
			}
		}
		if len(r.Relationships) > 0 {
			objects[i].Relationships = make(map[string]RelationshipObject, len(r.Relationships))
			for _, rel := range r.Relationships {
				objects[i].Relationships[rel.Name] = RelationshipObject{
					Links: map[string]string{"related": rel.Related(r.BaseURL, row)},
					Meta:  map[string]any{"included": false},
				}
			}
		}
	}

	for _, attr := range r.Attributes {
		if attr.Resolve == nil || len(rows) == 0 {
			continue
		}
		values, err := attr.Resolve(ctx, rows)
		if err != nil {
			return nil, fmt.Errorf("resolve %s.%s: %w", r.Type, attr.Name, err)
		}
		if len(values) != len(rows) {
			return nil, fmt.Errorf("resolve %s.%s: got %d values for %d rows", r.Type, attr.Name, len(values), len(rows))
		}
		for i := range objects {
			objects[i].Attributes[attr.Name] = values[i]
		}
	}
	return objects, nil
}

func (r *Resource[T]) notFound(id string) error {
	return apperrors.NewNotFound(fmt.Sprintf("%s %s", r.Singular, id))
}
