package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/prakashprasanna/employee-directory/internal/domain"
)

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Department, error)
	GetByName(ctx context.Context, name string) (*domain.Department, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Department, error)
	Count(ctx context.Context) (int64, error)
}

var departmentColumns = map[string]struct{}{
	"id":   {},
	"name": {},
}

type departmentRepository struct {
	pool Querier
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(pool Querier) DepartmentRepository {
	return &departmentRepository{pool: pool}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	const query = `
        INSERT INTO departments (name)
        VALUES ($1)
        RETURNING id`
	return querierFrom(ctx, r.pool).QueryRow(ctx, query, dept.Name).Scan(&dept.ID)
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	const query = `SELECT id, name FROM departments WHERE id=$1`
	return r.getOne(ctx, query, id)
}

// GetByName matches the name exactly; the lowest id wins when names repeat.
func (r *departmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	const query = `SELECT id, name FROM departments WHERE name=$1 ORDER BY id LIMIT 1`
	return r.getOne(ctx, query, name)
}

func (r *departmentRepository) getOne(ctx context.Context, query string, arg any) (*domain.Department, error) {
	var dept domain.Department
	if err := querierFrom(ctx, r.pool).QueryRow(ctx, query, arg).Scan(&dept.ID, &dept.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Department, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const query = `SELECT id, name FROM departments WHERE id = ANY($1) ORDER BY id`
	rows, err := querierFrom(ctx, r.pool).Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	return scanDepartments(rows)
}

func (r *departmentRepository) List(ctx context.Context, opts ListOptions) ([]domain.Department, error) {
	order, err := orderByClause(opts.Sort, departmentColumns)
	if err != nil {
		return nil, err
	}
	query := `SELECT id, name FROM departments` + order + pageClause(opts)

	rows, err := querierFrom(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return scanDepartments(rows)
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := querierFrom(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&n)
	return n, err
}

func scanDepartments(rows pgx.Rows) ([]domain.Department, error) {
	defer rows.Close()

	result := []domain.Department{}
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.Name); err != nil {
			return nil, err
		}
		result = append(result, dept)
	}
	return result, rows.Err()
}
