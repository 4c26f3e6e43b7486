package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/prakashprasanna/employee-directory/internal/domain"
)

// EmployeeRepository handles persistence for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, draft EmployeeDraft) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	ExistsByIdentity(ctx context.Context, firstName, lastName string, departmentID int64) (bool, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Employee, error)
	Count(ctx context.Context) (int64, error)
}

var employeeColumns = map[string]struct{}{
	"id":            {},
	"first_name":    {},
	"last_name":     {},
	"age":           {},
	"position":      {},
	"department_id": {},
}

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
	pgNotNull         = "23502"
	pgDataException   = "22"
)

type employeeRepository struct {
	pool Querier
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(pool Querier) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, draft EmployeeDraft) (*domain.Employee, error) {
	emp, err := draft.Build()
	if err != nil {
		return nil, err
	}

	const query = `
        INSERT INTO employees (first_name, last_name, age, position, department_id)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id`

	if err := querierFrom(ctx, r.pool).QueryRow(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Age,
		emp.Position,
		emp.DepartmentID,
	).Scan(&emp.ID); err != nil {
		return nil, mapWriteError(err)
	}
	return &emp, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	const query = `
        SELECT id, first_name, last_name, age, position, department_id
        FROM employees WHERE id=$1`

	var emp domain.Employee
	if err := querierFrom(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.FirstName,
		&emp.LastName,
		&emp.Age,
		&emp.Position,
		&emp.DepartmentID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) ExistsByIdentity(ctx context.Context, firstName, lastName string, departmentID int64) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM employees
            WHERE first_name=$1 AND last_name=$2 AND department_id=$3
        )`
	var exists bool
	err := querierFrom(ctx, r.pool).QueryRow(ctx, query, firstName, lastName, departmentID).Scan(&exists)
	return exists, err
}

func (r *employeeRepository) List(ctx context.Context, opts ListOptions) ([]domain.Employee, error) {
	order, err := orderByClause(opts.Sort, employeeColumns)
	if err != nil {
		return nil, err
	}
	query := `
        SELECT id, first_name, last_name, age, position, department_id
        FROM employees` + order + pageClause(opts)

	rows, err := querierFrom(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	result := []domain.Employee{}
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.FirstName,
			&emp.LastName,
			&emp.Age,
			&emp.Position,
			&emp.DepartmentID,
		); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := querierFrom(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n)
	return n, err
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("insert employee: %w", err)
	}
	switch {
	case pgErr.Code == pgUniqueViolation:
		return ErrDuplicate
	case pgErr.Code == pgCheckViolation,
		pgErr.Code == pgNotNull,
		strings.HasPrefix(pgErr.Code, pgDataException):
		return &ValidationError{Messages: []string{pgErr.Message}, Err: err}
	}
	return fmt.Errorf("insert employee: %w", err)
}
