package resource

import (
	"context"
	"fmt"

	"github.com/prakashprasanna/employee-directory/internal/domain"
	"github.com/prakashprasanna/employee-directory/internal/repository"
)

// Settings are the startup values shared by every resource.
type Settings struct {
	BaseURL            string
	DepartmentPageSize int
	EmployeePageSize   int
	MaxPageSize        int
}

// Schema holds every exposed resource. It is built once at startup.
type Schema struct {
	Departments *Resource[domain.Department]
	Employees   *Resource[domain.Employee]
}

// NewSchema declares the department and employee resources.
func NewSchema(settings Settings, departments repository.DepartmentRepository, employees repository.EmployeeRepository) *Schema {
	return &Schema{
		Departments: newDepartmentResource(settings, departments),
		Employees:   newEmployeeResource(settings, employees, departments),
	}
}

// Columns lists the stored fields per entity, keyed like the debug schema dump.
func (s *Schema) Columns() map[string][]string {
	return map[string][]string{
		"department_columns": s.Departments.Columns(),
		"employee_columns":   s.Employees.Columns(),
	}
}

func newDepartmentResource(settings Settings, departments repository.DepartmentRepository) *Resource[domain.Department] {
	return &Resource[domain.Department]{
		Type:            "departments",
		Singular:        "department",
		BaseURL:         settings.BaseURL,
		DefaultPageSize: settings.DepartmentPageSize,
		MaxPageSize:     settings.MaxPageSize,
		ID:              func(d domain.Department) int64 { return d.ID },
		Attributes: []Attribute[domain.Department]{
			{Name: "name", Type: String, Sortable: true, Value: func(d domain.Department) any { return d.Name }},
		},
		Relationships: []Relationship[domain.Department]{
			{
				Name: "employees",
				Kind: HasMany,
				Related: func(base string, d domain.Department) string {
					return fmt.Sprintf("%s%s/employees?filter[department_id]=%d", base, Namespace, d.ID)
				},
			},
		},
		Store: departments,
	}
}

func newEmployeeResource(settings Settings, employees repository.EmployeeRepository, departments repository.DepartmentRepository) *Resource[domain.Employee] {
	return &Resource[domain.Employee]{
		Type:            "employees",
		Singular:        "employee",
		BaseURL:         settings.BaseURL,
		DefaultPageSize: settings.EmployeePageSize,
		MaxPageSize:     settings.MaxPageSize,
		ID:              func(e domain.Employee) int64 { return e.ID },
		Attributes: []Attribute[domain.Employee]{
			{Name: "first_name", Type: String, Sortable: true, Value: func(e domain.Employee) any { return e.FirstName }},
			{Name: "last_name", Type: String, Sortable: true, Value: func(e domain.Employee) any { return e.LastName }},
			{Name: "age", Type: Integer, Sortable: true, Value: func(e domain.Employee) any { return e.Age }},
			{Name: "position", Type: String, Sortable: true, Value: func(e domain.Employee) any { return e.Position }},
			{Name: "department_id", Type: Integer, Sortable: true, Value: func(e domain.Employee) any { return e.DepartmentID }},
			{Name: "department_name", Type: String, Resolve: DepartmentNames(departments)},
		},
		Relationships: []Relationship[domain.Employee]{
			{
				Name: "department",
				Kind: BelongsTo,
				Related: func(base string, e domain.Employee) string {
					return fmt.Sprintf("%s%s/departments/%d", base, Namespace, e.DepartmentID)
				},
			},
		},
		Store: employees,
	}
}

// DepartmentNames resolves each employee's department name with one lookup
// per page. Employees whose department does not exist get nil.
func DepartmentNames(departments repository.DepartmentRepository) func(context.Context, []domain.Employee) ([]any, error) {
	return func(ctx context.Context, rows []domain.Employee) ([]any, error) {
		seen := make(map[int64]struct{}, len(rows))
		ids := make([]int64, 0, len(rows))
		for _, e := range rows {
			if _, ok := seen[e.DepartmentID]; ok {
				continue
			}
			seen[e.DepartmentID] = struct{}{}
			ids = append(ids, e.DepartmentID)
		}

		found, err := departments.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		names := make(map[int64]string, len(found))
		for _, d := range found {
			names[d.ID] = d.Name
		}

		values := make([]any, len(rows))
		for i, e := range rows {
			if name, ok := names[e.DepartmentID]; ok {
				values[i] = name
			}
		}
		return values, nil
	}
}
