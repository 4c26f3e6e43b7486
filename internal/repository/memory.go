package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/prakashprasanna/employee-directory/internal/domain"
)

// MemoryStore keeps departments and employees in process memory.
// It backs development runs without Postgres and the test suites.
type MemoryStore struct {
	mu          sync.RWMutex
	departments []domain.Department
	employees   []domain.Employee
	nextDeptID  int64
	nextEmpID   int64
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Departments exposes the store as a DepartmentRepository.
func (s *MemoryStore) Departments() DepartmentRepository {
	return memoryDepartments{s}
}

// Employees exposes the store as an EmployeeRepository.
func (s *MemoryStore) Employees() EmployeeRepository {
	return memoryEmployees{s}
}

type memoryDepartments struct{ s *MemoryStore }

func (m memoryDepartments) Create(_ context.Context, dept *domain.Department) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.nextDeptID++
	dept.ID = m.s.nextDeptID
	m.s.departments = append(m.s.departments, *dept)
	return nil
}

func (m memoryDepartments) GetByID(_ context.Context, id int64) (*domain.Department, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	for _, d := range m.s.departments {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (m memoryDepartments) GetByIDs(_ context.Context, ids []int64) ([]domain.Department, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	result := []domain.Department{}
	for _, d := range m.s.departments {
		if slices.Contains(ids, d.ID) {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m memoryDepartments) GetByName(_ context.Context, name string) (*domain.Department, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	for _, d := range m.s.departments {
		if d.Name == name {
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (m memoryDepartments) List(_ context.Context, opts ListOptions) ([]domain.Department, error) {
	m.s.mu.RLock()
	rows := slices.Clone(m.s.departments)
	m.s.mu.RUnlock()
	return sortAndPage(rows, opts, departmentField)
}

func (m memoryDepartments) Count(_ context.Context) (int64, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return int64(len(m.s.departments)), nil
}

type memoryEmployees struct{ s *MemoryStore }

// Create checks the identity tuple and inserts under one lock, like a unique index would.
func (m memoryEmployees) Create(_ context.Context, draft EmployeeDraft) (*domain.Employee, error) {
	emp, err := draft.Build()
	if err != nil {
		return nil, err
	}

	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, e := range m.s.employees {
		if sameIdentity(e, emp.FirstName, emp.LastName, emp.DepartmentID) {
			return nil, ErrDuplicate
		}
	}
	m.s.nextEmpID++
	emp.ID = m.s.nextEmpID
	m.s.employees = append(m.s.employees, emp)
	return &emp, nil
}

func (m memoryEmployees) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	for _, e := range m.s.employees {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (m memoryEmployees) ExistsByIdentity(_ context.Context, firstName, lastName string, departmentID int64) (bool, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	for _, e := range m.s.employees {
		if sameIdentity(e, firstName, lastName, departmentID) {
			return true, nil
		}
	}
	return false, nil
}

func (m memoryEmployees) List(_ context.Context, opts ListOptions) ([]domain.Employee, error) {
	m.s.mu.RLock()
	rows := slices.Clone(m.s.employees)
	m.s.mu.RUnlock()
	return sortAndPage(rows, opts, employeeField)
}

func (m memoryEmployees) Count(_ context.Context) (int64, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return int64(len(m.s.employees)), nil
}

func sameIdentity(e domain.Employee, firstName, lastName string, departmentID int64) bool {
	return e.FirstName == firstName && e.LastName == lastName && e.DepartmentID == departmentID
}

func departmentField(d domain.Department, column string) (any, bool) {
	switch column {
	case "id":
		return d.ID, true
	case "name":
		return d.Name, true
	}
	return nil, false
}

func employeeField(e domain.Employee, column string) (any, bool) {
	switch column {
	case "id":
		return e.ID, true
	case "first_name":
		return e.FirstName, true
	case "last_name":
		return e.LastName, true
	case "age":
		return int64(e.Age), true
	case "position":
		return e.Position, true
	case "department_id":
		return e.DepartmentID, true
	}
	return nil, false
}

func sortAndPage[T any](rows []T, opts ListOptions, field func(T, string) (any, bool)) ([]T, error) {
	keys := opts.Sort
	if len(keys) == 0 {
		keys = []SortKey{{Column: "id"}}
	}
	var zero T
	for _, key := range keys {
		if _, ok := field(zero, key.Column); !ok {
			return nil, fmt.Errorf("unsortable column %q", key.Column)
		}
	}

	// rows equal on every key keep insertion (id) order
	slices.SortStableFunc(rows, func(a, b T) int {
		for _, key := range keys {
			av, _ := field(a, key.Column)
			bv, _ := field(b, key.Column)
			c := compareValues(av, bv)
			if key.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})

	if opts.Limit <= 0 {
		return rows, nil
	}
	start := max(opts.Offset, 0)
	if start >= len(rows) {
		return []T{}, nil
	}
	end := min(start+opts.Limit, len(rows))
	return rows[start:end], nil
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case int64:
		return cmp.Compare(av, b.(int64))
	case string:
		return cmp.Compare(av, b.(string))
	}
	return 0
}
