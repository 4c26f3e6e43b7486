package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/prakashprasanna/employee-directory/internal/domain"
)

func seedMemory(t *testing.T) *MemoryStore {
	t.Helper()
	ctx := context.Background()
	store := NewMemoryStore()

	for _, name := range []string{"Engineering", "Sales"} {
		if err := store.Departments().Create(ctx, &domain.Department{Name: name}); err != nil {
			t.Fatalf("create department: %v", err)
		}
	}

	drafts := []EmployeeDraft{
		{FirstName: "Ada", LastName: "Lovelace", Age: 36, Position: "Engineer", DepartmentID: 1},
		{FirstName: "Alan", LastName: "Turing", Age: 41, Position: "Engineer", DepartmentID: 1},
		{FirstName: "Grace", LastName: "Hopper", Age: 36, Position: "Manager", DepartmentID: 2},
		{FirstName: "Linus", LastName: "Torvalds", Age: 29, Position: "Engineer", DepartmentID: 2},
	}
	for _, d := range drafts {
		if _, err := store.Employees().Create(ctx, d); err != nil {
			t.Fatalf("create employee: %v", err)
		}
	}
	return store
}

func TestMemoryEmployeeIDsIncrease(t *testing.T) {
	store := seedMemory(t)
	emp, err := store.Employees().Create(context.Background(), EmployeeDraft{
		FirstName: "Barbara", LastName: "Liskov", Age: "84", Position: "Professor", DepartmentID: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if emp.ID != 5 {
		t.Fatalf("expected id 5, got %d", emp.ID)
	}
	if emp.Age != 84 {
		t.Fatalf("expected age coerced to 84, got %d", emp.Age)
	}
}

func TestMemoryEmployeeDuplicate(t *testing.T) {
	store := seedMemory(t)
	_, err := store.Employees().Create(context.Background(), EmployeeDraft{
		FirstName: "Ada", LastName: "Lovelace", Age: 37, Position: "Engineer", DepartmentID: 1,
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// same names in another department are a different identity
	if _, err := store.Employees().Create(context.Background(), EmployeeDraft{
		FirstName: "Ada", LastName: "Lovelace", Age: 37, Position: "Engineer", DepartmentID: 2,
	}); err != nil {
		t.Fatalf("expected insert in other department, got %v", err)
	}
}

func TestMemoryListSortAndPage(t *testing.T) {
	store := seedMemory(t)
	ctx := context.Background()

	rows, err := store.Employees().List(ctx, ListOptions{
		Sort: []SortKey{{Column: "age", Desc: true}, {Column: "id"}},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []int64{2, 1, 3, 4}
	for i, id := range want {
		if rows[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, rows[i].ID)
		}
	}

	page, err := store.Employees().List(ctx, ListOptions{Sort: []SortKey{{Column: "id"}}, Limit: 3, Offset: 3})
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 1 || page[0].ID != 4 {
		t.Fatalf("unexpected last page: %+v", page)
	}

	empty, err := store.Employees().List(ctx, ListOptions{Limit: 3, Offset: 30})
	if err != nil {
		t.Fatalf("list beyond end: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %d rows", len(empty))
	}

	if _, err := store.Employees().List(ctx, ListOptions{Sort: []SortKey{{Column: "department_name"}}}); err == nil {
		t.Fatalf("expected error sorting by unknown column")
	}
}

func TestMemoryDepartmentLookups(t *testing.T) {
	store := seedMemory(t)
	ctx := context.Background()

	dept, err := store.Departments().GetByName(ctx, "Sales")
	if err != nil || dept.ID != 2 {
		t.Fatalf("expected Sales with id 2, got %+v, %v", dept, err)
	}
	if _, err := store.Departments().GetByName(ctx, "sales"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected exact name match, got %v", err)
	}
	if _, err := store.Departments().GetByID(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	depts, err := store.Departments().GetByIDs(ctx, []int64{2, 99})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	if len(depts) != 1 || depts[0].Name != "Sales" {
		t.Fatalf("unexpected departments: %+v", depts)
	}
}
