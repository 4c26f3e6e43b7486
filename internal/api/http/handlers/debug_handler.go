package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prakashprasanna/employee-directory/internal/domain"
	"github.com/prakashprasanna/employee-directory/internal/observability"
	"github.com/prakashprasanna/employee-directory/internal/repository"
	"github.com/prakashprasanna/employee-directory/internal/resource"
)

// DebugHandler dumps raw store contents and runtime counters.
type DebugHandler struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	schema      *resource.Schema
	metrics     *observability.Metrics
}

// NewDebugHandler constructs handler.
func NewDebugHandler(departments repository.DepartmentRepository, employees repository.EmployeeRepository, schema *resource.Schema, metrics *observability.Metrics) *DebugHandler {
	return &DebugHandler{departments: departments, employees: employees, schema: schema, metrics: metrics}
}

// Data GET /debug/data.
func (h *DebugHandler) Data(c *fiber.Ctx) error {
	depts, err := h.departments.List(c.UserContext(), repository.ListOptions{})
	if err != nil {
		return err
	}
	emps, err := h.employees.List(c.UserContext(), repository.ListOptions{})
	if err != nil {
		return err
	}
	if depts == nil {
		depts = []domain.Department{}
	}
	if emps == nil {
		emps = []domain.Employee{}
	}
	return c.JSON(fiber.Map{
		"employees":   emps,
		"departments": depts,
	})
}

// Schema GET /debug/schema.
func (h *DebugHandler) Schema(c *fiber.Ctx) error {
	return c.JSON(h.schema.Columns())
}

// Metrics GET /debug/metrics.
func (h *DebugHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(h.metrics.Snapshot())
}
