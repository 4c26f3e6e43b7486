package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/prakashprasanna/employee-directory/internal/domain"
	"github.com/prakashprasanna/employee-directory/internal/resource"
	"github.com/prakashprasanna/employee-directory/internal/service"
)

// EmployeesHandler serves the employee resource and the creation endpoint.
type EmployeesHandler struct {
	resource *resource.Resource[domain.Employee]
	service  *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(schema *resource.Schema, employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{resource: schema.Employees, service: employeeService}
}

// List GET /api/v1/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	return listResource(c, h.resource)
}

// Get GET /api/v1/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	return findResource(c, h.resource)
}

// Create POST /api/v1/addEmployees. The raw body goes to the service, which
// owns every validation step.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	emp, err := h.service.Create(c.UserContext(), c.Body())
	if err != nil {
		return err
	}
	attrs, err := h.resource.AttributesOf(c.UserContext(), *emp)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(attrs)
}
