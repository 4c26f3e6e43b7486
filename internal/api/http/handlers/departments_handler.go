package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prakashprasanna/employee-directory/internal/domain"
	"github.com/prakashprasanna/employee-directory/internal/query"
	"github.com/prakashprasanna/employee-directory/internal/resource"
)

// DepartmentsHandler serves the read-only department resource.
type DepartmentsHandler struct {
	resource *resource.Resource[domain.Department]
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(schema *resource.Schema) *DepartmentsHandler {
	return &DepartmentsHandler{resource: schema.Departments}
}

// List GET /api/v1/departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	return listResource(c, h.resource)
}

// Get GET /api/v1/departments/:id.
func (h *DepartmentsHandler) Get(c *fiber.Ctx) error {
	return findResource(c, h.resource)
}

func listResource[T any](c *fiber.Ctx, res *resource.Resource[T]) error {
	params, err := query.Parse(func(key string) string { return c.Query(key) })
	if err != nil {
		return err
	}
	doc, err := res.List(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(doc, resource.ContentType)
}

func findResource[T any](c *fiber.Ctx, res *resource.Resource[T]) error {
	doc, err := res.Find(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(doc, resource.ContentType)
}
