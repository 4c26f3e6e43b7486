package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prakashprasanna/employee-directory/internal/api/http/handlers"
	"github.com/prakashprasanna/employee-directory/internal/persistence"
	"github.com/prakashprasanna/employee-directory/internal/resource"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Departments *handlers.DepartmentsHandler
	Employees   *handlers.EmployeesHandler
	Debug       *handlers.DebugHandler
	Scope       persistence.ConnScope
}

// RegisterRoutes wires HTTP routes. Unmatched paths fall through to fiber's
// 404, which the error middleware renders like any other error.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	scope := cfg.Scope
	if scope == nil {
		scope = persistence.NopScope{}
	}

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group(resource.Namespace, connScopeMiddleware(scope))
	api.Get("/departments", cfg.Departments.List)
	api.Get("/departments/:id", cfg.Departments.Get)
	api.Get("/employees", cfg.Employees.List)
	api.Get("/employees/:id", cfg.Employees.Get)
	api.Post("/addEmployees", cfg.Employees.Create)

	app.Post("/addEmployees", connScopeMiddleware(scope), cfg.Employees.Create)

	dbg := app.Group("/debug", connScopeMiddleware(scope))
	dbg.Get("/data", cfg.Debug.Data)
	dbg.Get("/schema", cfg.Debug.Schema)
	dbg.Get("/metrics", cfg.Debug.Metrics)
}
