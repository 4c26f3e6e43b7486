// Package seed fills an empty store with sample departments and employees.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/prakashprasanna/employee-directory/internal/config"
	"github.com/prakashprasanna/employee-directory/internal/domain"
	"github.com/prakashprasanna/employee-directory/internal/repository"
)

var departmentNames = []string{
	"Engineering",
	"Product",
	"Sales",
	"Marketing",
	"Finance",
	"Human Resources",
	"Operations",
	"Customer Support",
}

// Stores is the pair of repositories seeding writes through.
type Stores struct {
	Departments repository.DepartmentRepository
	Employees   repository.EmployeeRepository
}

// Run inserts sample data unless seeding is disabled or departments already
// exist. The same RandomSeed always produces the same rows.
func Run(ctx context.Context, cfg config.SeedConfig, stores Stores, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	count, err := stores.Departments.Count(ctx)
	if err != nil {
		return fmt.Errorf("count departments: %w", err)
	}
	if count > 0 {
		logger.Info("store already populated; skipping seed", zap.Int64("departments", count))
		return nil
	}

	faker := gofakeit.New(cfg.RandomSeed)
	created := 0
	for _, name := range departmentNames {
		dept := &domain.Department{Name: name}
		if err := stores.Departments.Create(ctx, dept); err != nil {
			return fmt.Errorf("seed department %q: %w", name, err)
		}

		for i := 0; i < cfg.EmployeesPerDepartment; i++ {
			draft := repository.EmployeeDraft{
				FirstName:    faker.FirstName(),
				LastName:     faker.LastName(),
				Age:          faker.Number(22, 65),
				Position:     faker.JobTitle(),
				DepartmentID: dept.ID,
			}
			_, err := stores.Employees.Create(ctx, draft)
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			if err != nil {
				return fmt.Errorf("seed employee in %q: %w", name, err)
			}
			created++
		}
	}

	logger.Info("seeded store",
		zap.Int("departments", len(departmentNames)),
		zap.Int("employees", created),
	)
	return nil
}
