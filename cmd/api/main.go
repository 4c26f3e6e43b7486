package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/prakashprasanna/employee-directory/internal/api/http"
	"github.com/prakashprasanna/employee-directory/internal/api/http/handlers"
	"github.com/prakashprasanna/employee-directory/internal/config"
	"github.com/prakashprasanna/employee-directory/internal/events"
	"github.com/prakashprasanna/employee-directory/internal/lock"
	"github.com/prakashprasanna/employee-directory/internal/observability"
	"github.com/prakashprasanna/employee-directory/internal/persistence"
	"github.com/prakashprasanna/employee-directory/internal/repository"
	"github.com/prakashprasanna/employee-directory/internal/resource"
	"github.com/prakashprasanna/employee-directory/internal/seed"
	"github.com/prakashprasanna/employee-directory/internal/service"
	"github.com/prakashprasanna/employee-directory/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var (
		departmentRepo repository.DepartmentRepository
		employeeRepo   repository.EmployeeRepository
	)
	if pg.Enabled() {
		pool := pg.PoolHandle()
		departmentRepo = repository.NewDepartmentRepository(pool)
		employeeRepo = repository.NewEmployeeRepository(pool)
	} else {
		store := repository.NewMemoryStore()
		departmentRepo = store.Departments()
		employeeRepo = store.Employees()
	}

	if err := seed.Run(ctx, cfg.Seed, seed.Stores{Departments: departmentRepo, Employees: employeeRepo}, logger); err != nil {
		logger.Fatal("failed to seed store", zap.Error(err))
	}

	var locker lock.Locker = lock.NewLocalLocker(cfg.Lock.WaitTimeout())
	if redis.Enabled() {
		locker = lock.NewRedisLocker(redis.Client, cfg.Lock.TTL(), cfg.Lock.WaitTimeout(), logger)
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger, metrics))

	schema := resource.NewSchema(resource.Settings{
		BaseURL:            cfg.App.BaseURL,
		DepartmentPageSize: cfg.Resource.DepartmentPageSize,
		EmployeePageSize:   cfg.Resource.EmployeePageSize,
		MaxPageSize:        cfg.Resource.MaxPageSize,
	}, departmentRepo, employeeRepo)

	employeeService := service.NewEmployeeService(service.EmployeeDependencies{
		DepartmentRepo: departmentRepo,
		EmployeeRepo:   employeeRepo,
		Locker:         locker,
		Dispatcher:     dispatcher,
		Logger:         logger,
	})

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Departments: handlers.NewDepartmentsHandler(schema),
		Employees:   handlers.NewEmployeesHandler(schema, employeeService),
		Debug:       handlers.NewDebugHandler(departmentRepo, employeeRepo, schema, metrics),
		Scope:       pg.Scope(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
