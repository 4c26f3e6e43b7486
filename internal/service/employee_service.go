package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/prakashprasanna/employee-directory/internal/api/dto"
	"github.com/prakashprasanna/employee-directory/internal/domain"
	"github.com/prakashprasanna/employee-directory/internal/events"
	"github.com/prakashprasanna/employee-directory/internal/lock"
	"github.com/prakashprasanna/employee-directory/internal/repository"
	apperrors "github.com/prakashprasanna/employee-directory/pkg/errorutil"
)

const (
	msgInvalidDepartment = "Invalid department name."
	msgDuplicateEmployee = "Employee with the same first name, last name and department already exists."
	msgMalformedBody     = "Malformed JSON body."
	msgCreationBusy      = "creation is busy, retry later"
)

// EmployeeService runs the employee creation pipeline.
type EmployeeService struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	locker      lock.Locker
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// EmployeeDependencies bundles collaborators for the employee service.
type EmployeeDependencies struct {
	DepartmentRepo repository.DepartmentRepository
	EmployeeRepo   repository.EmployeeRepository
	Locker         lock.Locker
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{
		departments: deps.DepartmentRepo,
		employees:   deps.EmployeeRepo,
		locker:      deps.Locker,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
	}
}

// Create validates body and persists a new employee. Each step stops the
// pipeline on failure with an error that maps to one response status.
func (s *EmployeeService) Create(ctx context.Context, body []byte) (*domain.Employee, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, apperrors.NewEmptyBody()
	}

	req, err := dto.DecodeCreateEmployeeRequest(body)
	if err != nil {
		return nil, apperrors.NewValidationError(msgMalformedBody)
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, apperrors.NewMissingFields(missing)
	}

	dept, err := s.departments.GetByName(ctx, req.Exact(dto.FieldDepartmentID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewInvalidReference(msgInvalidDepartment)
		}
		return nil, apperrors.NewInternalError(fmt.Errorf("resolve department: %w", err))
	}

	draft := repository.EmployeeDraft{
		FirstName:    req.Text(dto.FieldFirstName),
		LastName:     req.Text(dto.FieldLastName),
		Age:          req.Raw(dto.FieldAge),
		Position:     req.Text(dto.FieldPosition),
		DepartmentID: dept.ID,
	}

	emp, err := s.insertUnique(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.logger.Info("employee created",
		zap.Int64("employee_id", emp.ID),
		zap.Int64("department_id", emp.DepartmentID),
	)

	if s.dispatcher != nil {
		event := events.NewEvent(events.EventEmployeeCreated, "employees", emp.ID, events.EmployeeCreatedPayload{
			FirstName:      emp.FirstName,
			LastName:       emp.LastName,
			DepartmentID:   dept.ID,
			DepartmentName: dept.Name,
		})
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("employee_created handlers failed", zap.Int64("employee_id", emp.ID), zap.Error(err))
		}
	}
	return emp, nil
}

// insertUnique holds the department's creation lock across the duplicate
// check and the insert.
func (s *EmployeeService) insertUnique(ctx context.Context, draft repository.EmployeeDraft) (*domain.Employee, error) {
	release, err := s.locker.Lock(ctx, departmentLockKey(draft.DepartmentID))
	if err != nil {
		if errors.Is(err, lock.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewUnavailable(msgCreationBusy, err)
		}
		return nil, apperrors.NewInternalError(fmt.Errorf("acquire creation lock: %w", err))
	}
	defer release()

	exists, err := s.employees.ExistsByIdentity(ctx, draft.FirstName, draft.LastName, draft.DepartmentID)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("duplicate check: %w", err))
	}
	if exists {
		return nil, apperrors.NewConflict(msgDuplicateEmployee)
	}

	emp, err := s.employees.Create(ctx, draft)
	if err != nil {
		var vErr *repository.ValidationError
		switch {
		case errors.As(err, &vErr):
			return nil, apperrors.NewPersistenceFailure(vErr.Messages, err)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperrors.NewConflict(msgDuplicateEmployee)
		}
		return nil, apperrors.NewInternalError(fmt.Errorf("insert employee: %w", err))
	}
	return emp, nil
}

func departmentLockKey(departmentID int64) string {
	return fmt.Sprintf("employees:department:%d", departmentID)
}
