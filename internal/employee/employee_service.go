package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/clovisdasilvaneto/clockin/internal/shared/apperror"
	"github.com/clovisdasilvaneto/clockin/internal/shared/counter"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req CreateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, counter: counterRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	if req.ID != "" {
		return EmployeeResponse{}, apperror.New(apperror.CodeInvalidInput, "A new employee cannot already have an ID", 400)
	}

	registryNumber := req.RegistryNumber
	if registryNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "registry_number")
		if err != nil {
			s.logger.Error("generate registry number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		registryNumber = fmt.Sprintf("EMP-%05d", nextVal)
	}

	emp := &Employee{
		FullName:       req.FullName,
		Email:          req.Email,
		RegistryNumber: registryNumber,
		Hidden:         req.Hidden,
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		s.logger.Error("create employee failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		zap.String("employee_id", emp.ID.String()),
		zap.String("registry_number", emp.RegistryNumber),
	)
	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, apperror.ErrNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, apperror.ErrNotFound
		}
		return EmployeeResponse{}, err
	}

	emp.FullName = req.FullName
	emp.Email = req.Email
	if req.RegistryNumber != "" {
		emp.RegistryNumber = req.RegistryNumber
	}
	emp.Hidden = req.Hidden

	if err := s.repo.Update(ctx, emp); err != nil {
		s.logger.Error("update employee failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	// Delete is unconditional, matching the clockin surface: deleting an
	// unknown id still reports success.
	return s.repo.Delete(ctx, id)
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID.String(),
		FullName:       e.FullName,
		Email:          e.Email,
		RegistryNumber: e.RegistryNumber,
		Hidden:         e.Hidden,
		CreatedAt:      e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
