package workday

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/clovisdasilvaneto/clockin/internal/clockin"
	"github.com/clovisdasilvaneto/clockin/internal/employee"
	"github.com/clovisdasilvaneto/clockin/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	cacheKey = "workdays:all"
	cacheTTL = 30 * time.Second
)

//go:generate mockgen -source=workday_service.go -destination=mock/workday_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]WorkDay, error)
	GetForEmployee(ctx context.Context, employeeID string, start, end *time.Time) ([]WorkDay, error)
	InvalidateWorkdays(ctx context.Context)
}

type service struct {
	clockins  clockin.Repository
	employees employee.Repository
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	clockinRepo clockin.Repository,
	employeeRepo employee.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("workday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workday.service")
	}
	return &service{
		clockins:  clockinRepo,
		employees: employeeRepo,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

// GetAll aggregates the full punch history. The result is cached briefly
// in redis; a singleflight group keeps concurrent misses from hammering
// the database with the same full scan.
func (s *service) GetAll(ctx context.Context) ([]WorkDay, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var workdays []WorkDay
			if err := json.Unmarshal([]byte(cached), &workdays); err == nil {
				return workdays, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.clockins.FindAllOrdered(ctx)
		if err != nil {
			return nil, err
		}
		workdays := Aggregate(rows)

		if s.rdb != nil {
			if payload, err := json.Marshal(workdays); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, cacheTTL).Err(); err != nil {
					s.logger.Warn("cache workdays failed", zap.Error(err))
				}
			}
		}
		return workdays, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]WorkDay), nil
}

// GetForEmployee aggregates the punch sequence restricted to one employee.
// When a time range is given only that window is scanned; otherwise the
// filtered walk runs over the full ordered history, exactly as the
// unfiltered endpoint does.
func (s *service) GetForEmployee(ctx context.Context, employeeID string, start, end *time.Time) ([]WorkDay, error) {
	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	var rows []clockin.Clockin
	if start != nil && end != nil {
		rows, err = s.clockins.FindByEmployeeAndDateTimeBetween(ctx, employeeID, *start, *end)
	} else {
		rows, err = s.clockins.FindAllOrdered(ctx)
	}
	if err != nil {
		return nil, err
	}

	return AggregateForEmployee(rows, EmployeeSummary{
		ID:       emp.ID.String(),
		FullName: emp.FullName,
	}), nil
}

// InvalidateWorkdays drops the cached aggregate after a punch write.
func (s *service) InvalidateWorkdays(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Warn("invalidate workdays cache failed", zap.Error(err))
	}
}
