package clockin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/clovisdasilvaneto/clockin/internal/events"
	"github.com/clovisdasilvaneto/clockin/internal/messaging/kafka"
	"github.com/clovisdasilvaneto/clockin/internal/shared/apperror"
	"github.com/clovisdasilvaneto/clockin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrIDExists rejects a create whose payload already carries an identity.
var ErrIDExists = apperror.New(apperror.CodeInvalidInput, "A new clockin cannot already have an ID", 400)

// WorkdayCacheInvalidator lets the service drop derived workday caches
// after a punch write, without depending on the workday package.
type WorkdayCacheInvalidator interface {
	InvalidateWorkdays(ctx context.Context)
}

//go:generate mockgen -source=clockin_service.go -destination=mock/clockin_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req ClockinRequest) (ClockinResponse, error)
	Update(ctx context.Context, req ClockinRequest) (ClockinResponse, error)
	Get(ctx context.Context, id string) (ClockinResponse, error)
	GetPage(ctx context.Context, p PageParams) ([]ClockinResponse, int64, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, p PageParams) ([]ClockinResponse, int64, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	searchRepo  SearchRepository
	outbox      kafka.OutboxRepository
	invalidator WorkdayCacheInvalidator
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	searchRepo SearchRepository,
	outboxRepo kafka.OutboxRepository,
	invalidator WorkdayCacheInvalidator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("clockin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("clockin.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		searchRepo:  searchRepo,
		outbox:      outboxRepo,
		invalidator: invalidator,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, req ClockinRequest) (ClockinResponse, error) {
	if req.ID != "" {
		return ClockinResponse{}, ErrIDExists
	}

	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		return ClockinResponse{}, apperror.New(apperror.CodeInvalidInput, "date_time must be RFC3339", 400)
	}

	// The dedup invariant is enforced by lookup: at most one punch per
	// (employee, exact timestamp). The unique index only backs up races.
	existing, err := s.repo.FindByEmployeeAndDateTime(ctx, req.EmployeeID, dateTime)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ClockinResponse{}, err
	}
	if err == nil && existing != nil && existing.ID != uuid.Nil {
		return ClockinResponse{}, apperror.New(apperror.CodeConflict, "Clockin already registered for this employee and timestamp", 409)
	}

	row := &Clockin{
		EmployeeID: uuid.MustParse(req.EmployeeID),
		DateTime:   dateTime,
	}

	if err := s.persistWithEvent(ctx, row, events.ClockinRecordedEvent); err != nil {
		return ClockinResponse{}, err
	}

	s.logger.Info("clockin recorded",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("clockin_id", row.ID.String()),
		zap.String("employee_id", row.EmployeeID.String()),
	)
	if s.invalidator != nil {
		s.invalidator.InvalidateWorkdays(ctx)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, req ClockinRequest) (ClockinResponse, error) {
	// An update without an identity degrades to a create.
	if req.ID == "" {
		return s.Create(ctx, req)
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return ClockinResponse{}, apperror.New(apperror.CodeInvalidInput, "id must be a UUID", 400)
	}
	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		return ClockinResponse{}, apperror.New(apperror.CodeInvalidInput, "date_time must be RFC3339", 400)
	}

	row := &Clockin{
		ID:         id,
		EmployeeID: uuid.MustParse(req.EmployeeID),
		DateTime:   dateTime,
	}

	if err := s.persistWithEvent(ctx, row, events.ClockinRecordedEvent); err != nil {
		return ClockinResponse{}, err
	}

	if s.invalidator != nil {
		s.invalidator.InvalidateWorkdays(ctx)
	}
	return mapToResponse(*row), nil
}

func (s *service) Get(ctx context.Context, id string) (ClockinResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ClockinResponse{}, apperror.ErrNotFound
		}
		return ClockinResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetPage(ctx context.Context, p PageParams) ([]ClockinResponse, int64, error) {
	rows, total, err := s.repo.FindPage(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	return mapAllToResponse(rows), total, nil
}

// Delete removes the punch unconditionally; an unknown id still reports
// success, matching the HTTP surface.
func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).DeleteByID(ctx, id); err != nil {
		return err
	}
	if err := s.enqueueEvent(ctx, tx, events.ClockinPunchEvent{
		EventType:  events.ClockinDeletedEvent,
		ClockinID:  id,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("clockin deleted",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("clockin_id", id),
	)
	if s.invalidator != nil {
		s.invalidator.InvalidateWorkdays(ctx)
	}
	return nil
}

func (s *service) Search(ctx context.Context, query string, p PageParams) ([]ClockinResponse, int64, error) {
	rows, total, err := s.searchRepo.Search(ctx, query, p)
	if err != nil {
		return nil, 0, err
	}
	return mapAllToResponse(rows), total, nil
}

func (s *service) persistWithEvent(ctx context.Context, row *Clockin, eventType string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Save(ctx, row); err != nil {
		if errors.Is(err, ErrDuplicatePunch) {
			return apperror.Wrap(err, apperror.CodeConflict, "Clockin already registered for this employee and timestamp", 409)
		}
		return err
	}

	if err := s.enqueueEvent(ctx, tx, events.ClockinPunchEvent{
		EventType:  eventType,
		ClockinID:  row.ID.String(),
		EmployeeID: row.EmployeeID.String(),
		DateTime:   row.DateTime,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, event events.ClockinPunchEvent) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:        uuid.New().String(),
		RequestID: contextutil.GetRequestID(ctx),
		ClockinID: event.ClockinID,
		EventType: event.EventType,
		Payload:   payload,
		Status:    kafka.OutboxStatusPending,
	})
}

func mapToResponse(c Clockin) ClockinResponse {
	resp := ClockinResponse{
		ID:         c.ID.String(),
		EmployeeID: c.EmployeeID.String(),
		DateTime:   c.DateTime.Format(time.RFC3339),
		Date:       c.Date.Format("2006-01-02"),
	}
	if c.Employee != nil {
		resp.EmployeeName = c.Employee.FullName
	}
	return resp
}

func mapAllToResponse(rows []Clockin) []ClockinResponse {
	resp := make([]ClockinResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp
}
