package clockin

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/clovisdasilvaneto/clockin/internal/events"
	"github.com/clovisdasilvaneto/clockin/internal/messaging/kafka"
	"github.com/clovisdasilvaneto/clockin/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeRepo struct {
	saveFn        func(ctx context.Context, c *Clockin) error
	findByIDFn    func(ctx context.Context, id string) (*Clockin, error)
	findPageFn    func(ctx context.Context, p PageParams) ([]Clockin, int64, error)
	deleteByIDFn  func(ctx context.Context, id string) error
	findByEmpDTFn func(ctx context.Context, employeeID string, dateTime time.Time) (*Clockin, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository               { return f }
func (f *fakeRepo) Save(ctx context.Context, c *Clockin) error { return f.saveFn(ctx, c) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Clockin, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindPage(ctx context.Context, p PageParams) ([]Clockin, int64, error) {
	return f.findPageFn(ctx, p)
}
func (f *fakeRepo) FindAllOrdered(ctx context.Context) ([]Clockin, error) { return nil, nil }
func (f *fakeRepo) DeleteByID(ctx context.Context, id string) error       { return f.deleteByIDFn(ctx, id) }
func (f *fakeRepo) FindByEmployeeAndDateTimeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Clockin, error) {
	return nil, nil
}
func (f *fakeRepo) FindByEmployeeAndDateTime(ctx context.Context, employeeID string, dateTime time.Time) (*Clockin, error) {
	return f.findByEmpDTFn(ctx, employeeID, dateTime)
}

type fakeSearchRepo struct {
	searchFn func(ctx context.Context, query string, p PageParams) ([]Clockin, int64, error)
}

func (f *fakeSearchRepo) Search(ctx context.Context, query string, p PageParams) ([]Clockin, int64, error) {
	return f.searchFn(ctx, query, p)
}

type fakeOutbox struct {
	events    []kafka.OutboxEvent
	createErr error
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateWorkdays(ctx context.Context) { f.calls++ }

func TestService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	repo := &fakeRepo{}
	repo.findByEmpDTFn = func(ctx context.Context, employeeID string, dateTime time.Time) (*Clockin, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.saveFn = func(ctx context.Context, c *Clockin) error {
		// mirror what BeforeSave and the id default do on a real insert
		c.ID = uuid.New()
		c.Date = c.DateTime.UTC().Truncate(24 * time.Hour)
		return nil
	}
	outbox := &fakeOutbox{}
	invalidator := &fakeInvalidator{}

	svc := NewService(db, repo, &fakeSearchRepo{}, outbox, invalidator)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(ctx, ClockinRequest{
		EmployeeID: uuid.NewString(),
		DateTime:   "2019-03-04T09:00:00Z",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2019-03-04", resp.Date)
	assert.Equal(t, 1, invalidator.calls)
	assert.NoError(t, mock.ExpectationsWereMet())

	if assert.Len(t, outbox.events, 1) {
		assert.Equal(t, events.ClockinRecordedEvent, outbox.events[0].EventType)
		assert.Equal(t, resp.ID, outbox.events[0].ClockinID)
	}
}

// The punch row and its outbox event commit or roll back together. The
// repository here is the real gorm implementation bound to its own mocked
// connection, so a row write escaping the service's transaction would show
// up as traffic on that connection instead of the transaction's.
func TestService_Create_OutboxFailureRollsBackPunch(t *testing.T) {
	repoDB, repoMock, _ := sqlmock.New()
	defer repoDB.Close()
	txDB, txMock, _ := sqlmock.New()
	defer txDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: repoDB}), &gorm.Config{})
	assert.NoError(t, err)
	repo := NewRepository(gormDB)

	// dedup lookup runs before the transaction, on the repository's own
	// connection
	repoMock.ExpectQuery(`SELECT .* FROM "clockins"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	txMock.ExpectBegin()
	txMock.ExpectQuery(`INSERT INTO "clockins"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	txMock.ExpectRollback()

	outbox := &fakeOutbox{createErr: errors.New("outbox insert failed")}
	svc := NewService(txDB, repo, &fakeSearchRepo{}, outbox, nil)

	_, err = svc.Create(context.Background(), ClockinRequest{
		EmployeeID: uuid.NewString(),
		DateTime:   "2019-03-04T09:00:00Z",
	})
	assert.Error(t, err)

	assert.NoError(t, txMock.ExpectationsWereMet())
	// nothing beyond the dedup lookup may touch the repository connection
	assert.NoError(t, repoMock.ExpectationsWereMet())
}

func TestService_Create_RejectsPresetID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeSearchRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), ClockinRequest{
		ID:         uuid.NewString(),
		EmployeeID: uuid.NewString(),
		DateTime:   "2019-03-04T09:00:00Z",
	})
	assert.ErrorIs(t, err, ErrIDExists)
}

func TestService_Create_DuplicateTimestamp(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	existing := &Clockin{ID: uuid.New()}
	repo := &fakeRepo{
		findByEmpDTFn: func(ctx context.Context, employeeID string, dateTime time.Time) (*Clockin, error) {
			return existing, nil
		},
	}

	svc := NewService(db, repo, &fakeSearchRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), ClockinRequest{
		EmployeeID: uuid.NewString(),
		DateTime:   "2019-03-04T09:00:00Z",
	})

	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, 409, appErr.HTTPStatus)
	}
}

func TestService_Update_WithoutIDDelegatesToCreate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved *Clockin
	repo := &fakeRepo{
		findByEmpDTFn: func(ctx context.Context, employeeID string, dateTime time.Time) (*Clockin, error) {
			return nil, gorm.ErrRecordNotFound
		},
		saveFn: func(ctx context.Context, c *Clockin) error {
			c.ID = uuid.New()
			saved = c
			return nil
		},
	}

	svc := NewService(db, repo, &fakeSearchRepo{}, nil, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(context.Background(), ClockinRequest{
		EmployeeID: uuid.NewString(),
		DateTime:   "2019-03-04T09:00:00Z",
	})
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, saved.ID.String(), resp.ID)
}

func TestService_Update_ReplacesExisting(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()
	var saved *Clockin
	repo := &fakeRepo{
		saveFn: func(ctx context.Context, c *Clockin) error {
			saved = c
			return nil
		},
	}

	svc := NewService(db, repo, &fakeSearchRepo{}, nil, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(context.Background(), ClockinRequest{
		ID:         id.String(),
		EmployeeID: uuid.NewString(),
		DateTime:   "2019-03-05T10:00:00Z",
	})
	assert.NoError(t, err)
	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, id, saved.ID)
}

func TestService_Get_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Clockin, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(db, repo, &fakeSearchRepo{}, nil, nil)

	_, err := svc.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestService_Delete_UnknownIDStillSucceeds(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		deleteByIDFn: func(ctx context.Context, id string) error { return nil },
	}
	outbox := &fakeOutbox{}
	invalidator := &fakeInvalidator{}

	svc := NewService(db, repo, &fakeSearchRepo{}, outbox, invalidator)

	mock.ExpectBegin()
	mock.ExpectCommit()
	err := svc.Delete(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Equal(t, 1, invalidator.calls)
	if assert.Len(t, outbox.events, 1) {
		assert.Equal(t, events.ClockinDeletedEvent, outbox.events[0].EventType)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Search_Delegates(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	var gotQuery string
	search := &fakeSearchRepo{
		searchFn: func(ctx context.Context, query string, p PageParams) ([]Clockin, int64, error) {
			gotQuery = query
			return []Clockin{{ID: uuid.New(), EmployeeID: uuid.New(), DateTime: time.Now()}}, 1, nil
		},
	}

	svc := NewService(db, &fakeRepo{}, search, nil, nil)

	resp, total, err := svc.Search(context.Background(), "john", PageParams{Page: 0, Size: 20})
	assert.NoError(t, err)
	assert.Equal(t, "john", gotQuery)
	assert.Equal(t, int64(1), total)
	assert.Len(t, resp, 1)
}
