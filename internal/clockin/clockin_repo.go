package clockin

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicatePunch signals a second punch for the same employee and exact
// timestamp, backed by the unique index on (employee_id, date_time).
var ErrDuplicatePunch = errors.New("clockin already exists for employee and timestamp")

//go:generate mockgen -source=clockin_repo.go -destination=mock/clockin_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Save(ctx context.Context, c *Clockin) error
	FindByID(ctx context.Context, id string) (*Clockin, error)
	FindPage(ctx context.Context, p PageParams) ([]Clockin, int64, error)
	FindAllOrdered(ctx context.Context) ([]Clockin, error)
	DeleteByID(ctx context.Context, id string) error
	FindByEmployeeAndDateTimeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Clockin, error)
	FindByEmployeeAndDateTime(ctx context.Context, employeeID string, dateTime time.Time) (*Clockin, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to the caller's transaction, so the punch
// write commits or rolls back together with the outbox row.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, c *Clockin) error {
	err := r.db.WithContext(ctx).Save(c).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicatePunch
	}
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Clockin, error) {
	var c Clockin
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) FindPage(ctx context.Context, p PageParams) ([]Clockin, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Clockin{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Clockin
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order(p.OrderClause()).
		Offset(p.Offset()).
		Limit(p.Size).
		Find(&rows).Error
	return rows, total, err
}

// FindAllOrdered feeds the workday aggregator: ascending date, then
// ascending punch time, which the aggregation algorithm relies on.
func (r *repository) FindAllOrdered(ctx context.Context) ([]Clockin, error) {
	var rows []Clockin
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("date ASC, date_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Clockin{}, "id = ?", id).Error
}

func (r *repository) FindByEmployeeAndDateTimeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Clockin, error) {
	var rows []Clockin
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Where("date_time BETWEEN ? AND ?", start, end).
		Order("date_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndDateTime(ctx context.Context, employeeID string, dateTime time.Time) (*Clockin, error) {
	var c Clockin
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date_time = ?", dateTime).
		First(&c).Error
	return &c, err
}
