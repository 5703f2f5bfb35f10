package clockin

import (
	"context"

	"gorm.io/gorm"
)

// SearchRepository is the free-text search collaborator. The current
// implementation runs against Postgres; the interface keeps the handler and
// service unaware of the backing engine.
//
//go:generate mockgen -source=search_repo.go -destination=mock/search_repo_mock.go -package=mock
type SearchRepository interface {
	Search(ctx context.Context, query string, p PageParams) ([]Clockin, int64, error)
}

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) Search(ctx context.Context, query string, p PageParams) ([]Clockin, int64, error) {
	pattern := "%" + query + "%"

	// Count and Find need separate statements; gorm mutates the builder.
	matching := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&Clockin{}).
			Joins("JOIN employees ON employees.id = clockins.employee_id").
			Where(
				"employees.full_name ILIKE ? OR employees.registry_number ILIKE ? OR to_char(clockins.date_time, 'YYYY-MM-DD HH24:MI') LIKE ?",
				pattern, pattern, pattern,
			)
	}

	var total int64
	if err := matching().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Clockin
	err := matching().
		Preload("Employee").
		Order("clockins." + p.OrderClause()).
		Offset(p.Offset()).
		Limit(p.Size).
		Find(&rows).Error
	return rows, total, err
}
