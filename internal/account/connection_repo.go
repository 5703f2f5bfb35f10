package account

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=connection_repo.go -destination=mock/connection_repo_mock.go -package=mock
type ConnectionRepository interface {
	Add(ctx context.Context, conn *SocialConnection) error
	ProvidersByLogin(ctx context.Context, login string) ([]string, error)
	RemoveByLoginAndProvider(ctx context.Context, login, providerID string) error
}

type connectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Add(ctx context.Context, conn *SocialConnection) error {
	return r.db.WithContext(ctx).Create(conn).Error
}

func (r *connectionRepository) ProvidersByLogin(ctx context.Context, login string) ([]string, error) {
	var providers []string
	err := r.db.WithContext(ctx).
		Model(&SocialConnection{}).
		Distinct("provider_id").
		Where("user_login = ?", login).
		Order("provider_id ASC").
		Pluck("provider_id", &providers).Error
	return providers, err
}

func (r *connectionRepository) RemoveByLoginAndProvider(ctx context.Context, login, providerID string) error {
	return r.db.WithContext(ctx).
		Where("user_login = ?", login).
		Where("provider_id = ?", providerID).
		Delete(&SocialConnection{}).Error
}
