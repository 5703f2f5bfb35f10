package account

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByLogin(ctx context.Context, login string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAuthority(ctx context.Context, name string) (*Authority, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Authorities").
		First(&u, "login = ?", login).Error
	return &u, err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Authorities").
		First(&u, "email = ?", email).Error
	return &u, err
}

func (r *userRepository) FindAuthority(ctx context.Context, name string) (*Authority, error) {
	var a Authority
	err := r.db.WithContext(ctx).First(&a, "name = ?", name).Error
	return &a, err
}
