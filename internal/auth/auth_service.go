package auth

import (
	"context"
	"os"
	"time"

	"github.com/clovisdasilvaneto/clockin/internal/account"
	autherrors "github.com/clovisdasilvaneto/clockin/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, login, password string) (token string, resp AuthResponse, err error)
}

type service struct {
	users account.UserRepository
}

func NewService(users account.UserRepository) Service {
	return &service{users: users}
}

func (s *service) Login(ctx context.Context, login, password string) (string, AuthResponse, error) {
	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.Activated {
		return "", AuthResponse{}, autherrors.ErrUserDeactivated
	}

	authorities := make([]string, len(user.Authorities))
	for i, a := range user.Authorities {
		authorities[i] = a.Name
	}

	token, err := generateToken(user.ID.String(), user.Login, authorities, tokenTTL)
	if err != nil {
		return "", AuthResponse{}, err
	}

	return token, AuthResponse{
		ID:          user.ID.String(),
		Login:       user.Login,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Authorities: authorities,
	}, nil
}

func generateToken(userID, login string, authorities []string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     userID,
		"login":       login,
		"authorities": authorities,
		"exp":         time.Now().Add(ttl).Unix(),
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
