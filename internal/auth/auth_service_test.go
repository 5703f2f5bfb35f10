package auth_test

import (
	"context"
	"testing"

	"github.com/clovisdasilvaneto/clockin/internal/account"
	mock_account "github.com/clovisdasilvaneto/clockin/internal/account/mock"
	"github.com/clovisdasilvaneto/clockin/internal/auth"
	autherrors "github.com/clovisdasilvaneto/clockin/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func activeUser(t *testing.T, login, password string) *account.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &account.User{
		ID:          uuid.New(),
		Login:       login,
		Email:       login,
		Password:    string(hashed),
		Activated:   true,
		Authorities: []account.Authority{{Name: "ROLE_USER"}},
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_account.NewMockUserRepository(ctrl)
		user := activeUser(t, "jane@liferay.com", "s3cret")

		users.EXPECT().
			FindByLogin(gomock.Any(), "jane@liferay.com").
			Return(user, nil)

		svc := auth.NewService(users)

		token, resp, err := svc.Login(ctx, "jane@liferay.com", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, "jane@liferay.com", resp.Login)
		assert.Equal(t, []string{"ROLE_USER"}, resp.Authorities)

		parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, user.ID.String(), claims["user_id"])
		assert.Equal(t, "jane@liferay.com", claims["login"])
	})

	t.Run("unknown login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_account.NewMockUserRepository(ctrl)

		users.EXPECT().
			FindByLogin(gomock.Any(), "ghost").
			Return(nil, gorm.ErrRecordNotFound)

		svc := auth.NewService(users)

		_, _, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_account.NewMockUserRepository(ctrl)
		user := activeUser(t, "jane@liferay.com", "s3cret")

		users.EXPECT().
			FindByLogin(gomock.Any(), "jane@liferay.com").
			Return(user, nil)

		svc := auth.NewService(users)

		_, _, err := svc.Login(ctx, "jane@liferay.com", "wrong")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_account.NewMockUserRepository(ctrl)
		user := activeUser(t, "jane@liferay.com", "s3cret")
		user.Activated = false

		users.EXPECT().
			FindByLogin(gomock.Any(), "jane@liferay.com").
			Return(user, nil)

		svc := auth.NewService(users)

		_, _, err := svc.Login(ctx, "jane@liferay.com", "s3cret")
		assert.ErrorIs(t, err, autherrors.ErrUserDeactivated)
	})
}
