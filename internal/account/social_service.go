package account

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/clovisdasilvaneto/clockin/internal/shared/apperror"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// DefaultOrgDomain gates sign-ups: only addresses on the reserved
	// organization suffix may provision an account.
	DefaultOrgDomain = "@liferay.com"

	defaultAuthority = "ROLE_USER"
)

//go:generate mockgen -source=social_service.go -destination=mock/social_service_mock.go -package=mock
type SocialService interface {
	CreateSocialUser(ctx context.Context, conn *Connection, langKey string) (UserResponse, error)
	DeleteUserSocialConnections(ctx context.Context, login string) error
}

type socialService struct {
	users       UserRepository
	connections ConnectionRepository
	orgDomain   string
	logger      *zap.Logger
}

func NewSocialService(
	users UserRepository,
	connections ConnectionRepository,
	orgDomain string,
	logger ...*zap.Logger,
) SocialService {
	l := zap.L().Named("account.social")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.social")
	}
	if orgDomain == "" {
		orgDomain = DefaultOrgDomain
	}
	return &socialService{
		users:       users,
		connections: connections,
		orgDomain:   orgDomain,
		logger:      l,
	}
}

// CreateSocialUser ensures a local user exists for the federated identity
// and links the connection to it. At most one user row is created or
// reused, and exactly one connection link is added.
func (s *socialService) CreateSocialUser(ctx context.Context, conn *Connection, langKey string) (UserResponse, error) {
	if conn == nil {
		s.logger.Error("cannot create social user because connection is nil")
		return UserResponse{}, apperror.New(apperror.CodeInvalidInput, "Connection cannot be null", 400)
	}

	user, err := s.findOrCreateUser(ctx, conn.Profile, langKey)
	if err != nil {
		return UserResponse{}, err
	}

	if err := s.connections.Add(ctx, &SocialConnection{
		UserLogin:      user.Login,
		ProviderID:     conn.ProviderID,
		ProviderUserID: conn.ProviderUserID,
		DisplayName:    strings.TrimSpace(conn.Profile.FirstName + " " + conn.Profile.LastName),
	}); err != nil {
		return UserResponse{}, err
	}

	return mapUserToResponse(*user), nil
}

func (s *socialService) findOrCreateUser(ctx context.Context, profile UserProfile, langKey string) (*User, error) {
	email := strings.TrimSpace(profile.Email)
	username := strings.TrimSpace(profile.Username)

	if email == "" && username == "" {
		s.logger.Error("cannot create social user because email and login are blank")
		return nil, apperror.New(apperror.CodeInvalidInput, "Email and login cannot be null", 400)
	}

	if email == "" {
		if _, err := s.users.FindByLogin(ctx, username); err == nil {
			s.logger.Error("cannot create social user: blank email with an existing login",
				zap.String("login", username),
			)
			return nil, apperror.New(apperror.CodeInvalidInput, "Email cannot be null with an existing login", 400)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		s.logger.Info("user already exists, associating connection to this account",
			zap.String("login", existing.Login),
		)
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if !strings.HasSuffix(email, s.orgDomain) {
		s.logger.Error("only organization accounts can be provisioned",
			zap.String("email", email),
			zap.String("org_domain", s.orgDomain),
		)
		return nil, apperror.New(apperror.CodeInvalidInput, "Only organization members can create an account", 400)
	}

	authority, err := s.users.FindAuthority(ctx, defaultAuthority)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(randomSecret(10)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Login:       email,
		Email:       email,
		Password:    string(hashed),
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		Activated:   true,
		LangKey:     langKey,
		Authorities: []Authority{*authority},
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("social user provisioned", zap.String("login", user.Login))
	return user, nil
}

// DeleteUserSocialConnections removes every provider connection for the
// login. Providers are enumerated once up front; a failure partway leaves
// earlier removals in place (no rollback).
func (s *socialService) DeleteUserSocialConnections(ctx context.Context, login string) error {
	providers, err := s.connections.ProvidersByLogin(ctx, login)
	if err != nil {
		return err
	}

	for _, providerID := range providers {
		if err := s.connections.RemoveByLoginAndProvider(ctx, login, providerID); err != nil {
			return err
		}
		s.logger.Debug("deleted user social connection",
			zap.String("login", login),
			zap.String("provider_id", providerID),
		)
	}

	return nil
}

// randomSecret returns a throwaway password for provisioned accounts; the
// user signs in through the provider, never with this value.
func randomSecret(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func mapUserToResponse(u User) UserResponse {
	authorities := make([]string, len(u.Authorities))
	for i, a := range u.Authorities {
		authorities[i] = a.Name
	}
	return UserResponse{
		ID:          u.ID.String(),
		Login:       u.Login,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Activated:   u.Activated,
		LangKey:     u.LangKey,
		Authorities: authorities,
	}
}
