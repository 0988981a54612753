package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careerpilot/careerpilot-go/internal/config"
	"github.com/careerpilot/careerpilot-go/internal/crypto"
	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/repository"
	"github.com/careerpilot/careerpilot-go/internal/timeout"
)

const minPasswordLength = 6

// UserStore is the persistence surface AuthService needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService authenticates or creates users and issues session
// credentials. Every step past input validation runs inside the timeout
// race so a slow store cannot hold a request open past the host limit.
type AuthService struct {
	users       UserStore
	secret      string
	tokenTTL    time.Duration
	rememberTTL time.Duration
	opTimeout   time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, opTimeout time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		secret:      secret,
		tokenTTL:    config.TokenTTL,
		rememberTTL: config.RememberTTL,
		opTimeout:   opTimeout,
	}
}

// Register creates a user account and issues a credential. A duplicate
// email deterministically yields ErrUserExists, including the race where
// two concurrent registrations both pass the existence check: the store's
// unique constraint is the final arbiter and its violation maps to the
// same error.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if err := s.checkConfig(); err != nil {
		return model.AuthResponse{}, err
	}

	var fields []FieldError
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		fields = append(fields, FieldError{Field: "email", Message: "a valid email is required"})
	}
	if len(req.Password) < minPasswordLength {
		fields = append(fields, FieldError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength)})
	}
	if len(fields) > 0 {
		return model.AuthResponse{}, &ValidationError{Fields: fields}
	}

	return timeout.Do(ctx, s.opTimeout, func(ctx context.Context) (model.AuthResponse, error) {
		_, err := s.users.GetByEmail(ctx, email)
		if err == nil {
			return model.AuthResponse{}, ErrUserExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, classifyStoreErr(err)
		}

		hash, err := crypto.HashPassword(req.Password)
		if err != nil {
			return model.AuthResponse{}, fmt.Errorf("hashing password: %w", err)
		}

		user := &model.User{
			Email:        email,
			Name:         strings.TrimSpace(req.Name),
			PasswordHash: hash,
		}
		if err := s.users.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return model.AuthResponse{}, ErrUserExists
			}
			return model.AuthResponse{}, classifyStoreErr(err)
		}

		token, err := crypto.GenerateToken(user.ID, s.secret, s.ttl(req.RememberMe))
		if err != nil {
			return model.AuthResponse{}, fmt.Errorf("signing token: %w", err)
		}

		return model.AuthResponse{
			User:  summary(user),
			Token: token,
		}, nil
	})
}

// Login authenticates a user and issues a credential. Unknown email and
// wrong password produce the same error so the response does not reveal
// which one was at fault.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if err := s.checkConfig(); err != nil {
		return model.AuthResponse{}, err
	}

	var fields []FieldError
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "password is required"})
	}
	if len(fields) > 0 {
		return model.AuthResponse{}, &ValidationError{Fields: fields}
	}

	return timeout.Do(ctx, s.opTimeout, func(ctx context.Context) (model.AuthResponse, error) {
		user, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return model.AuthResponse{}, ErrInvalidCredentials
			}
			return model.AuthResponse{}, classifyStoreErr(err)
		}

		match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
		if err != nil {
			return model.AuthResponse{}, fmt.Errorf("verifying password: %w", err)
		}
		if !match {
			return model.AuthResponse{}, ErrInvalidCredentials
		}

		token, err := crypto.GenerateToken(user.ID, s.secret, s.ttl(req.RememberMe))
		if err != nil {
			return model.AuthResponse{}, fmt.Errorf("signing token: %w", err)
		}

		return model.AuthResponse{
			User:  summary(user),
			Token: token,
		}, nil
	})
}

// Verify resolves the user behind an already-validated credential.
func (s *AuthService) Verify(ctx context.Context, userID int64) (model.UserSummary, error) {
	if err := s.checkConfig(); err != nil {
		return model.UserSummary{}, err
	}

	return timeout.Do(ctx, s.opTimeout, func(ctx context.Context) (model.UserSummary, error) {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return model.UserSummary{}, ErrNotFound
			}
			return model.UserSummary{}, classifyStoreErr(err)
		}
		return summary(user), nil
	})
}

func (s *AuthService) checkConfig() error {
	if s.secret == "" {
		return &ConfigError{Setting: "JWT_SECRET"}
	}
	if s.users == nil {
		return &ConfigError{Setting: "DATABASE_URL"}
	}
	return nil
}

func (s *AuthService) ttl(remember bool) time.Duration {
	if remember {
		return s.rememberTTL
	}
	return s.tokenTTL
}

func summary(user *model.User) model.UserSummary {
	return model.UserSummary{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
