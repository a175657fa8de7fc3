package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	Username string
	// PasswordHash is a bcrypt hash. When empty, Password is hashed at startup.
	PasswordHash string
	Password     string
	SessionTTL   time.Duration
}

type AuthService struct {
	username     string
	passwordHash []byte
	ttl          time.Duration
	sessionRepo  repo.AdminSessionRepository
	now          func() time.Time
	logger       *zap.SugaredLogger
}

func NewAuthService(cfg AuthConfig, sessionRepo repo.AdminSessionRepository, logger *zap.SugaredLogger) (*AuthService, error) {
	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 && cfg.Password != "" {
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		hash = generated
	}
	if len(hash) > 0 {
		if _, err := bcrypt.Cost(hash); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &AuthService{
		username:     cfg.Username,
		passwordHash: hash,
		ttl:          ttl,
		sessionRepo:  sessionRepo,
		now:          time.Now,
		logger:       logger,
	}, nil
}

// Enabled reports whether admin credentials are configured at all.
func (s *AuthService) Enabled() bool {
	return s.username != "" && len(s.passwordHash) > 0
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.AdminSession, error) {
	if !s.Enabled() {
		return nil, domain.ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		s.logger.Warnw("admin login failed", "username", username)
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	session := &domain.AdminSession{
		Token:     uuid.NewString(),
		Username:  s.username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create admin session: %w", err)
	}

	s.logger.Infow("admin logged in", "username", s.username)
	return session, nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.AdminSession, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load admin session: %w", err)
	}

	if session.Expired(s.now()) {
		_ = s.sessionRepo.Delete(ctx, token)
		return nil, domain.ErrUnauthorized
	}

	return session, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete admin session: %w", err)
	}
	return nil
}
