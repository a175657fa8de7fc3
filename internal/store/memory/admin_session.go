package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
)

type AdminSessionRepository struct {
	s *Store
}

func (r *AdminSessionRepository) Create(ctx context.Context, session *domain.AdminSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessions[session.Token] = *session
	return nil
}

// Get drops sessions past their expiry, mirroring the TTL index in mongo.
func (r *AdminSessionRepository) Get(ctx context.Context, token string) (*domain.AdminSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sess, ok := r.s.sessions[token]
	if !ok {
		return nil, fmt.Errorf("admin session: %w", domain.ErrNotFound)
	}
	if sess.Expired(time.Now()) {
		delete(r.s.sessions, token)
		return nil, fmt.Errorf("admin session: %w", domain.ErrNotFound)
	}
	return &sess, nil
}

func (r *AdminSessionRepository) Delete(ctx context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.sessions, token)
	return nil
}
