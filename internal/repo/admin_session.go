package repo

import (
	"context"

	"github.com/Beka01247/cafe/internal/domain"
)

type AdminSessionRepository interface {
	Create(ctx context.Context, session *domain.AdminSession) error
	Get(ctx context.Context, token string) (*domain.AdminSession, error)
	Delete(ctx context.Context, token string) error
}
