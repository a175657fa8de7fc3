package repo

import (
	"context"

	"github.com/Beka01247/cafe/internal/domain"
)

type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
