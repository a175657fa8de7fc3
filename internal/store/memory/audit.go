package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatusAuditRepository struct {
	s *Store
}

func (r *OrderStatusAuditRepository) Create(ctx context.Context, audit *domain.OrderStatusAudit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}
	r.s.audits = append(r.s.audits, *audit)
	return nil
}

func (r *OrderStatusAuditRepository) GetByOrderID(ctx context.Context, orderID primitive.ObjectID, limit int) ([]domain.OrderStatusAudit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.OrderStatusAudit{}
	for _, a := range r.s.audits {
		if a.OrderID == orderID {
			out = append(out, a)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
