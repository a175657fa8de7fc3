package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskRepository struct {
	s *Store
}

func (r *ImportTaskRepository) Create(ctx context.Context, task *domain.MenuImportTask) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	task.ID = primitive.NewObjectID()
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	r.s.tasks[task.ID] = *task
	return nil
}

func (r *ImportTaskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuImportTask, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("import task %s: %w", id.Hex(), domain.ErrNotFound)
	}
	return &t, nil
}

func (r *ImportTaskRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[id]
	if !ok {
		return fmt.Errorf("import task %s: %w", id.Hex(), domain.ErrNotFound)
	}
	t.Status = status
	if errorMsg != "" {
		t.ErrorMessage = errorMsg
	}
	t.UpdatedAt = time.Now()
	r.s.tasks[id] = t
	return nil
}

func (r *ImportTaskRepository) Complete(ctx context.Context, id primitive.ObjectID, itemCount int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[id]
	if !ok {
		return fmt.Errorf("import task %s: %w", id.Hex(), domain.ErrNotFound)
	}
	t.Status = domain.ImportCompleted
	t.ItemCount = itemCount
	t.UpdatedAt = time.Now()
	r.s.tasks[id] = t
	return nil
}
