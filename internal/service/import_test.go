package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/parser"
	"github.com/Beka01247/cafe/internal/queue"
	"github.com/Beka01247/cafe/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubParser struct {
	items []domain.FoodItem
	err   error
}

func (p *stubParser) ParseMenu(ctx context.Context, spreadsheetID, readRange string) ([]domain.FoodItem, error) {
	return p.items, p.err
}

func newImportService(p MenuParser) (*ImportService, *memory.Store, *recordingBroker) {
	store := memory.New()
	broker := newRecordingBroker()
	svc := NewImportService(store.ImportTasks(), store.Menu(), p, broker, store, zap.NewNop().Sugar())
	return svc, store, broker
}

func TestImportService_Completes(t *testing.T) {
	ctx := context.Background()
	svc, store, broker := newImportService(&stubParser{items: []domain.FoodItem{pizzaItem(), coffeeItem()}})

	task, err := svc.CreateImportTask(ctx, "sheet-1", "", "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.ImportQueued, task.Status)
	assert.Equal(t, 1, broker.count(queue.QueueMenuImport))

	require.NoError(t, svc.ProcessImportTask(ctx, task.ID))

	got, err := svc.GetTask(ctx, task.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, domain.ImportCompleted, got.Status)
	assert.Equal(t, 2, got.ItemCount)

	n, err := store.Menu().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestImportService_MalformedSheetFailsTask(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newImportService(&stubParser{err: parser.ErrEmptySheet})
	require.NoError(t, store.Menu().Create(ctx, &domain.FoodItem{ID: "keep", Name: "Keep", Category: domain.CategoryPizza}))

	task, err := svc.CreateImportTask(ctx, "sheet-1", "", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.ProcessImportTask(ctx, task.ID))

	got, err := svc.GetTask(ctx, task.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, domain.ImportFailed, got.Status)
	assert.NotEmpty(t, got.ErrorMessage)

	n, err := store.Menu().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestImportService_TransientErrorIsRetried(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newImportService(&stubParser{err: errors.New("sheets api unavailable")})

	task, err := svc.CreateImportTask(ctx, "sheet-1", "", "admin")
	require.NoError(t, err)

	assert.Error(t, svc.ProcessImportTask(ctx, task.ID))
}

func TestImportService_Disabled(t *testing.T) {
	svc, _, _ := newImportService(nil)

	_, err := svc.CreateImportTask(context.Background(), "sheet-1", "", "admin")
	assert.ErrorIs(t, err, domain.ErrImportUnavailable)

	_, err = svc.GetTask(context.Background(), "zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
