package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/parser"
	"github.com/Beka01247/cafe/internal/queue"
	"github.com/Beka01247/cafe/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MenuParser interface {
	ParseMenu(ctx context.Context, spreadsheetID, readRange string) ([]domain.FoodItem, error)
}

type ImportService struct {
	taskRepo repo.ImportTaskRepository
	menuRepo repo.MenuRepository
	parser   MenuParser
	broker   queue.Broker
	tx       repo.Transactor
	logger   *zap.SugaredLogger
}

// NewImportService wires spreadsheet imports. A nil parser disables them.
func NewImportService(
	taskRepo repo.ImportTaskRepository,
	menuRepo repo.MenuRepository,
	parser MenuParser,
	broker queue.Broker,
	tx repo.Transactor,
	logger *zap.SugaredLogger,
) *ImportService {
	return &ImportService{
		taskRepo: taskRepo,
		menuRepo: menuRepo,
		parser:   parser,
		broker:   broker,
		tx:       tx,
		logger:   logger,
	}
}

func (s *ImportService) Enabled() bool {
	return s.parser != nil && s.menuRepo != nil
}

func (s *ImportService) CreateImportTask(ctx context.Context, spreadsheetID, readRange, requestedBy string) (*domain.MenuImportTask, error) {
	if !s.Enabled() {
		return nil, domain.ErrImportUnavailable
	}

	task := &domain.MenuImportTask{
		Status:        domain.ImportQueued,
		SpreadsheetID: spreadsheetID,
		ReadRange:     readRange,
		RequestedBy:   requestedBy,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.MenuImportMessage{
		TaskID:        task.ID.Hex(),
		SpreadsheetID: spreadsheetID,
	}

	if err := publishJSON(ctx, s.broker, queue.QueueMenuImport, message); err != nil {
		_ = s.taskRepo.UpdateStatus(ctx, task.ID, domain.ImportFailed, err.Error())
		return nil, err
	}

	s.logger.Infow("menu import task created", "task_id", task.ID.Hex(), "spreadsheet_id", spreadsheetID)

	return task, nil
}

func (s *ImportService) GetTask(ctx context.Context, taskID string) (*domain.MenuImportTask, error) {
	oid, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, fmt.Errorf("import task %s: %w", taskID, domain.ErrNotFound)
	}

	task, err := s.taskRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return task, nil
}

// ProcessImportTask parses the sheet and swaps the menu in one transaction.
// Malformed sheets mark the task failed without returning an error, so the
// message is not retried.
func (s *ImportService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	if !s.Enabled() {
		return domain.ErrImportUnavailable
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if task.Status == domain.ImportCompleted {
		s.logger.Infow("import task already completed", "task_id", taskID.Hex())
		return nil
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing menu import task", "task_id", taskID.Hex())

	items, err := s.parser.ParseMenu(ctx, task.SpreadsheetID, task.ReadRange)
	if err != nil {
		s.logger.Errorw("failed to parse menu", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportFailed, err.Error())
		if domain.IsValidation(err) || errors.Is(err, parser.ErrEmptySheet) {
			return nil
		}
		return fmt.Errorf("failed to parse menu: %w", err)
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.menuRepo.ReplaceAll(ctx, items); err != nil {
			return fmt.Errorf("failed to save menu: %w", err)
		}
		if err := s.taskRepo.Complete(ctx, taskID, len(items)); err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("failed to store imported menu", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportFailed, err.Error())
		return err
	}

	s.logger.Infow("menu import task completed", "task_id", taskID.Hex(), "items", len(items))

	return nil
}
