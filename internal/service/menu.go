package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Beka01247/cafe/internal/catalog"
	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MenuFilter struct {
	Category string
	Query    string
}

type MenuService struct {
	source   catalog.Source
	menuRepo repo.MenuRepository
	logger   *zap.SugaredLogger
}

// NewMenuService reads from source. A nil menuRepo makes the menu read-only.
func NewMenuService(source catalog.Source, menuRepo repo.MenuRepository, logger *zap.SugaredLogger) *MenuService {
	return &MenuService{
		source:   source,
		menuRepo: menuRepo,
		logger:   logger,
	}
}

func (s *MenuService) SourceName() string {
	return s.source.Name()
}

func (s *MenuService) Writable() bool {
	return s.menuRepo != nil
}

func (s *MenuService) List(ctx context.Context, filter MenuFilter) ([]domain.FoodItem, error) {
	items, err := s.source.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	var category domain.Category
	if c := strings.TrimSpace(filter.Category); c != "" && !strings.EqualFold(c, "all") {
		parsed, ok := domain.ParseCategory(c)
		if !ok {
			return nil, domain.NewValidationError("category", "unknown category "+c)
		}
		category = parsed
	}
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]domain.FoodItem, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (s *MenuService) Categories() []domain.Category {
	return domain.Categories
}

func (s *MenuService) Popular(ctx context.Context) ([]domain.FoodItem, error) {
	items, err := s.source.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	out := []domain.FoodItem{}
	for _, item := range items {
		if item.Popular && item.Available() {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.FoodItem, error) {
	item, err := s.source.Item(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

func (s *MenuService) Count(ctx context.Context) (int, error) {
	items, err := s.source.Items(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load menu: %w", err)
	}
	return len(items), nil
}

func (s *MenuService) Create(ctx context.Context, item domain.FoodItem) (*domain.FoodItem, error) {
	if !s.Writable() {
		return nil, domain.ErrReadOnlyCatalog
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	normalizeOptions(&item)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.menuRepo.Create(ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Infow("menu item created", "item_id", item.ID, "name", item.Name)
	return &item, nil
}

func (s *MenuService) Update(ctx context.Context, id string, item domain.FoodItem) (*domain.FoodItem, error) {
	if !s.Writable() {
		return nil, domain.ErrReadOnlyCatalog
	}

	item.ID = id
	normalizeOptions(&item)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.menuRepo.Update(ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	s.logger.Infow("menu item updated", "item_id", id)
	return s.Get(ctx, id)
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if !s.Writable() {
		return domain.ErrReadOnlyCatalog
	}

	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	s.logger.Infow("menu item deleted", "item_id", id)
	return nil
}

// SeedIfEmpty stores items when the menu collection has nothing in it yet.
func (s *MenuService) SeedIfEmpty(ctx context.Context, items []domain.FoodItem) (int, error) {
	if !s.Writable() {
		return 0, nil
	}

	n, err := s.menuRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	if err := s.menuRepo.ReplaceAll(ctx, items); err != nil {
		return 0, fmt.Errorf("failed to seed menu: %w", err)
	}

	s.logger.Infow("menu seeded", "items", len(items))
	return len(items), nil
}

func normalizeOptions(item *domain.FoodItem) {
	if item.Options == nil {
		item.Options = []domain.FoodOption{}
	}
	for i := range item.Options {
		if item.Options[i].Type == "" {
			item.Options[i].Type = domain.OptionCustom
		}
		if item.Options[i].Choices == nil {
			item.Options[i].Choices = []domain.OptionChoice{}
		}
	}
}
