package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/Beka01247/cafe/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default_menu.yaml
var defaultMenu []byte

type menuFile struct {
	Items []menuItemYAML `yaml:"items"`
}

type menuItemYAML struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Price       string           `yaml:"price"`
	Category    string           `yaml:"category"`
	Image       string           `yaml:"image"`
	IsVeg       bool             `yaml:"is_veg"`
	Stock       int              `yaml:"stock"`
	Popular     bool             `yaml:"popular"`
	Options     []menuOptionYAML `yaml:"options"`
}

type menuOptionYAML struct {
	Label         string           `yaml:"label"`
	Type          string           `yaml:"type"`
	AllowMultiple bool             `yaml:"allow_multiple"`
	Choices       []menuChoiceYAML `yaml:"choices"`
}

type menuChoiceYAML struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

// DefaultMenu returns the menu compiled into the binary.
func DefaultMenu() ([]domain.FoodItem, error) {
	return ParseYAML(defaultMenu)
}

// ParseYAML decodes and validates a YAML menu document.
func ParseYAML(data []byte) ([]domain.FoodItem, error) {
	var file menuFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode menu yaml: %w", err)
	}

	items := make([]domain.FoodItem, 0, len(file.Items))
	seen := make(map[string]struct{}, len(file.Items))
	for _, raw := range file.Items {
		item, err := raw.toDomain()
		if err != nil {
			return nil, fmt.Errorf("menu item %s: %w", raw.ID, err)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, domain.NewValidationError("id", "duplicate menu item id "+item.ID)
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}

	return items, nil
}

func (m menuItemYAML) toDomain() (domain.FoodItem, error) {
	if m.ID == "" {
		return domain.FoodItem{}, domain.NewValidationError("id", "id is required")
	}

	price, err := parseAmount(m.Price)
	if err != nil {
		return domain.FoodItem{}, domain.NewValidationError("price", err.Error())
	}

	category, _ := domain.ParseCategory(m.Category)

	item := domain.FoodItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       price,
		Category:    category,
		Image:       m.Image,
		IsVeg:       m.IsVeg,
		Stock:       m.Stock,
		Popular:     m.Popular,
		Options:     make([]domain.FoodOption, 0, len(m.Options)),
	}

	for _, o := range m.Options {
		opt := domain.FoodOption{
			Label:         o.Label,
			Type:          domain.OptionType(o.Type),
			AllowMultiple: o.AllowMultiple,
			Choices:       make([]domain.OptionChoice, 0, len(o.Choices)),
		}
		if opt.Type == "" {
			opt.Type = domain.OptionCustom
		}
		for _, c := range o.Choices {
			p, err := parseAmount(c.Price)
			if err != nil {
				return domain.FoodItem{}, domain.NewValidationError("options", err.Error())
			}
			opt.Choices = append(opt.Choices, domain.OptionChoice{Name: c.Name, Price: p})
		}
		item.Options = append(item.Options, opt)
	}

	if err := item.Validate(); err != nil {
		return domain.FoodItem{}, err
	}
	return item, nil
}

func parseAmount(s string) (domain.Money, error) {
	if s == "" {
		return domain.Money{}, nil
	}
	return domain.ParseMoney(s)
}

// StaticSource serves a fixed menu loaded once at startup.
type StaticSource struct {
	items []domain.FoodItem
}

func NewStaticSource(items []domain.FoodItem) *StaticSource {
	return &StaticSource{items: items}
}

// LoadStaticSource reads a YAML menu from path, or the compiled-in menu when
// path is empty.
func LoadStaticSource(path string) (*StaticSource, error) {
	data := defaultMenu
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read menu file: %w", err)
		}
		data = b
	}

	items, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return NewStaticSource(items), nil
}

func (s *StaticSource) Name() string {
	return SourceStatic
}

func (s *StaticSource) Items(ctx context.Context) ([]domain.FoodItem, error) {
	out := make([]domain.FoodItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *StaticSource) Item(ctx context.Context, id string) (*domain.FoodItem, error) {
	return findItem(ctx, s, id)
}
