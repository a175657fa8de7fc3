package domain

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryPizza      Category = "Pizza"
	CategoryBeverages  Category = "Beverages"
	CategoryDesserts   Category = "Desserts"
	CategoryAppetizers Category = "Appetizers"
	CategoryMainCourse Category = "Main Course"
)

// Categories is the fixed menu enumeration in display order.
var Categories = []Category{
	CategoryPizza,
	CategoryBeverages,
	CategoryDesserts,
	CategoryAppetizers,
	CategoryMainCourse,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory matches s against the enumeration ignoring case and
// surrounding space.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, known := range Categories {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return Category(s), false
}

type OptionType string

const (
	OptionSize     OptionType = "size"
	OptionToppings OptionType = "toppings"
	OptionCustom   OptionType = "custom"
)

func (t OptionType) Valid() bool {
	switch t {
	case OptionSize, OptionToppings, OptionCustom:
		return true
	}
	return false
}

type OptionChoice struct {
	Name  string `bson:"name" json:"name"`
	Price Money  `bson:"price" json:"price"`
}

type FoodOption struct {
	Label         string         `bson:"label" json:"label"`
	Type          OptionType     `bson:"type" json:"type"`
	Choices       []OptionChoice `bson:"choices" json:"choices"`
	AllowMultiple bool           `bson:"allow_multiple" json:"allow_multiple"`
}

func (o FoodOption) Choice(name string) (OptionChoice, bool) {
	for _, c := range o.Choices {
		if c.Name == name {
			return c, true
		}
	}
	return OptionChoice{}, false
}

type FoodItem struct {
	ID          string       `bson:"_id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Price       Money        `bson:"price" json:"price"`
	Category    Category     `bson:"category" json:"category"`
	Image       string       `bson:"image" json:"image"`
	IsVeg       bool         `bson:"is_veg" json:"is_veg"`
	Stock       int          `bson:"stock" json:"stock"`
	Popular     bool         `bson:"popular" json:"popular"`
	Options     []FoodOption `bson:"options,omitempty" json:"options,omitempty"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
}

func (f FoodItem) Available() bool {
	return f.Stock > 0
}

func (f FoodItem) Option(label string) (FoodOption, bool) {
	for _, o := range f.Options {
		if o.Label == label {
			return o, true
		}
	}
	return FoodOption{}, false
}

// Validate checks the admin-editable fields of a menu item.
func (f FoodItem) Validate() error {
	if f.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if f.Price.IsNegative() {
		return NewValidationError("price", "price must not be negative")
	}
	if f.Stock < 0 {
		return NewValidationError("stock", "stock must not be negative")
	}
	if !f.Category.Valid() {
		return NewValidationError("category", "unknown category "+string(f.Category))
	}

	labels := make(map[string]struct{}, len(f.Options))
	for _, opt := range f.Options {
		if opt.Label == "" {
			return NewValidationError("options", "option label is required")
		}
		if _, dup := labels[opt.Label]; dup {
			return NewValidationError("options", "duplicate option group "+opt.Label)
		}
		labels[opt.Label] = struct{}{}

		if opt.Type != "" && !opt.Type.Valid() {
			return NewValidationError("options", "unknown option type "+string(opt.Type))
		}

		names := make(map[string]struct{}, len(opt.Choices))
		for _, c := range opt.Choices {
			if c.Name == "" {
				return NewValidationError("options", "choice name is required in "+opt.Label)
			}
			if _, dup := names[c.Name]; dup {
				return NewValidationError("options", "duplicate choice "+c.Name+" in "+opt.Label)
			}
			names[c.Name] = struct{}{}
			if c.Price.IsNegative() {
				return NewValidationError("options", "surcharge must not be negative for "+c.Name)
			}
		}
	}

	return nil
}
