package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Beka01247/cafe/internal/domain"
)

const (
	colID = iota
	colName
	colCategory
	colPrice
	colIsVeg
	colStock
	colImage
	colDescription
	colOptionLabel
	colOptionType
	colAllowMultiple
	colChoiceName
	colChoicePrice
)

// ParseRows turns sheet values into menu items. The first row is a header.
// A row holding only column A names the category for the items below it
// that leave column C empty. Rows with an empty id extend the option groups
// of the item above them.
func ParseRows(rows [][]interface{}) ([]domain.FoodItem, error) {
	if len(rows) <= 1 {
		return nil, ErrEmptySheet
	}

	var (
		items    []domain.FoodItem
		current  *domain.FoodItem
		category string
		seen     = make(map[string]struct{})
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		if err := current.Validate(); err != nil {
			return fmt.Errorf("item %s: %w", current.ID, err)
		}
		items = append(items, *current)
		current = nil
		return nil
	}

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		line := i + 1

		if isBlank(row) {
			continue
		}

		if isHeading(row) {
			if err := flush(); err != nil {
				return nil, err
			}
			category = cell(row, colID)
			continue
		}

		if id := cell(row, colID); id != "" {
			if err := flush(); err != nil {
				return nil, err
			}
			if _, dup := seen[id]; dup {
				return nil, domain.NewValidationError("id", fmt.Sprintf("row %d: duplicate item id %q", line, id))
			}
			seen[id] = struct{}{}

			item, err := parseItem(row, category, line)
			if err != nil {
				return nil, err
			}
			current = &item
		}

		if cell(row, colOptionLabel) == "" {
			continue
		}
		if current == nil {
			return nil, domain.NewValidationError("options", fmt.Sprintf("row %d: option without an item", line))
		}
		if err := addChoice(current, row, line); err != nil {
			return nil, err
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrEmptySheet
	}

	return items, nil
}

func parseItem(row []interface{}, heading string, line int) (domain.FoodItem, error) {
	item := domain.FoodItem{
		ID:          cell(row, colID),
		Name:        cell(row, colName),
		Image:       cell(row, colImage),
		Description: cell(row, colDescription),
		IsVeg:       parseBool(cell(row, colIsVeg)),
		Options:     []domain.FoodOption{},
	}

	raw := cell(row, colCategory)
	if raw == "" {
		raw = heading
	}
	category, ok := domain.ParseCategory(raw)
	if !ok {
		return item, domain.NewValidationError("category", fmt.Sprintf("row %d: unknown category %q", line, raw))
	}
	item.Category = category

	price, err := domain.ParseMoney(cell(row, colPrice))
	if err != nil {
		return item, domain.NewValidationError("price", fmt.Sprintf("row %d: %v", line, err))
	}
	item.Price = price

	if s := cell(row, colStock); s != "" {
		stock, err := strconv.Atoi(s)
		if err != nil {
			return item, domain.NewValidationError("stock", fmt.Sprintf("row %d: %q is not a number", line, s))
		}
		item.Stock = stock
	}

	return item, nil
}

func addChoice(item *domain.FoodItem, row []interface{}, line int) error {
	label := cell(row, colOptionLabel)

	idx := -1
	for i, opt := range item.Options {
		if opt.Label == label {
			idx = i
			break
		}
	}
	if idx < 0 {
		optType := domain.OptionType(strings.ToLower(cell(row, colOptionType)))
		if optType == "" {
			optType = domain.OptionCustom
		}
		item.Options = append(item.Options, domain.FoodOption{
			Label:         label,
			Type:          optType,
			AllowMultiple: parseBool(cell(row, colAllowMultiple)),
			Choices:       []domain.OptionChoice{},
		})
		idx = len(item.Options) - 1
	}

	name := cell(row, colChoiceName)
	if name == "" {
		return nil
	}

	price := domain.Money{}
	if s := cell(row, colChoicePrice); s != "" {
		p, err := domain.ParseMoney(s)
		if err != nil {
			return domain.NewValidationError("options", fmt.Sprintf("row %d: %v", line, err))
		}
		price = p
	}

	item.Options[idx].Choices = append(item.Options[idx].Choices, domain.OptionChoice{Name: name, Price: price})
	return nil
}

func cell(row []interface{}, col int) string {
	if col >= len(row) || row[col] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[col]))
}

func isBlank(row []interface{}) bool {
	for i := range row {
		if cell(row, i) != "" {
			return false
		}
	}
	return true
}

func isHeading(row []interface{}) bool {
	if cell(row, colID) == "" {
		return false
	}
	for i := 1; i < len(row); i++ {
		if cell(row, i) != "" {
			return false
		}
	}
	return true
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "y", "1", "veg":
		return true
	}
	return false
}
