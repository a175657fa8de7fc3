package cart

import (
	"github.com/Beka01247/cafe/internal/domain"
)

// UnitPrice is the base price plus the surcharges of every selected choice.
// Choices that no longer exist on the item snapshot are ignored.
func UnitPrice(line domain.CartItem) domain.Money {
	total := line.Item.Price

	for label, sel := range line.SelectedOptions {
		opt, ok := line.Item.Option(label)
		if !ok {
			continue
		}

		choices := sel.Choices
		if !opt.AllowMultiple && len(choices) > 1 {
			choices = choices[:1]
		}
		for _, name := range choices {
			if choice, ok := opt.Choice(name); ok {
				total = total.Add(choice.Price)
			}
		}
	}

	return total
}

func LineTotal(line domain.CartItem) domain.Money {
	return UnitPrice(line).Mul(line.Quantity)
}

func GrandTotal(lines []domain.CartItem) domain.Money {
	total := domain.Money{}
	for _, line := range lines {
		total = total.Add(LineTotal(line))
	}
	return total
}
