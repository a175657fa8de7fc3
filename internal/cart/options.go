package cart

import (
	"fmt"

	"github.com/Beka01247/cafe/internal/domain"
)

// ValidateSelection checks a customer's choices against the item's option
// groups and returns them normalized: empty groups dropped, the multi flag
// taken from the group definition, duplicate names collapsed.
func ValidateSelection(item domain.FoodItem, selected domain.SelectedOptions) (domain.SelectedOptions, error) {
	if selected.Empty() {
		return nil, nil
	}

	out := make(domain.SelectedOptions, len(selected))
	for label, sel := range selected {
		if sel.Empty() {
			continue
		}

		opt, ok := item.Option(label)
		if !ok {
			return nil, domain.NewValidationError("selected_options", fmt.Sprintf("%s has no option %q", item.Name, label))
		}

		seen := make(map[string]struct{}, len(sel.Choices))
		choices := make([]string, 0, len(sel.Choices))
		for _, name := range sel.Choices {
			if name == "" {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			if _, ok := opt.Choice(name); !ok {
				return nil, domain.NewValidationError("selected_options", fmt.Sprintf("%q is not a choice for %s", name, label))
			}
			seen[name] = struct{}{}
			choices = append(choices, name)
		}

		if !opt.AllowMultiple && len(choices) > 1 {
			return nil, domain.NewValidationError("selected_options", fmt.Sprintf("only one choice allowed for %s", label))
		}

		if opt.AllowMultiple {
			out[label] = domain.Multi(choices...)
		} else {
			out[label] = domain.Single(choices[0])
		}
	}

	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
