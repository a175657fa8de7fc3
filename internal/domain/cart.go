package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Selection holds the chosen choice names for one option group. On the wire a
// single-select group is a string and a multi-select group is an array.
type Selection struct {
	Choices  []string `bson:"choices"`
	Multiple bool     `bson:"multiple"`
}

func Single(choice string) Selection {
	return Selection{Choices: []string{choice}}
}

func Multi(choices ...string) Selection {
	if choices == nil {
		choices = []string{}
	}
	return Selection{Choices: choices, Multiple: true}
}

func (s Selection) Empty() bool {
	for _, c := range s.Choices {
		if c != "" {
			return false
		}
	}
	return true
}

func (s Selection) Equal(o Selection) bool {
	if s.Multiple != o.Multiple || len(s.Choices) != len(o.Choices) {
		return false
	}
	seen := make(map[string]int, len(s.Choices))
	for _, c := range s.Choices {
		seen[c]++
	}
	for _, c := range o.Choices {
		if seen[c] == 0 {
			return false
		}
		seen[c]--
	}
	return true
}

func (s Selection) MarshalJSON() ([]byte, error) {
	if s.Multiple {
		choices := s.Choices
		if choices == nil {
			choices = []string{}
		}
		return json.Marshal(choices)
	}
	if len(s.Choices) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(s.Choices[0])
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var choices []string
		if err := json.Unmarshal(data, &choices); err != nil {
			return fmt.Errorf("invalid option selection: %w", err)
		}
		*s = Multi(choices...)
		return nil
	}

	var choice string
	if err := json.Unmarshal(data, &choice); err != nil {
		return fmt.Errorf("invalid option selection: %w", err)
	}
	if choice == "" {
		*s = Selection{}
		return nil
	}
	*s = Single(choice)
	return nil
}

// SelectedOptions maps an option group label to its selection.
type SelectedOptions map[string]Selection

// Empty reports whether no group has a choice, i.e. the line is "plain".
func (s SelectedOptions) Empty() bool {
	for _, sel := range s {
		if !sel.Empty() {
			return false
		}
	}
	return true
}

func (s SelectedOptions) Equal(o SelectedOptions) bool {
	for label, sel := range s {
		if sel.Empty() {
			continue
		}
		other, ok := o[label]
		if !ok || !sel.Equal(other) {
			return false
		}
	}
	for label, sel := range o {
		if sel.Empty() {
			continue
		}
		if _, ok := s[label]; !ok {
			return false
		}
	}
	return true
}

type CartItem struct {
	LineID              string          `bson:"line_id" json:"line_id"`
	Item                FoodItem        `bson:"item" json:"item"`
	Quantity            int             `bson:"quantity" json:"quantity"`
	SelectedOptions     SelectedOptions `bson:"selected_options,omitempty" json:"selected_options,omitempty"`
	SpecialInstructions string          `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
}

// Cart is the in-progress selection of one customer session.
type Cart struct {
	SessionID     string     `bson:"_id" json:"session_id"`
	Items         []CartItem `bson:"items" json:"items"`
	CustomerName  string     `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	CustomerPhone string     `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
}

func (c Cart) Line(lineID string) (CartItem, bool) {
	for _, it := range c.Items {
		if it.LineID == lineID {
			return it, true
		}
	}
	return CartItem{}, false
}

func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}
