package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

const moneyScale = 2

// Money is a fixed-point amount in the café currency with two fraction digits.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{amount: d.Round(moneyScale)}
}

func MoneyFromInt(v int64) Money {
	return NewMoney(decimal.NewFromInt(v))
}

func MoneyFromFloat(v float64) Money {
	return NewMoney(decimal.NewFromFloat(v))
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return NewMoney(d), nil
}

func (m Money) Add(o Money) Money {
	return Money{amount: m.amount.Add(o.amount)}
}

func (m Money) Mul(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) Equal(o Money) bool {
	return m.amount.Equal(o.amount)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 is only meant for wire formats that require a JSON number.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both numbers and quoted strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Money{}
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	*m = NewMoney(d)
	return nil
}

func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(m.String())
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode amount: %w", err)
	}
	return bson.MarshalValue(d128)
}

func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v := bsoncore.Value{Type: t, Data: data}

	switch t {
	case bsontype.Decimal128:
		d128, ok := v.Decimal128OK()
		if !ok {
			return fmt.Errorf("malformed decimal128 amount")
		}
		parsed, err := ParseMoney(d128.String())
		if err != nil {
			return err
		}
		*m = parsed
	case bsontype.Double:
		*m = MoneyFromFloat(v.Double())
	case bsontype.Int32:
		*m = MoneyFromInt(int64(v.Int32()))
	case bsontype.Int64:
		*m = MoneyFromInt(v.Int64())
	case bsontype.String:
		parsed, err := ParseMoney(v.StringValue())
		if err != nil {
			return err
		}
		*m = parsed
	case bsontype.Null, bsontype.Undefined:
		*m = Money{}
	default:
		return fmt.Errorf("cannot decode amount from bson type %s", t)
	}
	return nil
}
