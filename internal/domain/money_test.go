package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMoney_Arithmetic(t *testing.T) {
	base := MoneyFromInt(200)
	surcharge := MoneyFromInt(50)

	assert.Equal(t, "500.00", base.Add(surcharge).Mul(2).String())
	assert.True(t, Money{}.IsZero())
	assert.True(t, MoneyFromFloat(-1).IsNegative())
}

func TestMoney_NoFloatDrift(t *testing.T) {
	total := Money{}
	for i := 0; i < 10; i++ {
		total = total.Add(MoneyFromFloat(0.1))
	}
	assert.Equal(t, "1.00", total.String())
}

func TestMoney_JSON(t *testing.T) {
	t.Run("encodes as number", func(t *testing.T) {
		data, err := json.Marshal(struct {
			Price Money `json:"price"`
		}{Price: MoneyFromFloat(12.5)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"price":12.50}`, string(data))
	})

	t.Run("decodes number and string", func(t *testing.T) {
		var v struct {
			A Money `json:"a"`
			B Money `json:"b"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a":99.999,"b":"12.3"}`), &v))
		assert.Equal(t, "100.00", v.A.String())
		assert.Equal(t, "12.30", v.B.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var m Money
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
	})
}

func TestMoney_BSON(t *testing.T) {
	type doc struct {
		Price Money `bson:"price"`
	}

	data, err := bson.Marshal(doc{Price: MoneyFromFloat(349.9)})
	require.NoError(t, err)

	var out doc
	require.NoError(t, bson.Unmarshal(data, &out))
	assert.Equal(t, "349.90", out.Price.String())

	t.Run("legacy numeric documents", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"price": 120})
		require.NoError(t, err)

		var legacy doc
		require.NoError(t, bson.Unmarshal(raw, &legacy))
		assert.Equal(t, "120.00", legacy.Price.String())

		raw, err = bson.Marshal(bson.M{"price": 2.5})
		require.NoError(t, err)
		require.NoError(t, bson.Unmarshal(raw, &legacy))
		assert.Equal(t, "2.50", legacy.Price.String())
	})
}
