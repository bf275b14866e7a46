package kernel_test

import (
	"encoding/json"
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("rounds to two digits", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("12.345"))

		require.NoError(t, err)
		assert.Equal(t, "12.35", m.String())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects garbage strings", func(t *testing.T) {
		_, err := kernel.MoneyFromString("twelve")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price := kernel.MustMoney("18.50")

	assert.Equal(t, "55.50", price.Times(3).String())
	assert.Equal(t, "24.00", price.Add(kernel.MustMoney("5.5")).String())
	assert.True(t, price.Times(2).IsEqual(kernel.MustMoney("37")))
	assert.True(t, kernel.ZeroMoney().IsZero())
}

func TestMoney_JSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		Amount kernel.Money `json:"amount"`
	}{Amount: kernel.MustMoney("7.5")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":7.50}`, string(raw))

	var decoded struct {
		Amount kernel.Money `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"19.999"}`), &decoded))
	assert.Equal(t, "20.00", decoded.Amount.String())

	err = json.Unmarshal([]byte(`{"amount":-1}`), &decoded)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
