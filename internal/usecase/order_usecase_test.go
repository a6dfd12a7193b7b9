package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schnuffelll/shop-backend/pkg/e"
)

func TestValidateCart_Empty(t *testing.T) {
	err := validateCart(nil)

	assert.ErrorIs(t, err, e.ErrEmptyCart)
}

func TestValidateCart_MissingProductID(t *testing.T) {
	err := validateCart([]CartItem{{ProductID: "", Quantity: 1}})

	require.Error(t, err)
	msg, ok := e.UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Produk wajib diisi", msg)
}

func TestValidateCart_NonPositiveQuantity(t *testing.T) {
	err := validateCart([]CartItem{{ProductID: "p-1", Quantity: 0}})

	require.Error(t, err)
	msg, ok := e.UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Jumlah harus lebih dari 0", msg)
}

func TestValidateCart_Valid(t *testing.T) {
	err := validateCart([]CartItem{
		{ProductID: "p-1", VariantID: "v-1", Quantity: 2},
		{ProductID: "p-2", Quantity: 1},
	})

	assert.NoError(t, err)
}
