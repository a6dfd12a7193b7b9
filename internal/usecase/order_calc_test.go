package usecase

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
)

var calcNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func catalogProducts() []domain.Product {
	return []domain.Product{
		{
			ID:       "p-1",
			Name:     "Netflix Premium",
			Slug:     "netflix-premium",
			IsActive: true,
			Variants: []domain.Variant{
				{ID: "v-1", Name: "1 Bulan", Price: decimal.NewFromInt(50000), Stock: 10, IsActive: true},
				{ID: "v-2", Name: "3 Bulan", Price: decimal.NewFromInt(120000), Stock: 3, IsActive: true},
			},
		},
		{
			ID:       "p-2",
			Name:     "Spotify Family",
			Slug:     "spotify-family",
			IsActive: true,
			Variants: []domain.Variant{
				{ID: "v-3", Name: "1 Bulan", Price: decimal.NewFromInt(100000), Stock: 5, IsActive: true},
			},
		},
	}
}

func percentageCoupon() *domain.Coupon {
	return &domain.Coupon{
		ID:        "coupon-1",
		Code:      "DISKON10",
		Type:      domain.CouponPercentage,
		Value:     decimal.NewFromInt(10),
		ValidFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
}

func TestBuildOrderDraft_WithPercentageCoupon(t *testing.T) {
	products := catalogProducts()
	items := []CartItem{
		{ProductID: "p-1", VariantID: "v-1", Quantity: 2},
		{ProductID: "p-2", VariantID: "v-3", Quantity: 1},
	}

	draft, err := buildOrderDraft(products, items, percentageCoupon(), calcNow)

	require.NoError(t, err)
	assert.True(t, draft.Subtotal.Equal(decimal.NewFromInt(200000)), "subtotal %s", draft.Subtotal)
	assert.True(t, draft.Discount.Equal(decimal.NewFromInt(20000)), "discount %s", draft.Discount)
	assert.True(t, draft.TotalAmount.Equal(decimal.NewFromInt(180000)), "total %s", draft.TotalAmount)
	require.NotNil(t, draft.CouponID)
	assert.Equal(t, "coupon-1", *draft.CouponID)
	require.Len(t, draft.Items, 2)
	assert.Equal(t, "Netflix Premium", draft.Items[0].ProductName)
	assert.True(t, draft.Items[0].TotalPrice.Equal(decimal.NewFromInt(100000)))
	assert.ElementsMatch(t, []string{"netflix-premium", "spotify-family"}, draft.ProductSlugs)
}

func TestBuildOrderDraft_WithoutCoupon(t *testing.T) {
	products := catalogProducts()
	items := []CartItem{{ProductID: "p-1", VariantID: "v-1", Quantity: 1}}

	draft, err := buildOrderDraft(products, items, nil, calcNow)

	require.NoError(t, err)
	assert.True(t, draft.Discount.IsZero())
	assert.True(t, draft.TotalAmount.Equal(draft.Subtotal))
	assert.Nil(t, draft.CouponID)
}

func TestBuildOrderDraft_InapplicableCouponSilentlySkipped(t *testing.T) {
	coupon := percentageCoupon()
	limit := 1
	coupon.UsageLimit = &limit
	coupon.UsageCount = 1

	products := catalogProducts()
	items := []CartItem{{ProductID: "p-1", VariantID: "v-1", Quantity: 1}}

	draft, err := buildOrderDraft(products, items, coupon, calcNow)

	require.NoError(t, err)
	assert.True(t, draft.Discount.IsZero())
	assert.Nil(t, draft.CouponID)
	assert.True(t, draft.TotalAmount.Equal(decimal.NewFromInt(50000)))
}

func TestBuildOrderDraft_FixedCouponExceedsSubtotal(t *testing.T) {
	coupon := &domain.Coupon{
		ID:        "coupon-2",
		Code:      "POTONG75",
		Type:      domain.CouponFixed,
		Value:     decimal.NewFromInt(75000),
		ValidFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}

	products := catalogProducts()
	items := []CartItem{{ProductID: "p-1", VariantID: "v-1", Quantity: 1}}

	draft, err := buildOrderDraft(products, items, coupon, calcNow)

	require.NoError(t, err)
	assert.True(t, draft.Discount.Equal(decimal.NewFromInt(75000)))
	assert.True(t, draft.TotalAmount.Equal(decimal.NewFromInt(-25000)), "total %s", draft.TotalAmount)
}

func TestBuildOrderDraft_VariantFallback(t *testing.T) {
	products := catalogProducts()
	items := []CartItem{{ProductID: "p-1", VariantID: "", Quantity: 1}}

	draft, err := buildOrderDraft(products[:1], items, nil, calcNow)

	require.NoError(t, err)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, "v-1", draft.Items[0].VariantID)
}

func TestBuildOrderDraft_UnknownVariantFallsBack(t *testing.T) {
	products := catalogProducts()
	items := []CartItem{{ProductID: "p-1", VariantID: "v-404", Quantity: 1}}

	draft, err := buildOrderDraft(products[:1], items, nil, calcNow)

	require.NoError(t, err)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, "v-1", draft.Items[0].VariantID)
	assert.True(t, draft.Subtotal.Equal(decimal.NewFromInt(50000)))
}

func TestBuildOrderDraft_NoVariants(t *testing.T) {
	products := []domain.Product{{ID: "p-9", Name: "Canva Pro", Slug: "canva-pro", IsActive: true}}
	items := []CartItem{{ProductID: "p-9", VariantID: "", Quantity: 1}}

	_, err := buildOrderDraft(products, items, nil, calcNow)

	require.Error(t, err)
	var varErr *e.VariantError
	assert.True(t, errors.As(err, &varErr))
}

func TestBuildOrderDraft_InsufficientStock(t *testing.T) {
	products := catalogProducts()
	items := []CartItem{{ProductID: "p-1", VariantID: "v-2", Quantity: 4}}

	_, err := buildOrderDraft(products[:1], items, nil, calcNow)

	require.Error(t, err)
	var stockErr *e.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Netflix Premium", stockErr.ProductName)
	assert.Equal(t, "3 Bulan", stockErr.VariantName)
}

func TestBuildOrderDraft_MissingProduct(t *testing.T) {
	products := catalogProducts()
	items := []CartItem{
		{ProductID: "p-1", VariantID: "v-1", Quantity: 1},
		{ProductID: "p-404", VariantID: "", Quantity: 1},
	}

	_, err := buildOrderDraft(products[:1], items, nil, calcNow)

	assert.ErrorIs(t, err, e.ErrProductUnavailable)
}

func TestGenerateOrderNumber_Format(t *testing.T) {
	number, err := generateOrderNumber(calcNow)

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-20240601-[A-Z0-9]{4}$`), number)
}

func TestGenerateOrderNumber_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		number, err := generateOrderNumber(calcNow)
		require.NoError(t, err)
		seen[number] = struct{}{}
	}

	assert.Greater(t, len(seen), 1)
}
