package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCoupon(t CouponType, value int64) *Coupon {
	return &Coupon{
		ID:        "coupon-1",
		Code:      "DISKON10",
		Type:      t,
		Value:     decimal.NewFromInt(value),
		ValidFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
}

func TestCouponApplicable_Active(t *testing.T) {
	c := activeCoupon(CouponPercentage, 10)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, c.Applicable(decimal.NewFromInt(200000), now))
}

func TestCouponApplicable_Inactive(t *testing.T) {
	c := activeCoupon(CouponPercentage, 10)
	c.IsActive = false
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, c.Applicable(decimal.NewFromInt(200000), now))
}

func TestCouponApplicable_NotStartedYet(t *testing.T) {
	c := activeCoupon(CouponPercentage, 10)
	c.ValidFrom = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, c.Applicable(decimal.NewFromInt(200000), now))
}

func TestCouponApplicable_Expired(t *testing.T) {
	c := activeCoupon(CouponPercentage, 10)
	until := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c.ValidUntil = &until
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, c.Applicable(decimal.NewFromInt(200000), now))
}

func TestCouponApplicable_UsageLimitReached(t *testing.T) {
	c := activeCoupon(CouponPercentage, 10)
	limit := 5
	c.UsageLimit = &limit
	c.UsageCount = 5
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, c.Applicable(decimal.NewFromInt(200000), now))
}

func TestCouponApplicable_BelowMinPurchase(t *testing.T) {
	c := activeCoupon(CouponPercentage, 10)
	min := decimal.NewFromInt(100000)
	c.MinPurchase = &min
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, c.Applicable(decimal.NewFromInt(50000), now))
	assert.True(t, c.Applicable(decimal.NewFromInt(100000), now))
}

func TestCouponDiscount_Percentage(t *testing.T) {
	c := activeCoupon(CouponPercentage, 10)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	discount, ok := c.Discount(decimal.NewFromInt(200000), now)

	require.True(t, ok)
	assert.True(t, discount.Equal(decimal.NewFromInt(20000)), "got %s", discount)
}

func TestCouponDiscount_PercentageCapped(t *testing.T) {
	c := activeCoupon(CouponPercentage, 10)
	cap := decimal.NewFromInt(15000)
	c.MaxDiscount = &cap
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	discount, ok := c.Discount(decimal.NewFromInt(200000), now)

	require.True(t, ok)
	assert.True(t, discount.Equal(cap), "got %s", discount)
}

func TestCouponDiscount_Fixed(t *testing.T) {
	c := activeCoupon(CouponFixed, 25000)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	discount, ok := c.Discount(decimal.NewFromInt(200000), now)

	require.True(t, ok)
	assert.True(t, discount.Equal(decimal.NewFromInt(25000)), "got %s", discount)
}

func TestCouponDiscount_FixedNotCappedBySubtotal(t *testing.T) {
	c := activeCoupon(CouponFixed, 50000)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	discount, ok := c.Discount(decimal.NewFromInt(30000), now)

	require.True(t, ok)
	assert.True(t, discount.Equal(decimal.NewFromInt(50000)), "got %s", discount)
}

func TestCouponDiscount_NotApplicable(t *testing.T) {
	c := activeCoupon(CouponPercentage, 10)
	c.IsActive = false
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	discount, ok := c.Discount(decimal.NewFromInt(200000), now)

	assert.False(t, ok)
	assert.True(t, discount.IsZero())
}
