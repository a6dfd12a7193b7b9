package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/schnuffelll/shop-backend/pkg/logger"
)

// mockCouponRepo реализует CouponRepository для тестов.
type mockCouponRepo struct {
	byCode map[string]*domain.Coupon
}

func newMockCouponRepo() *mockCouponRepo {
	return &mockCouponRepo{byCode: make(map[string]*domain.Coupon)}
}

func (m *mockCouponRepo) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	coupon, ok := m.byCode[code]
	if !ok {
		return nil, e.ErrCouponNotFound
	}
	return coupon, nil
}

func (m *mockCouponRepo) GetByID(_ context.Context, id string) (*domain.Coupon, error) {
	for _, coupon := range m.byCode {
		if coupon.ID == id {
			return coupon, nil
		}
	}
	return nil, e.ErrCouponNotFound
}

func (m *mockCouponRepo) List(_ context.Context, _, _ int) ([]domain.Coupon, int64, error) {
	coupons := make([]domain.Coupon, 0, len(m.byCode))
	for _, coupon := range m.byCode {
		coupons = append(coupons, *coupon)
	}
	return coupons, int64(len(coupons)), nil
}

func (m *mockCouponRepo) Create(_ context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	created := *coupon
	created.ID = "coupon-" + coupon.Code
	m.byCode[created.Code] = &created
	return &created, nil
}

func (m *mockCouponRepo) Update(_ context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	m.byCode[coupon.Code] = coupon
	return coupon, nil
}

func (m *mockCouponRepo) Delete(_ context.Context, id string) error {
	for code, coupon := range m.byCode {
		if coupon.ID == id {
			delete(m.byCode, code)
			return nil
		}
	}
	return e.ErrCouponNotFound
}

func (m *mockCouponRepo) IncrementUsage(_ context.Context, id string) error {
	for _, coupon := range m.byCode {
		if coupon.ID == id {
			coupon.UsageCount++
			return nil
		}
	}
	return e.ErrCouponNotFound
}

func testCouponUC(repo *mockCouponRepo) *CouponUseCase {
	return NewCouponUC(repo, logger.NewSlogLogger())
}

func TestCreateCoupon_UppercasesCode(t *testing.T) {
	uc := testCouponUC(newMockCouponRepo())

	coupon, err := uc.CreateCoupon(context.Background(), &CreateCouponReq{
		Code:     "diskon10",
		Type:     "PERCENTAGE",
		Value:    decimal.NewFromInt(10),
		IsActive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "DISKON10", coupon.Code)
	assert.False(t, coupon.ValidFrom.IsZero())
}

func TestCreateCoupon_DuplicateCode(t *testing.T) {
	repo := newMockCouponRepo()
	uc := testCouponUC(repo)

	_, err := uc.CreateCoupon(context.Background(), &CreateCouponReq{
		Code: "DISKON10", Type: "PERCENTAGE", Value: decimal.NewFromInt(10), IsActive: true,
	})
	require.NoError(t, err)

	_, err = uc.CreateCoupon(context.Background(), &CreateCouponReq{
		Code: "diskon10", Type: "FIXED", Value: decimal.NewFromInt(5000), IsActive: true,
	})
	assert.ErrorIs(t, err, e.ErrCouponCodeTaken)
}

func TestCreateCoupon_InvalidType(t *testing.T) {
	uc := testCouponUC(newMockCouponRepo())

	_, err := uc.CreateCoupon(context.Background(), &CreateCouponReq{
		Code: "DISKON10", Type: "BOGO", Value: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, e.ErrInvalidCouponType)
}

func TestCreateCoupon_InvalidValue(t *testing.T) {
	uc := testCouponUC(newMockCouponRepo())

	_, err := uc.CreateCoupon(context.Background(), &CreateCouponReq{
		Code: "DISKON0", Type: "PERCENTAGE", Value: decimal.Zero,
	})
	assert.ErrorIs(t, err, e.ErrInvalidCouponValue)

	_, err = uc.CreateCoupon(context.Background(), &CreateCouponReq{
		Code: "DISKON150", Type: "PERCENTAGE", Value: decimal.NewFromInt(150),
	})
	assert.ErrorIs(t, err, e.ErrInvalidCouponValue)
}

func TestCheckCoupon_Applicable(t *testing.T) {
	repo := newMockCouponRepo()
	uc := testCouponUC(repo)

	repo.byCode["DISKON10"] = &domain.Coupon{
		ID:        "coupon-1",
		Code:      "DISKON10",
		Type:      domain.CouponPercentage,
		Value:     decimal.NewFromInt(10),
		ValidFrom: time.Now().Add(-time.Hour),
		IsActive:  true,
	}

	res, err := uc.CheckCoupon(context.Background(), &CheckCouponReq{
		Code:     "diskon10",
		Subtotal: decimal.NewFromInt(200000),
	})

	require.NoError(t, err)
	assert.True(t, res.Applicable)
	assert.True(t, res.Discount.Equal(decimal.NewFromInt(20000)), "got %s", res.Discount)
}

func TestCheckCoupon_UnknownCodeNotAnError(t *testing.T) {
	uc := testCouponUC(newMockCouponRepo())

	res, err := uc.CheckCoupon(context.Background(), &CheckCouponReq{
		Code:     "TIDAKADA",
		Subtotal: decimal.NewFromInt(200000),
	})

	require.NoError(t, err)
	assert.False(t, res.Applicable)
	assert.True(t, res.Discount.IsZero())
}

func TestCheckCoupon_InapplicableCoupon(t *testing.T) {
	repo := newMockCouponRepo()
	uc := testCouponUC(repo)

	repo.byCode["DISKON10"] = &domain.Coupon{
		ID:        "coupon-1",
		Code:      "DISKON10",
		Type:      domain.CouponPercentage,
		Value:     decimal.NewFromInt(10),
		ValidFrom: time.Now().Add(-time.Hour),
		IsActive:  false,
	}

	res, err := uc.CheckCoupon(context.Background(), &CheckCouponReq{
		Code:     "DISKON10",
		Subtotal: decimal.NewFromInt(200000),
	})

	require.NoError(t, err)
	assert.False(t, res.Applicable)
}
