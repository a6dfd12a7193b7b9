package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/schnuffelll/shop-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// CouponUseCase реализует бизнес-логику промокодов.
type CouponUseCase struct {
	couponRepo CouponRepository
	logger     logger.Logger
}

func NewCouponUC(couponRepo CouponRepository, logger logger.Logger) *CouponUseCase {
	return &CouponUseCase{
		couponRepo: couponRepo,
		logger:     logger,
	}
}

// CreateCoupon создаёт купон. Код хранится в верхнем регистре.
func (c *CouponUseCase) CreateCoupon(ctx context.Context, req *CreateCouponReq) (*domain.Coupon, error) {
	const op = "CouponUseCase.CreateCoupon"

	if req.Code == "" {
		return nil, e.Wrap(op, e.Validation("code", "Kode kupon wajib diisi"))
	}

	couponType := domain.CouponType(req.Type)
	if couponType != domain.CouponPercentage && couponType != domain.CouponFixed {
		return nil, e.Wrap(op, e.ErrInvalidCouponType)
	}

	if !req.Value.GreaterThan(decimal.Zero) {
		return nil, e.Wrap(op, e.ErrInvalidCouponValue)
	}
	if couponType == domain.CouponPercentage && req.Value.GreaterThan(hundredValue) {
		return nil, e.Wrap(op, e.ErrInvalidCouponValue)
	}

	code := strings.ToUpper(req.Code)
	if _, err := c.couponRepo.GetByCode(ctx, code); err == nil {
		return nil, e.Wrap(op, e.ErrCouponCodeTaken)
	}

	validFrom := req.ValidFrom
	if validFrom.IsZero() {
		validFrom = time.Now()
	}

	coupon, err := c.couponRepo.Create(ctx, &domain.Coupon{
		Code:        code,
		Type:        couponType,
		Value:       req.Value,
		MinPurchase: req.MinPurchase,
		MaxDiscount: req.MaxDiscount,
		UsageLimit:  req.UsageLimit,
		ValidFrom:   validFrom,
		ValidUntil:  req.ValidUntil,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return coupon, nil
}

// ListCoupons возвращает страницу купонов для админ-панели.
func (c *CouponUseCase) ListCoupons(ctx context.Context, req *ListCouponsReq) (*CouponsRes, error) {
	const op = "CouponUseCase.ListCoupons"

	coupons, total, err := c.couponRepo.List(ctx, req.Page, req.Limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CouponsRes{
		Coupons:    coupons,
		Pagination: NewPagination(req.Page, req.Limit, total),
	}, nil
}

// UpdateCoupon частично обновляет купон. Код купона после создания
// не меняется.
func (c *CouponUseCase) UpdateCoupon(ctx context.Context, req *UpdateCouponReq) (*domain.Coupon, error) {
	const op = "CouponUseCase.UpdateCoupon"

	coupon, err := c.couponRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Value != nil {
		if !req.Value.GreaterThan(decimal.Zero) {
			return nil, e.Wrap(op, e.ErrInvalidCouponValue)
		}
		if coupon.Type == domain.CouponPercentage && req.Value.GreaterThan(hundredValue) {
			return nil, e.Wrap(op, e.ErrInvalidCouponValue)
		}
		coupon.Value = *req.Value
	}
	if req.MinPurchase != nil {
		coupon.MinPurchase = req.MinPurchase
	}
	if req.MaxDiscount != nil {
		coupon.MaxDiscount = req.MaxDiscount
	}
	if req.UsageLimit != nil {
		coupon.UsageLimit = req.UsageLimit
	}
	if req.ValidFrom != nil {
		coupon.ValidFrom = *req.ValidFrom
	}
	if req.ValidUntil != nil {
		coupon.ValidUntil = req.ValidUntil
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}

	updated, err := c.couponRepo.Update(ctx, coupon)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// DeleteCoupon удаляет купон.
func (c *CouponUseCase) DeleteCoupon(ctx context.Context, id string) error {
	const op = "CouponUseCase.DeleteCoupon"

	if _, err := c.couponRepo.GetByID(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err := c.couponRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// CheckCoupon проверяет применимость купона к сумме корзины без
// побочных эффектов. Неизвестный или неприменимый купон не считается
// ошибкой: клиент получает applicable=false.
func (c *CouponUseCase) CheckCoupon(ctx context.Context, req *CheckCouponReq) (*CheckCouponRes, error) {
	const op = "CouponUseCase.CheckCoupon"

	coupon, err := c.couponRepo.GetByCode(ctx, strings.ToUpper(req.Code))
	if err != nil {
		if errors.Is(err, e.ErrCouponNotFound) {
			return &CheckCouponRes{Applicable: false, Discount: decimal.Zero}, nil
		}
		return nil, e.Wrap(op, err)
	}

	discount, ok := coupon.Discount(req.Subtotal, time.Now())

	return &CheckCouponRes{
		Applicable: ok,
		Discount:   discount,
	}, nil
}

var hundredValue = decimal.NewFromInt(100)
