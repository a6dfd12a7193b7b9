package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/schnuffelll/shop-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type CouponHandler struct {
	couponUsecase usecase.CouponUC
	logger        logger.Logger
}

func NewCouponHandler(couponUsecase usecase.CouponUC, logger logger.Logger) *CouponHandler {
	return &CouponHandler{couponUsecase: couponUsecase, logger: logger}
}

type couponRequest struct {
	Code        *string          `json:"code"`
	Type        *string          `json:"type"`
	Value       *decimal.Decimal `json:"value"`
	MinPurchase *decimal.Decimal `json:"minPurchase"`
	MaxDiscount *decimal.Decimal `json:"maxDiscount"`
	UsageLimit  *int             `json:"usageLimit"`
	ValidFrom   *time.Time       `json:"validFrom"`
	ValidUntil  *time.Time       `json:"validUntil"`
	IsActive    *bool            `json:"isActive"`
}

type checkCouponRequest struct {
	Code     string          `json:"code"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// create
//
//	@Summary	Создание купона
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		couponRequest	true	"Купон"
//	@Success	201		{object}	CouponResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/coupons [post]
func (c *CouponHandler) create(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	createReq := &usecase.CreateCouponReq{
		MinPurchase: req.MinPurchase,
		MaxDiscount: req.MaxDiscount,
		UsageLimit:  req.UsageLimit,
		ValidUntil:  req.ValidUntil,
		IsActive:    true,
	}
	if req.Code != nil {
		createReq.Code = *req.Code
	}
	if req.Type != nil {
		createReq.Type = *req.Type
	}
	if req.Value != nil {
		createReq.Value = *req.Value
	}
	if req.ValidFrom != nil {
		createReq.ValidFrom = *req.ValidFrom
	}
	if req.IsActive != nil {
		createReq.IsActive = *req.IsActive
	}

	coupon, err := c.couponUsecase.CreateCoupon(r.Context(), createReq)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newCouponResponse(coupon))
}

// list
//
//	@Summary	Список купонов
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query		int	false	"Страница"
//	@Param		limit	query		int	false	"Размер страницы"
//	@Success	200		{object}	map[string]interface{}
//	@Router		/coupons [get]
func (c *CouponHandler) list(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r, 20, 100)

	res, err := c.couponUsecase.ListCoupons(r.Context(), &usecase.ListCouponsReq{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	coupons := make([]CouponResponse, 0, len(res.Coupons))
	for i := range res.Coupons {
		coupons = append(coupons, newCouponResponse(&res.Coupons[i]))
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"coupons":    coupons,
		"pagination": newPaginationResponse(res.Pagination),
	})
}

// update
//
//	@Summary	Обновление купона
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string			true	"ID купона"
//	@Param		body	body		couponRequest	true	"Изменяемые поля"
//	@Success	200		{object}	CouponResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/coupons/{id} [put]
func (c *CouponHandler) update(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	coupon, err := c.couponUsecase.UpdateCoupon(r.Context(), &usecase.UpdateCouponReq{
		ID:          chi.URLParam(r, "id"),
		Value:       req.Value,
		MinPurchase: req.MinPurchase,
		MaxDiscount: req.MaxDiscount,
		UsageLimit:  req.UsageLimit,
		ValidFrom:   req.ValidFrom,
		ValidUntil:  req.ValidUntil,
		IsActive:    req.IsActive,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCouponResponse(coupon))
}

// delete
//
//	@Summary	Удаление купона
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID купона"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	ErrorResponse
//	@Router		/coupons/{id} [delete]
func (c *CouponHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := c.couponUsecase.DeleteCoupon(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Kupon berhasil dihapus",
	})
}

// check
//
//	@Summary		Проверка купона
//	@Description	Проверяет применимость купона к сумме корзины без списания
//	@Tags			coupons
//	@Accept			json
//	@Produce		json
//	@Param			body	body		checkCouponRequest	true	"Код и сумма корзины"
//	@Success		200		{object}	CheckCouponResponse
//	@Router			/coupons/check [post]
func (c *CouponHandler) check(w http.ResponseWriter, r *http.Request) {
	var req checkCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.couponUsecase.CheckCoupon(r.Context(), &usecase.CheckCouponReq{
		Code:     req.Code,
		Subtotal: req.Subtotal,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, CheckCouponResponse{
		Applicable: res.Applicable,
		Discount:   res.Discount,
	})
}
