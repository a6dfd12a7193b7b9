package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/schnuffelll/shop-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type orderItemRequest struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequest struct {
	Items      []orderItemRequest `json:"items"`
	CouponCode string             `json:"couponCode"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// create
//
//	@Summary		Оформление заказа
//	@Description	Создаёт заказ из корзины, списывает остатки и применяет купон
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		createOrderRequest	true	"Корзина"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/orders [post]
func (o *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	items := make([]usecase.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.CartItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	order, err := o.orderUsecase.CreateOrder(r.Context(), &usecase.CreateOrderReq{
		UserID:     UserIDFromCtx(r.Context()),
		Items:      items,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newOrderResponse(order))
}

// list
//
//	@Summary	Заказы текущего пользователя
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query		int	false	"Страница"
//	@Param		limit	query		int	false	"Размер страницы"
//	@Success	200		{object}	map[string]interface{}
//	@Router		/orders [get]
func (o *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r, 10, 50)

	res, err := o.orderUsecase.ListUserOrders(r.Context(), &usecase.ListOrdersReq{
		UserID: UserIDFromCtx(r.Context()),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"orders":     newOrderResponses(res.Orders),
		"pagination": newPaginationResponse(res.Pagination),
	})
}

// get
//
//	@Summary		Заказ по ID
//	@Description	Покупатель видит только свои заказы
//	@Tags			orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID заказа"
//	@Success		200	{object}	OrderResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/orders/{id} [get]
func (o *OrderHandler) get(w http.ResponseWriter, r *http.Request) {
	order, err := o.orderUsecase.GetOrder(r.Context(), &usecase.GetOrderReq{
		OrderID: chi.URLParam(r, "id"),
		UserID:  UserIDFromCtx(r.Context()),
		IsAdmin: isAdmin(r.Context()),
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderResponse(order))
}

// adminList
//
//	@Summary	Все заказы
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status	query		string	false	"Фильтр по статусу"
//	@Param		page	query		int		false	"Страница"
//	@Param		limit	query		int		false	"Размер страницы"
//	@Success	200		{object}	map[string]interface{}
//	@Router		/orders/admin/all [get]
func (o *OrderHandler) adminList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r, 20, 100)

	res, err := o.orderUsecase.ListAllOrders(r.Context(), &usecase.AdminListOrdersReq{
		Status: r.URL.Query().Get("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"orders":     newOrderResponses(res.Orders),
		"pagination": newPaginationResponse(res.Pagination),
	})
}

// updateStatus
//
//	@Summary	Смена статуса заказа
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"ID заказа"
//	@Param		body	body		updateOrderStatusRequest	true	"Новый статус"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/orders/{id}/status [patch]
func (o *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.UpdateOrderStatus(r.Context(), &usecase.UpdateOrderStatusReq{
		OrderID: chi.URLParam(r, "id"),
		Status:  req.Status,
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderResponse(order))
}
