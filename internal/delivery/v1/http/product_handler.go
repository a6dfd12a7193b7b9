package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/schnuffelll/shop-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

type variantRequest struct {
	Name         string           `json:"name"`
	Price        decimal.Decimal  `json:"price"`
	ComparePrice *decimal.Decimal `json:"comparePrice"`
	Stock        int              `json:"stock"`
	SKU          string           `json:"sku"`
	SortOrder    int              `json:"sortOrder"`
	IsActive     *bool            `json:"isActive"`
}

type productRequest struct {
	Name        *string          `json:"name"`
	Slug        *string          `json:"slug"`
	Description *string          `json:"description"`
	ShortDesc   *string          `json:"shortDesc"`
	Thumbnail   *string          `json:"thumbnail"`
	CategoryID  *string          `json:"categoryId"`
	Type        *string          `json:"type"`
	IsActive    *bool            `json:"isActive"`
	IsFeatured  *bool            `json:"isFeatured"`
	Images      []string         `json:"images"`
	Variants    []variantRequest `json:"variants"`
}

type variantStockRequest struct {
	Stock int `json:"stock"`
}

func (req *productRequest) variantInputs() []usecase.VariantInput {
	variants := make([]usecase.VariantInput, 0, len(req.Variants))
	for _, v := range req.Variants {
		active := true
		if v.IsActive != nil {
			active = *v.IsActive
		}

		variants = append(variants, usecase.VariantInput{
			Name:         v.Name,
			Price:        v.Price,
			ComparePrice: v.ComparePrice,
			Stock:        v.Stock,
			SKU:          v.SKU,
			SortOrder:    v.SortOrder,
			IsActive:     active,
		})
	}

	return variants
}

// list
//
//	@Summary	Каталог товаров
//	@Tags		products
//	@Produce	json
//	@Param		category	query		string	false	"Slug категории"
//	@Param		featured	query		bool	false	"Только рекомендуемые"
//	@Param		search		query		string	false	"Поиск по названию"
//	@Param		sort		query		string	false	"newest | oldest | name-asc | name-desc"
//	@Param		page		query		int		false	"Страница"
//	@Param		limit		query		int		false	"Размер страницы"
//	@Success	200			{object}	map[string]interface{}
//	@Router		/products [get]
func (p *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r, 12, 50)

	res, err := p.productUsecase.ListProducts(r.Context(), &usecase.ListProductsReq{
		CategorySlug: r.URL.Query().Get("category"),
		FeaturedOnly: r.URL.Query().Get("featured") == "true",
		Search:       r.URL.Query().Get("search"),
		Sort:         r.URL.Query().Get("sort"),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products":   newProductResponses(res.Products),
		"pagination": newPaginationResponse(res.Pagination),
	})
}

// getBySlug
//
//	@Summary	Карточка товара
//	@Tags		products
//	@Produce	json
//	@Param		slug	path		string	true	"Slug товара"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{slug} [get]
func (p *ProductHandler) getBySlug(w http.ResponseWriter, r *http.Request) {
	res, err := p.productUsecase.GetProduct(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"product": newProductResponse(res.Product),
		"related": newProductResponses(res.Related),
	})
}

// adminList
//
//	@Summary	Товары для админ-панели
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		search		query		string	false	"Поиск по названию"
//	@Param		categoryId	query		string	false	"ID категории"
//	@Param		status		query		string	false	"active | inactive"
//	@Param		page		query		int		false	"Страница"
//	@Param		limit		query		int		false	"Размер страницы"
//	@Success	200			{object}	map[string]interface{}
//	@Router		/products/admin/all [get]
func (p *ProductHandler) adminList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r, 20, 100)

	res, err := p.productUsecase.AdminListProducts(r.Context(), &usecase.AdminListProductsReq{
		Search:     r.URL.Query().Get("search"),
		CategoryID: r.URL.Query().Get("categoryId"),
		Status:     r.URL.Query().Get("status"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products":   newProductResponses(res.Products),
		"pagination": newPaginationResponse(res.Pagination),
	})
}

// adminGet
//
//	@Summary	Товар по ID
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/admin/{id} [get]
func (p *ProductHandler) adminGet(w http.ResponseWriter, r *http.Request) {
	product, err := p.productUsecase.AdminGetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// create
//
//	@Summary	Создание товара
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		productRequest	true	"Товар с вариантами"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/products [post]
func (p *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	createReq := &usecase.CreateProductReq{
		Images:   req.Images,
		Variants: req.variantInputs(),
		IsActive: true,
	}
	if req.Name != nil {
		createReq.Name = *req.Name
	}
	if req.Slug != nil {
		createReq.Slug = *req.Slug
	}
	if req.Description != nil {
		createReq.Description = *req.Description
	}
	if req.ShortDesc != nil {
		createReq.ShortDesc = *req.ShortDesc
	}
	if req.Thumbnail != nil {
		createReq.Thumbnail = *req.Thumbnail
	}
	if req.CategoryID != nil {
		createReq.CategoryID = *req.CategoryID
	}
	if req.Type != nil {
		createReq.Type = *req.Type
	}
	if req.IsActive != nil {
		createReq.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		createReq.IsFeatured = *req.IsFeatured
	}

	product, err := p.productUsecase.CreateProduct(r.Context(), createReq)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProductResponse(product))
}

// update
//
//	@Summary	Обновление товара
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string			true	"ID товара"
//	@Param		body	body		productRequest	true	"Изменяемые поля"
//	@Success	200		{object}	ProductResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (p *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.UpdateProduct(r.Context(), &usecase.UpdateProductReq{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ShortDesc:   req.ShortDesc,
		Thumbnail:   req.Thumbnail,
		CategoryID:  req.CategoryID,
		Type:        req.Type,
		IsActive:    req.IsActive,
		IsFeatured:  req.IsFeatured,
		Images:      req.Images,
		Variants:    req.variantInputs(),
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// updateVariantStock
//
//	@Summary	Изменение остатка варианта
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		variantId	path		string				true	"ID варианта"
//	@Param		body		body		variantStockRequest	true	"Новый остаток"
//	@Success	200			{object}	VariantResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/products/variant/{variantId}/stock [patch]
func (p *ProductHandler) updateVariantStock(w http.ResponseWriter, r *http.Request) {
	var req variantStockRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	variant, err := p.productUsecase.UpdateVariantStock(r.Context(), &usecase.UpdateVariantStockReq{
		VariantID: chi.URLParam(r, "variantId"),
		Stock:     req.Stock,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newVariantResponse(variant))
}

// toggle
//
//	@Summary	Переключение видимости товара
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id}/toggle [patch]
func (p *ProductHandler) toggle(w http.ResponseWriter, r *http.Request) {
	product, err := p.productUsecase.ToggleProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// delete
//
//	@Summary	Удаление товара
//	@Description	Товар с заказами деактивируется вместо удаления
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	deactivated, err := p.productUsecase.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	message := "Produk berhasil dihapus"
	if deactivated {
		message = "Produk dinonaktifkan karena sudah memiliki pesanan"
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message":     message,
		"deactivated": deactivated,
	})
}
