package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/schnuffelll/shop-backend/pkg/logger"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

type categoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	SortOrder   *int    `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

// list
//
//	@Summary	Список категорий
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	CategoryResponse
//	@Router		/categories [get]
func (c *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := c.categoryUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCategoryResponses(categories))
}

// getBySlug
//
//	@Summary	Категория с её товарами
//	@Tags		categories
//	@Produce	json
//	@Param		slug	path		string	true	"Slug категории"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	404		{object}	ErrorResponse
//	@Router		/categories/{slug} [get]
func (c *CategoryHandler) getBySlug(w http.ResponseWriter, r *http.Request) {
	res, err := c.categoryUsecase.GetCategory(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"category": newCategoryResponse(res.Category),
		"products": newProductResponses(res.Products),
	})
}

// create
//
//	@Summary	Создание категории
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		categoryRequest	true	"Категория"
//	@Success	201		{object}	CategoryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/categories [post]
func (c *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	createReq := &usecase.CreateCategoryReq{}
	if req.Name != nil {
		createReq.Name = *req.Name
	}
	if req.Slug != nil {
		createReq.Slug = *req.Slug
	}
	if req.Description != nil {
		createReq.Description = *req.Description
	}
	if req.Image != nil {
		createReq.Image = *req.Image
	}
	if req.SortOrder != nil {
		createReq.SortOrder = *req.SortOrder
	}

	category, err := c.categoryUsecase.CreateCategory(r.Context(), createReq)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newCategoryResponse(category))
}

// update
//
//	@Summary	Обновление категории
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string			true	"ID категории"
//	@Param		body	body		categoryRequest	true	"Изменяемые поля"
//	@Success	200		{object}	CategoryResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/categories/{id} [put]
func (c *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	category, err := c.categoryUsecase.UpdateCategory(r.Context(), &usecase.UpdateCategoryReq{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCategoryResponse(category))
}

// delete
//
//	@Summary	Удаление категории
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID категории"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	400	{object}	ErrorResponse
//	@Router		/categories/{id} [delete]
func (c *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := c.categoryUsecase.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Kategori berhasil dihapus",
	})
}
