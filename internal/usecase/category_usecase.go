package usecase

import (
	"context"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/schnuffelll/shop-backend/pkg/logger"
)

// CategoryUseCase реализует бизнес-логику категорий каталога.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	logger       logger.Logger
}

func NewCategoryUC(categoryRepo CategoryRepository, productRepo ProductRepository, logger logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// ListCategories возвращает активные категории с количеством товаров.
func (c *CategoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CategoryUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx, true)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// GetCategory возвращает активную категорию по slug вместе с её
// активными товарами.
func (c *CategoryUseCase) GetCategory(ctx context.Context, slug string) (*CategoryDetailRes, error) {
	const op = "CategoryUseCase.GetCategory"

	category, err := c.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !category.IsActive {
		return nil, e.Wrap(op, e.ErrCategoryNotFound)
	}

	products, _, err := c.productRepo.List(ctx, &ListProductsReq{
		CategorySlug: slug,
		Page:         1,
		Limit:        100,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CategoryDetailRes{
		Category: category,
		Products: products,
	}, nil
}

// CreateCategory создаёт категорию.
func (c *CategoryUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error) {
	const op = "CategoryUseCase.CreateCategory"

	if req.Name == "" {
		return nil, e.Wrap(op, e.Validation("name", "Nama kategori wajib diisi"))
	}
	if req.Slug == "" {
		return nil, e.Wrap(op, e.Validation("slug", "Slug wajib diisi"))
	}

	if _, err := c.categoryRepo.GetBySlug(ctx, req.Slug); err == nil {
		return nil, e.Wrap(op, e.ErrSlugTaken)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(req.Name, req.Slug, req.Description, req.Image, req.SortOrder))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// UpdateCategory частично обновляет категорию.
func (c *CategoryUseCase) UpdateCategory(ctx context.Context, req *UpdateCategoryReq) (*domain.Category, error) {
	const op = "CategoryUseCase.UpdateCategory"

	category, err := c.categoryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		if _, err := c.categoryRepo.GetBySlug(ctx, *req.Slug); err == nil {
			return nil, e.Wrap(op, e.ErrSlugTaken)
		}
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Image != nil {
		category.Image = *req.Image
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	updated, err := c.categoryRepo.Update(ctx, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// DeleteCategory удаляет пустую категорию. Категория с товарами не
// удаляется, чтобы не оставлять товары без категории.
func (c *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	const op = "CategoryUseCase.DeleteCategory"

	if _, err := c.categoryRepo.GetByID(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	_, total, err := c.productRepo.AdminList(ctx, &AdminListProductsReq{CategoryID: id, Page: 1, Limit: 1})
	if err != nil {
		return e.Wrap(op, err)
	}
	if total > 0 {
		return e.Wrap(op, e.ErrCategoryNotEmpty)
	}

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
