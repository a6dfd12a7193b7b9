package usecase

import (
	"context"
	"fmt"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/schnuffelll/shop-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// ProductUseCase реализует бизнес-логику каталога товаров.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	cacheRepo    CacheRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// ListProducts возвращает страницу активных товаров каталога.
func (p *ProductUseCase) ListProducts(ctx context.Context, req *ListProductsReq) (*ProductsRes, error) {
	const op = "ProductUseCase.ListProducts"

	products, total, err := p.productRepo.List(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ProductsRes{
		Products:   products,
		Pagination: NewPagination(req.Page, req.Limit, total),
	}, nil
}

// GetProduct возвращает активный товар по slug вместе со связанными
// товарами той же категории. Карточка товара кэшируется.
func (p *ProductUseCase) GetProduct(ctx context.Context, slug string) (*ProductDetailRes, error) {
	const op = "ProductUseCase.GetProduct"

	product, err := p.cacheRepo.GetProduct(ctx, slug)
	if err != nil {
		p.logger.Warnf("Product cache lookup failed: %v", e.Wrap(op, err))
	}

	if product == nil {
		product, err = p.productRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление карточки в кэш
		go func(pr *domain.Product) {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := p.cacheRepo.SetProduct(bgCtx, pr); err != nil {
				p.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
			}
		}(product)
	}

	if !product.IsActive {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	related, err := p.productRepo.GetRelated(ctx, product.CategoryID, product.ID, 4)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ProductDetailRes{
		Product: product,
		Related: related,
	}, nil
}

// AdminListProducts возвращает страницу товаров для админ-панели,
// включая неактивные.
func (p *ProductUseCase) AdminListProducts(ctx context.Context, req *AdminListProductsReq) (*ProductsRes, error) {
	const op = "ProductUseCase.AdminListProducts"

	products, total, err := p.productRepo.AdminList(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ProductsRes{
		Products:   products,
		Pagination: NewPagination(req.Page, req.Limit, total),
	}, nil
}

// AdminGetProduct возвращает товар по id со всеми вариантами.
func (p *ProductUseCase) AdminGetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "ProductUseCase.AdminGetProduct"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// CreateProduct создаёт товар вместе с вариантами и изображениями в одной
// транзакции.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.CreateProduct"

	var err error
	if err = validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = p.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return nil, e.Wrap(op, err)
	}

	taken, err := p.productRepo.SlugExists(ctx, req.Slug, "")
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if taken {
		return nil, e.Wrap(op, e.ErrSlugTaken)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product := &domain.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ShortDesc:   req.ShortDesc,
		Thumbnail:   req.Thumbnail,
		Type:        domain.ProductType(req.Type),
		IsActive:    req.IsActive,
		IsFeatured:  req.IsFeatured,
		Variants:    variantsFromInput(req.Variants),
	}
	for _, url := range req.Images {
		product.Images = append(product.Images, domain.ProductImage{URL: url})
	}

	created, err := p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// UpdateProduct частично обновляет товар; переданные варианты и
// изображения полностью заменяют существующие. Всё в одной транзакции.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.UpdateProduct"

	product, err := p.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Slug != nil && *req.Slug != product.Slug {
		taken, err := p.productRepo.SlugExists(ctx, *req.Slug, product.ID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		if taken {
			return nil, e.Wrap(op, e.ErrSlugTaken)
		}
	}

	oldSlug := product.Slug
	applyProductPatch(product, req)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = p.productRepo.Update(ctx, product); err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(req.Variants) > 0 {
		if err = p.productRepo.ReplaceVariants(ctx, product.ID, variantsFromInput(req.Variants)); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	if req.Images != nil {
		if err = p.productRepo.ReplaceImages(ctx, product.ID, req.Images); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidate(ctx, op, oldSlug, product.Slug)

	updated, err := p.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// UpdateVariantStock выставляет остаток варианта напрямую (админ).
func (p *ProductUseCase) UpdateVariantStock(ctx context.Context, req *UpdateVariantStockReq) (*domain.Variant, error) {
	const op = "ProductUseCase.UpdateVariantStock"

	if req.Stock < 0 {
		return nil, e.Wrap(op, e.ErrInvalidStock)
	}

	variant, err := p.productRepo.UpdateVariantStock(ctx, req.VariantID, req.Stock)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := p.productRepo.GetByID(ctx, variant.ProductID)
	if err == nil {
		p.invalidate(ctx, op, product.Slug)
	}

	return variant, nil
}

// ToggleProduct переключает видимость товара в каталоге.
func (p *ProductUseCase) ToggleProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "ProductUseCase.ToggleProduct"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := p.productRepo.SetActive(ctx, id, !product.IsActive); err != nil {
		return nil, e.Wrap(op, err)
	}
	product.IsActive = !product.IsActive

	p.invalidate(ctx, op, product.Slug)

	return product, nil
}

// DeleteProduct удаляет товар. Товар с заказами не удаляется, а
// деактивируется, чтобы не трогать снапшоты позиций заказов.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id string) (bool, error) {
	const op = "ProductUseCase.DeleteProduct"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return false, e.Wrap(op, err)
	}

	ordered, err := p.productRepo.CountOrderItems(ctx, id)
	if err != nil {
		return false, e.Wrap(op, err)
	}

	if ordered > 0 {
		if err := p.productRepo.SetActive(ctx, id, false); err != nil {
			return false, e.Wrap(op, err)
		}
		p.invalidate(ctx, op, product.Slug)
		return true, nil
	}

	if err := p.productRepo.Delete(ctx, id); err != nil {
		return false, e.Wrap(op, err)
	}
	p.invalidate(ctx, op, product.Slug)

	return false, nil
}

func (p *ProductUseCase) invalidate(ctx context.Context, op string, slugs ...string) {
	if err := p.cacheRepo.DeleteProducts(ctx, slugs); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}
}

func variantsFromInput(inputs []VariantInput) []domain.Variant {
	variants := make([]domain.Variant, 0, len(inputs))
	for i, in := range inputs {
		sortOrder := in.SortOrder
		if sortOrder == 0 {
			sortOrder = i
		}

		variants = append(variants, domain.Variant{
			Name:         in.Name,
			Price:        in.Price,
			ComparePrice: in.ComparePrice,
			Stock:        in.Stock,
			SKU:          in.SKU,
			SortOrder:    sortOrder,
			IsActive:     in.IsActive,
		})
	}

	return variants
}

func applyProductPatch(product *domain.Product, req *UpdateProductReq) {
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ShortDesc != nil {
		product.ShortDesc = *req.ShortDesc
	}
	if req.Thumbnail != nil {
		product.Thumbnail = *req.Thumbnail
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Type != nil {
		product.Type = domain.ProductType(*req.Type)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
}

// validateProduct проверяет запрос на создание товара. Клиенту уходит
// сообщение первого непрошедшего поля.
func validateProduct(req *CreateProductReq) error {
	if req.Name == "" {
		return e.Validation("name", "Nama produk wajib diisi")
	}
	if req.Slug == "" {
		return e.Validation("slug", "Slug wajib diisi")
	}
	if req.Description == "" {
		return e.Validation("description", "Deskripsi wajib diisi")
	}
	if req.CategoryID == "" {
		return e.Validation("categoryId", "Category ID tidak valid")
	}
	if req.Type != "" && req.Type != string(domain.ProductAutomated) && req.Type != string(domain.ProductManual) {
		return e.Validation("type", "Tipe produk tidak valid")
	}
	if len(req.Variants) == 0 {
		return e.Validation("variants", "Minimal 1 varian diperlukan")
	}

	for i, v := range req.Variants {
		if v.Name == "" {
			return e.Validation(fmt.Sprintf("variants[%d].name", i), "Nama varian wajib diisi")
		}
		if !v.Price.GreaterThan(decimal.Zero) {
			return e.Validation(fmt.Sprintf("variants[%d].price", i), "Harga harus lebih dari 0")
		}
		if v.Stock < 0 {
			return e.Validation(fmt.Sprintf("variants[%d].stock", i), "Stok harus berupa angka positif")
		}
	}

	return nil
}
