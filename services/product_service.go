package services

import (
	"context"
	"math"

	"online-shop/models"
)

// ProductStore is the catalog persistence surface.
type ProductStore interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindPage(ctx context.Context, page, size int) ([]models.Product, int, error)
	FindByID(ctx context.Context, id int) (*models.Product, error)
	FindByCode(ctx context.Context, code string) (*models.Product, error)
	FindByCategory(ctx context.Context, category string) ([]models.Product, error)
	FindByInventoryStatus(ctx context.Context, status models.InventoryStatus) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int) error
}

// ProductService serves the catalog, with a cache-aside entry for the unpaged
// listing. The cache may be nil; everything degrades to plain store reads.
type ProductService struct {
	store ProductStore
	cache ProductCache
}

func NewProductService(store ProductStore, cache ProductCache) *ProductService {
	return &ProductService{store: store, cache: cache}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetList(ctx); ok {
			return products, nil
		}
	}

	products, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetList(ctx, products)
	}
	return products, nil
}

func (s *ProductService) GetProductsPage(ctx context.Context, page, size int) ([]models.Product, models.PaginationMeta, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	products, total, err := s.store.FindPage(ctx, page, size)
	if err != nil {
		return nil, models.PaginationMeta{}, err
	}

	meta := models.PaginationMeta{
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(size))),
	}
	return products, meta, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	return s.store.FindByID(ctx, id)
}

func (s *ProductService) GetProductByCode(ctx context.Context, code string) (*models.Product, error) {
	return s.store.FindByCode(ctx, code)
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.store.FindByCategory(ctx, category)
}

func (s *ProductService) GetProductsByInventoryStatus(ctx context.Context, status models.InventoryStatus) ([]models.Product, error) {
	return s.store.FindByInventoryStatus(ctx, status)
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Code:              req.Code,
		Name:              req.Name,
		Description:       req.Description,
		Image:             req.Image,
		Category:          req.Category,
		Price:             req.Price,
		Quantity:          req.Quantity,
		InternalReference: req.InternalReference,
		ShellID:           req.ShellID,
		InventoryStatus:   models.InventoryStatus(req.InventoryStatus),
		Rating:            req.Rating,
	}

	if err := s.store.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Code = req.Code
	product.Name = req.Name
	product.Description = req.Description
	product.Image = req.Image
	product.Category = req.Category
	product.Price = req.Price
	product.Quantity = req.Quantity
	product.InternalReference = req.InternalReference
	product.ShellID = req.ShellID
	product.InventoryStatus = models.InventoryStatus(req.InventoryStatus)
	product.Rating = req.Rating

	if err := s.store.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if _, err := s.store.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(ctx)
}
