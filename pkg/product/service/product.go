package service

import (
	"context"

	"shopsquare/pkg/platform/refcheck"
	"shopsquare/pkg/product/model"
)

type ProductService interface {
	CreateProduct(ctx context.Context, draft model.Product) (*model.Product, error)
	GetProductByID(ctx context.Context, id int) (*model.Product, error)
	GetProductsByShopID(ctx context.Context, shopID int) ([]model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int, draft model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	DecrementStock(ctx context.Context, id, qty int) (*model.Product, error)
}

func NewProductService(repo model.ProductRepository, shops refcheck.Checker) ProductService {
	return &productService{repo: repo, shops: shops}
}

type productService struct {
	repo  model.ProductRepository
	shops refcheck.Checker
}

func (s *productService) CreateProduct(ctx context.Context, draft model.Product) (*model.Product, error) {
	if draft.ShopID > 0 {
		if err := refcheck.Validate(ctx, s.shops, draft.ShopID, refcheck.FailFast); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int) (*model.Product, error) {
	return s.repo.Find(ctx, id)
}

func (s *productService) GetProductsByShopID(ctx context.Context, shopID int) ([]model.Product, error) {
	return s.repo.FindByShopID(ctx, shopID)
}

func (s *productService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *productService) UpdateProduct(ctx context.Context, id int, draft model.Product) (*model.Product, error) {
	product, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = draft.Name
	product.Description = draft.Description
	product.Price = draft.Price
	product.Stock = draft.Stock
	product.ImageURL = draft.ImageURL
	product.ShopID = draft.ShopID

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// DecrementStock lowers the stock by qty, clamping both the quantity and the
// resulting stock at zero. A nil stock counts as zero.
func (s *productService) DecrementStock(ctx context.Context, id, qty int) (*model.Product, error) {
	product, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	current := 0
	if product.Stock != nil {
		current = *product.Stock
	}
	if qty < 0 {
		qty = 0
	}
	next := current - qty
	if next < 0 {
		next = 0
	}
	product.Stock = &next

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
