package service

import (
	"context"
	"errors"

	"shopsquare/pkg/cartitem/model"
	"shopsquare/pkg/platform/refcheck"
)

var (
	ErrCartIDRequired    = errors.New("cart id is required and must be positive")
	ErrProductIDRequired = errors.New("product id is required and must be positive")
	ErrQuantityRequired  = errors.New("quantity is required and must be positive")
	ErrInvalidID         = errors.New("cart item id must be positive")
)

type CartItemService interface {
	CreateCartItem(ctx context.Context, draft model.CartItem) (*model.CartItem, error)
	GetCartItemByID(ctx context.Context, id int) (*model.CartItem, error)
	GetCartItemsByCartID(ctx context.Context, cartID int) ([]model.CartItem, error)
	GetAllCartItems(ctx context.Context) ([]model.CartItem, error)
	UpdateCartItem(ctx context.Context, id int, draft model.CartItem) (*model.CartItem, error)
	DeleteCartItem(ctx context.Context, id int) error
}

func NewCartItemService(repo model.CartItemRepository, products refcheck.Checker) CartItemService {
	return &cartItemService{repo: repo, products: products}
}

type cartItemService struct {
	repo     model.CartItemRepository
	products refcheck.Checker
}

func validateFields(item model.CartItem) error {
	if item.ProductID <= 0 {
		return ErrProductIDRequired
	}
	if item.CartID <= 0 {
		return ErrCartIDRequired
	}
	if item.Quantity <= 0 {
		return ErrQuantityRequired
	}
	return nil
}

func (s *cartItemService) CreateCartItem(ctx context.Context, draft model.CartItem) (*model.CartItem, error) {
	if err := validateFields(draft); err != nil {
		return nil, err
	}

	if err := refcheck.Validate(ctx, s.products, draft.ProductID, refcheck.FailFast); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *cartItemService) GetCartItemByID(ctx context.Context, id int) (*model.CartItem, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.repo.Find(ctx, id)
}

func (s *cartItemService) GetCartItemsByCartID(ctx context.Context, cartID int) ([]model.CartItem, error) {
	return s.repo.FindByCartID(ctx, cartID)
}

func (s *cartItemService) GetAllCartItems(ctx context.Context) ([]model.CartItem, error) {
	return s.repo.FindAll(ctx)
}

func (s *cartItemService) UpdateCartItem(ctx context.Context, id int, draft model.CartItem) (*model.CartItem, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if err := validateFields(draft); err != nil {
		return nil, err
	}

	item, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	// The product reference is re-validated only when it actually changes.
	if item.ProductID != draft.ProductID {
		if err := refcheck.Validate(ctx, s.products, draft.ProductID, refcheck.FailFast); err != nil {
			return nil, err
		}
	}

	item.CartID = draft.CartID
	item.ProductID = draft.ProductID
	item.Quantity = draft.Quantity

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *cartItemService) DeleteCartItem(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
