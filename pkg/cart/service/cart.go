package service

import (
	"context"
	"errors"
	"time"

	"shopsquare/pkg/cart/model"
	"shopsquare/pkg/platform/refcheck"
)

var (
	ErrUserIDRequired = errors.New("user id is required and must be positive")
	ErrShopIDRequired = errors.New("shop id is required and must be positive")
)

// ProxyResponse carries a downstream service's reply verbatim, so the cart
// item endpoints can relay it without translation.
type ProxyResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

// ItemGateway is the cart-item service seen from the cart service.
type ItemGateway interface {
	CreateItem(ctx context.Context, payload map[string]interface{}) (*ProxyResponse, error)
	ItemsByCartID(ctx context.Context, cartID int) (*ProxyResponse, error)
}

type CartService interface {
	CreateCart(ctx context.Context, draft model.Cart) (*model.Cart, error)
	GetCartByID(ctx context.Context, id int) (*model.Cart, error)
	GetCartsByUserID(ctx context.Context, userID int) ([]model.Cart, error)
	GetAllCarts(ctx context.Context) ([]model.Cart, error)
	UpdateCart(ctx context.Context, id int, draft model.Cart) (*model.Cart, error)
	DeleteCart(ctx context.Context, id int) error

	AddItemToCart(ctx context.Context, cartID int, payload map[string]interface{}) (*ProxyResponse, error)
	GetItemsForCart(ctx context.Context, cartID int) (*ProxyResponse, error)
}

func NewCartService(repo model.CartRepository, users refcheck.Checker, items ItemGateway) CartService {
	return &cartService{repo: repo, users: users, items: items}
}

type cartService struct {
	repo  model.CartRepository
	users refcheck.Checker
	items ItemGateway
}

func (s *cartService) CreateCart(ctx context.Context, draft model.Cart) (*model.Cart, error) {
	if draft.UserID <= 0 {
		return nil, ErrUserIDRequired
	}
	if draft.ShopID <= 0 {
		return nil, ErrShopIDRequired
	}

	if err := refcheck.Validate(ctx, s.users, draft.UserID, refcheck.FailFast); err != nil {
		return nil, err
	}

	draft.UpdatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *cartService) GetCartByID(ctx context.Context, id int) (*model.Cart, error) {
	return s.repo.Find(ctx, id)
}

func (s *cartService) GetCartsByUserID(ctx context.Context, userID int) ([]model.Cart, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *cartService) GetAllCarts(ctx context.Context) ([]model.Cart, error) {
	return s.repo.FindAll(ctx)
}

func (s *cartService) UpdateCart(ctx context.Context, id int, draft model.Cart) (*model.Cart, error) {
	if draft.UserID <= 0 {
		return nil, ErrUserIDRequired
	}
	if draft.ShopID <= 0 {
		return nil, ErrShopIDRequired
	}

	cart, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	// The user reference is re-validated only when it actually changes.
	if cart.UserID != draft.UserID {
		if err := refcheck.Validate(ctx, s.users, draft.UserID, refcheck.FailFast); err != nil {
			return nil, err
		}
	}

	cart.UserID = draft.UserID
	cart.ShopID = draft.ShopID
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) DeleteCart(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// AddItemToCart forwards the payload to the cart-item service, injecting the
// cart id only when the caller did not set one.
func (s *cartService) AddItemToCart(ctx context.Context, cartID int, payload map[string]interface{}) (*ProxyResponse, error) {
	forwarded := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		forwarded[k] = v
	}
	if _, ok := forwarded["cartId"]; !ok {
		forwarded["cartId"] = cartID
	}
	return s.items.CreateItem(ctx, forwarded)
}

func (s *cartService) GetItemsForCart(ctx context.Context, cartID int) (*ProxyResponse, error) {
	return s.items.ItemsByCartID(ctx, cartID)
}
