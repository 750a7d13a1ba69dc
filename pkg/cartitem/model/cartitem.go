package model

import (
	"context"
	"errors"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartItem struct {
	ID        int `db:"id" json:"id"`
	CartID    int `db:"cart_id" json:"cartId"`
	ProductID int `db:"product_id" json:"productId"`
	Quantity  int `db:"quantity" json:"quantity"`
}

type CartItemRepository interface {
	Create(ctx context.Context, item *CartItem) error
	Update(ctx context.Context, item *CartItem) error
	Find(ctx context.Context, id int) (*CartItem, error)
	FindByCartID(ctx context.Context, cartID int) ([]CartItem, error)
	FindAll(ctx context.Context) ([]CartItem, error)
	// Delete reports ErrCartItemNotFound when no row matched.
	Delete(ctx context.Context, id int) error
}
