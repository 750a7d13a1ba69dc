package model

import (
	"context"
	"errors"
	"time"
)

var ErrCartNotFound = errors.New("cart not found")

type Cart struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"userId"`
	ShopID    int       `db:"shop_id" json:"shopId"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type CartRepository interface {
	Create(ctx context.Context, cart *Cart) error
	Update(ctx context.Context, cart *Cart) error
	Find(ctx context.Context, id int) (*Cart, error)
	FindByUserID(ctx context.Context, userID int) ([]Cart, error)
	FindAll(ctx context.Context) ([]Cart, error)
	// Delete reports ErrCartNotFound when no row matched.
	Delete(ctx context.Context, id int) error
}
