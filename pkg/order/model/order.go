package model

import (
	"context"
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

type Order struct {
	ID              int       `db:"id" json:"id"`
	UserID          int       `db:"user_id" json:"userId"`
	ShopID          int       `db:"shop_id" json:"shopId"`
	TotalAmount     float64   `db:"total_amount" json:"totalAmount"`
	Status          string    `db:"status" json:"status"`
	ShippingAddress string    `db:"shipping_address" json:"shippingAddress"`
	PaymentMethod   string    `db:"payment_method" json:"paymentMethod"`
	PaymentStatus   string    `db:"payment_status" json:"paymentStatus"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	Find(ctx context.Context, id int) (*Order, error)
	FindByUserID(ctx context.Context, userID int) ([]Order, error)
	FindByShopID(ctx context.Context, shopID int) ([]Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	// Delete reports ErrOrderNotFound when no row matched.
	Delete(ctx context.Context, id int) error
}
