package model

import (
	"context"
	"errors"
)

var ErrOrderItemNotFound = errors.New("order item not found")

// OrderItem snapshots the product price at purchase time. The snapshot is
// never refreshed from the product service afterwards.
type OrderItem struct {
	ID          int     `db:"id" json:"id"`
	OrderID     int     `db:"order_id" json:"orderId"`
	ProductID   int     `db:"product_id" json:"productId"`
	Quantity    int     `db:"quantity" json:"quantity"`
	PriceAtTime float64 `db:"price_at_time" json:"price"`
}

type OrderItemRepository interface {
	Create(ctx context.Context, item *OrderItem) error
	Update(ctx context.Context, item *OrderItem) error
	Find(ctx context.Context, id int) (*OrderItem, error)
	FindByOrderID(ctx context.Context, orderID int) ([]OrderItem, error)
	FindAll(ctx context.Context) ([]OrderItem, error)
	Delete(ctx context.Context, id int) error
}
