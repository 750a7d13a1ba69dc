package model

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Stock       *int    `db:"stock" json:"stock"`
	ImageURL    string  `db:"image_url" json:"imageUrl"`
	ShopID      int     `db:"shop_id" json:"shopId"`
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Find(ctx context.Context, id int) (*Product, error)
	FindByShopID(ctx context.Context, shopID int) ([]Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Delete(ctx context.Context, id int) error
}
