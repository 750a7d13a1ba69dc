package model

import (
	"context"
	"errors"
	"time"
)

var ErrShopNotFound = errors.New("shop not found")

type Shop struct {
	ID          int       `db:"id" json:"id"`
	OwnerID     int       `db:"owner_id" json:"ownerId"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Location    string    `db:"location" json:"location"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type ShopRepository interface {
	Create(ctx context.Context, shop *Shop) error
	Update(ctx context.Context, shop *Shop) error
	Find(ctx context.Context, id int) (*Shop, error)
	FindByOwnerID(ctx context.Context, ownerID int) ([]Shop, error)
	FindAll(ctx context.Context) ([]Shop, error)
	Delete(ctx context.Context, id int) error
}
