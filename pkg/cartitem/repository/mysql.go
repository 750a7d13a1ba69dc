package repository

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"shopsquare/pkg/cartitem/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func Migrations() fs.FS { return migrationsFS }

type cartItemRepository struct {
	db *sqlx.DB
}

func NewCartItemRepository(db *sqlx.DB) model.CartItemRepository {
	return &cartItemRepository{db: db}
}

func (r *cartItemRepository) Create(ctx context.Context, item *model.CartItem) error {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO cart_items (cart_id, product_id, quantity) VALUES (:cart_id, :product_id, :quantity)`, item)
	if err != nil {
		return errors.Wrap(err, "insert cart item")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "cart item insert id")
	}
	item.ID = int(id)
	return nil
}

func (r *cartItemRepository) Update(ctx context.Context, item *model.CartItem) error {
	_, err := r.db.NamedExecContext(ctx,
		`UPDATE cart_items SET cart_id = :cart_id, product_id = :product_id, quantity = :quantity WHERE id = :id`, item)
	return errors.Wrap(err, "update cart item")
}

func (r *cartItemRepository) Find(ctx context.Context, id int) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.GetContext(ctx, &item,
		`SELECT id, cart_id, product_id, quantity FROM cart_items WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrCartItemNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find cart item")
	}
	return &item, nil
}

func (r *cartItemRepository) FindByCartID(ctx context.Context, cartID int) ([]model.CartItem, error) {
	items := make([]model.CartItem, 0)
	err := r.db.SelectContext(ctx, &items,
		`SELECT id, cart_id, product_id, quantity FROM cart_items WHERE cart_id = ? ORDER BY id`, cartID)
	return items, errors.Wrap(err, "list cart items by cart")
}

func (r *cartItemRepository) FindAll(ctx context.Context) ([]model.CartItem, error) {
	items := make([]model.CartItem, 0)
	err := r.db.SelectContext(ctx, &items,
		`SELECT id, cart_id, product_id, quantity FROM cart_items ORDER BY id`)
	return items, errors.Wrap(err, "list cart items")
}

func (r *cartItemRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete cart item")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete cart item affected rows")
	}
	if affected == 0 {
		return model.ErrCartItemNotFound
	}
	return nil
}
