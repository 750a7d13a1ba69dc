package repository

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"shopsquare/pkg/cart/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func Migrations() fs.FS { return migrationsFS }

type cartRepository struct {
	db *sqlx.DB
}

func NewCartRepository(db *sqlx.DB) model.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, cart *model.Cart) error {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO carts (user_id, shop_id, updated_at) VALUES (:user_id, :shop_id, :updated_at)`, cart)
	if err != nil {
		return errors.Wrap(err, "insert cart")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "cart insert id")
	}
	cart.ID = int(id)
	return nil
}

func (r *cartRepository) Update(ctx context.Context, cart *model.Cart) error {
	_, err := r.db.NamedExecContext(ctx,
		`UPDATE carts SET user_id = :user_id, shop_id = :shop_id, updated_at = :updated_at WHERE id = :id`, cart)
	return errors.Wrap(err, "update cart")
}

func (r *cartRepository) Find(ctx context.Context, id int) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.GetContext(ctx, &cart,
		`SELECT id, user_id, shop_id, updated_at FROM carts WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrCartNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find cart")
	}
	return &cart, nil
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID int) ([]model.Cart, error) {
	carts := make([]model.Cart, 0)
	err := r.db.SelectContext(ctx, &carts,
		`SELECT id, user_id, shop_id, updated_at FROM carts WHERE user_id = ? ORDER BY id`, userID)
	return carts, errors.Wrap(err, "list carts by user")
}

func (r *cartRepository) FindAll(ctx context.Context) ([]model.Cart, error) {
	carts := make([]model.Cart, 0)
	err := r.db.SelectContext(ctx, &carts,
		`SELECT id, user_id, shop_id, updated_at FROM carts ORDER BY id`)
	return carts, errors.Wrap(err, "list carts")
}

func (r *cartRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete cart")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete cart affected rows")
	}
	if affected == 0 {
		return model.ErrCartNotFound
	}
	return nil
}
