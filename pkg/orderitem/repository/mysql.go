package repository

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"shopsquare/pkg/orderitem/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func Migrations() fs.FS { return migrationsFS }

type orderItemRepository struct {
	db *sqlx.DB
}

func NewOrderItemRepository(db *sqlx.DB) model.OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) Create(ctx context.Context, item *model.OrderItem) error {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO order_items (order_id, product_id, quantity, price_at_time)
		 VALUES (:order_id, :product_id, :quantity, :price_at_time)`, item)
	if err != nil {
		return errors.Wrap(err, "insert order item")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "order item insert id")
	}
	item.ID = int(id)
	return nil
}

func (r *orderItemRepository) Update(ctx context.Context, item *model.OrderItem) error {
	_, err := r.db.NamedExecContext(ctx,
		`UPDATE order_items SET order_id = :order_id, product_id = :product_id,
		 quantity = :quantity, price_at_time = :price_at_time WHERE id = :id`, item)
	return errors.Wrap(err, "update order item")
}

func (r *orderItemRepository) Find(ctx context.Context, id int) (*model.OrderItem, error) {
	var item model.OrderItem
	err := r.db.GetContext(ctx, &item,
		`SELECT id, order_id, product_id, quantity, price_at_time FROM order_items WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrOrderItemNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find order item")
	}
	return &item, nil
}

func (r *orderItemRepository) FindByOrderID(ctx context.Context, orderID int) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0)
	err := r.db.SelectContext(ctx, &items,
		`SELECT id, order_id, product_id, quantity, price_at_time FROM order_items WHERE order_id = ? ORDER BY id`, orderID)
	return items, errors.Wrap(err, "list order items by order")
}

func (r *orderItemRepository) FindAll(ctx context.Context) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0)
	err := r.db.SelectContext(ctx, &items,
		`SELECT id, order_id, product_id, quantity, price_at_time FROM order_items ORDER BY id`)
	return items, errors.Wrap(err, "list order items")
}

func (r *orderItemRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM order_items WHERE id = ?`, id)
	return errors.Wrap(err, "delete order item")
}
