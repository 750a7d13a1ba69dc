package repository

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"shopsquare/pkg/order/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func Migrations() fs.FS { return migrationsFS }

type orderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) model.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, user_id, shop_id, total_amount, status, shipping_address, payment_method, payment_status, created_at`

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO orders (user_id, shop_id, total_amount, status, shipping_address, payment_method, payment_status, created_at)
		 VALUES (:user_id, :shop_id, :total_amount, :status, :shipping_address, :payment_method, :payment_status, :created_at)`, order)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "order insert id")
	}
	order.ID = int(id)
	return nil
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	_, err := r.db.NamedExecContext(ctx,
		`UPDATE orders SET user_id = :user_id, shop_id = :shop_id, total_amount = :total_amount, status = :status,
		 shipping_address = :shipping_address, payment_method = :payment_method, payment_status = :payment_status
		 WHERE id = :id`, order)
	return errors.Wrap(err, "update order")
}

func (r *orderRepository) Find(ctx context.Context, id int) (*model.Order, error) {
	var order model.Order
	err := r.db.GetContext(ctx, &order, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find order")
	}
	return &order, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID int) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	err := r.db.SelectContext(ctx, &orders,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = ? ORDER BY id`, userID)
	return orders, errors.Wrap(err, "list orders by user")
}

func (r *orderRepository) FindByShopID(ctx context.Context, shopID int) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	err := r.db.SelectContext(ctx, &orders,
		`SELECT `+orderColumns+` FROM orders WHERE shop_id = ? ORDER BY id`, shopID)
	return orders, errors.Wrap(err, "list orders by shop")
}

func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	err := r.db.SelectContext(ctx, &orders, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
	return orders, errors.Wrap(err, "list orders")
}

func (r *orderRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete order")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete order affected rows")
	}
	if affected == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}
