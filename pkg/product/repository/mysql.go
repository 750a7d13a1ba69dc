package repository

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"shopsquare/pkg/product/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func Migrations() fs.FS { return migrationsFS }

type productRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) model.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO products (name, description, price, stock, image_url, shop_id)
		 VALUES (:name, :description, :price, :stock, :image_url, :shop_id)`, product)
	if err != nil {
		return errors.Wrap(err, "insert product")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "product insert id")
	}
	product.ID = int(id)
	return nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	_, err := r.db.NamedExecContext(ctx,
		`UPDATE products SET name = :name, description = :description, price = :price,
		 stock = :stock, image_url = :image_url, shop_id = :shop_id WHERE id = :id`, product)
	return errors.Wrap(err, "update product")
}

func (r *productRepository) Find(ctx context.Context, id int) (*model.Product, error) {
	var product model.Product
	err := r.db.GetContext(ctx, &product,
		`SELECT id, name, description, price, stock, image_url, shop_id FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}
	return &product, nil
}

func (r *productRepository) FindByShopID(ctx context.Context, shopID int) ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := r.db.SelectContext(ctx, &products,
		`SELECT id, name, description, price, stock, image_url, shop_id FROM products WHERE shop_id = ? ORDER BY id`, shopID)
	return products, errors.Wrap(err, "list products by shop")
}

func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := r.db.SelectContext(ctx, &products,
		`SELECT id, name, description, price, stock, image_url, shop_id FROM products ORDER BY id`)
	return products, errors.Wrap(err, "list products")
}

func (r *productRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return errors.Wrap(err, "delete product")
}
