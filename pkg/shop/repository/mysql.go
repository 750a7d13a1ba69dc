package repository

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"shopsquare/pkg/shop/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func Migrations() fs.FS { return migrationsFS }

type shopRepository struct {
	db *sqlx.DB
}

func NewShopRepository(db *sqlx.DB) model.ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Create(ctx context.Context, shop *model.Shop) error {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO shops (owner_id, name, description, location, created_at)
		 VALUES (:owner_id, :name, :description, :location, :created_at)`, shop)
	if err != nil {
		return errors.Wrap(err, "insert shop")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "shop insert id")
	}
	shop.ID = int(id)
	return nil
}

func (r *shopRepository) Update(ctx context.Context, shop *model.Shop) error {
	_, err := r.db.NamedExecContext(ctx,
		`UPDATE shops SET owner_id = :owner_id, name = :name, description = :description, location = :location WHERE id = :id`, shop)
	return errors.Wrap(err, "update shop")
}

func (r *shopRepository) Find(ctx context.Context, id int) (*model.Shop, error) {
	var shop model.Shop
	err := r.db.GetContext(ctx, &shop,
		`SELECT id, owner_id, name, description, location, created_at FROM shops WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find shop")
	}
	return &shop, nil
}

func (r *shopRepository) FindByOwnerID(ctx context.Context, ownerID int) ([]model.Shop, error) {
	shops := make([]model.Shop, 0)
	err := r.db.SelectContext(ctx, &shops,
		`SELECT id, owner_id, name, description, location, created_at FROM shops WHERE owner_id = ? ORDER BY id`, ownerID)
	return shops, errors.Wrap(err, "list shops by owner")
}

func (r *shopRepository) FindAll(ctx context.Context) ([]model.Shop, error) {
	shops := make([]model.Shop, 0)
	err := r.db.SelectContext(ctx, &shops,
		`SELECT id, owner_id, name, description, location, created_at FROM shops ORDER BY id`)
	return shops, errors.Wrap(err, "list shops")
}

func (r *shopRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM shops WHERE id = ?`, id)
	return errors.Wrap(err, "delete shop")
}
