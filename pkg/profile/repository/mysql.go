package repository

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"shopsquare/pkg/profile/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func Migrations() fs.FS { return migrationsFS }

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) model.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO profiles (user_id, name, address, phone, created_at)
		 VALUES (:user_id, :name, :address, :phone, :created_at)`, profile)
	if err != nil {
		return errors.Wrap(err, "insert profile")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "profile insert id")
	}
	profile.ID = int(id)
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	_, err := r.db.NamedExecContext(ctx,
		`UPDATE profiles SET user_id = :user_id, name = :name, address = :address, phone = :phone WHERE id = :id`, profile)
	return errors.Wrap(err, "update profile")
}

func (r *profileRepository) Find(ctx context.Context, id int) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.GetContext(ctx, &profile,
		`SELECT id, user_id, name, address, phone, created_at FROM profiles WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find profile")
	}
	return &profile, nil
}

func (r *profileRepository) FindAll(ctx context.Context) ([]model.Profile, error) {
	profiles := make([]model.Profile, 0)
	err := r.db.SelectContext(ctx, &profiles,
		`SELECT id, user_id, name, address, phone, created_at FROM profiles ORDER BY id`)
	return profiles, errors.Wrap(err, "list profiles")
}

func (r *profileRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	return errors.Wrap(err, "delete profile")
}
