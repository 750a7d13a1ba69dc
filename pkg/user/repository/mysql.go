package repository

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"shopsquare/pkg/user/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrations exposes the embedded schema for the migrate command.
func Migrations() fs.FS { return migrationsFS }

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) model.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO users (email, name, password_hash, role) VALUES (:email, :name, :password_hash, :role)`, user)
	if err != nil {
		return errors.Wrap(err, "insert user")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "user insert id")
	}
	user.ID = int(id)
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	_, err := r.db.NamedExecContext(ctx,
		`UPDATE users SET email = :email, name = :name, password_hash = :password_hash, role = :role WHERE id = :id`, user)
	return errors.Wrap(err, "update user")
}

func (r *userRepository) Find(ctx context.Context, id int) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user,
		`SELECT id, email, name, password_hash, role FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user,
		`SELECT id, email, name, password_hash, role FROM users WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	err := r.db.SelectContext(ctx, &users,
		`SELECT id, email, name, password_hash, role FROM users ORDER BY id`)
	return users, errors.Wrap(err, "list users")
}

func (r *userRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return errors.Wrap(err, "delete user")
}
