package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/waibhq/waib/internal/models"
	"github.com/waibhq/waib/internal/repository"
)

type usersRepo struct{ pool *pgxpool.Pool }

func NewUsers(pool *pgxpool.Pool) repository.Users {
	return &usersRepo{pool: pool}
}

func (r *usersRepo) Create(ctx context.Context, username, email, hash string) (models.User, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users(id, username, email, password_hash) VALUES($1,$2,$3,$4)`,
		id, username, email, hash,
	)
	if err != nil {
		return models.User{}, err
	}
	return r.getByID(ctx, id)
}

func (r *usersRepo) getByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE username=$1`, username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *usersRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username=$1 OR email=$2)`, username, email,
	).Scan(&exists)
	return exists, err
}
