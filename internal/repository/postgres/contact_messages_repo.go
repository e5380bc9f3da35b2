package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/waibhq/waib/internal/models"
	"github.com/waibhq/waib/internal/repository"
)

type contactMessagesRepo struct{ pool *pgxpool.Pool }

func NewContactMessages(pool *pgxpool.Pool) repository.ContactMessages {
	return &contactMessagesRepo{pool: pool}
}

func (r *contactMessagesRepo) Create(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages(name, email, message) VALUES($1,$2,$3) RETURNING id, created_at`,
		m.Name, m.Email, m.Message,
	).Scan(&m.ID, &m.CreatedAt)
	return m, err
}
