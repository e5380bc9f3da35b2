package repository

import (
	"context"
	"errors"

	"github.com/waibhq/waib/internal/models"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type Templates interface {
	// ListByPriceBand returns matching templates ordered by ascending price.
	ListByPriceBand(ctx context.Context, band models.PriceBand) ([]models.Template, error)
	// Showcase returns up to limit templates in insertion order (id asc).
	Showcase(ctx context.Context, limit int) ([]models.Template, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, ts []models.Template) error
}

type ContactMessages interface {
	Create(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error)
}
