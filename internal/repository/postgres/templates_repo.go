package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/waibhq/waib/internal/models"
	"github.com/waibhq/waib/internal/repository"
)

type templatesRepo struct{ pool *pgxpool.Pool }

func NewTemplates(pool *pgxpool.Pool) repository.Templates {
	return &templatesRepo{pool: pool}
}

const templateCols = `id, title, price, category, img, features_json`

func (r *templatesRepo) ListByPriceBand(ctx context.Context, band models.PriceBand) ([]models.Template, error) {
	q := `SELECT ` + templateCols + ` FROM templates`
	switch band {
	case models.BandLow:
		q += ` WHERE price <= 60`
	case models.BandMid:
		q += ` WHERE price > 60 AND price <= 100`
	case models.BandHigh:
		q += ` WHERE price > 100`
	}
	q += ` ORDER BY price ASC`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTemplates(rows)
}

func (r *templatesRepo) Showcase(ctx context.Context, limit int) ([]models.Template, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+templateCols+` FROM templates ORDER BY id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTemplates(rows)
}

func (r *templatesRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM templates`).Scan(&n)
	return n, err
}

func (r *templatesRepo) CreateBatch(ctx context.Context, ts []models.Template) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, t := range ts {
		if _, err := tx.Exec(ctx,
			`INSERT INTO templates(title, price, category, img, features_json) VALUES($1,$2,$3,$4,$5)`,
			t.Title, t.Price, t.Category, t.Img, t.FeaturesJSON,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func scanTemplates(rows pgx.Rows) ([]models.Template, error) {
	var out []models.Template
	for rows.Next() {
		var t models.Template
		if err := rows.Scan(&t.ID, &t.Title, &t.Price, &t.Category, &t.Img, &t.FeaturesJSON); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
