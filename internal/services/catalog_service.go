package services

import (
	"context"

	"github.com/waibhq/waib/internal/models"
	repo "github.com/waibhq/waib/internal/repository"
)

// showcaseSize is the number of templates featured on the home page.
const showcaseSize = 3

type CatalogService struct {
	templates repo.Templates
}

func NewCatalogService(templates repo.Templates) *CatalogService {
	return &CatalogService{templates: templates}
}

// List returns the catalog filtered by price band, cheapest first.
func (s *CatalogService) List(ctx context.Context, band models.PriceBand) ([]models.Template, error) {
	return s.templates.ListByPriceBand(ctx, band)
}

// Showcase returns the home page picks: the first templates ever added, in
// insertion order.
func (s *CatalogService) Showcase(ctx context.Context) ([]models.Template, error) {
	return s.templates.Showcase(ctx, showcaseSize)
}

// Seed inserts the starter catalog when the table is empty. Running it again
// is a no-op.
func (s *CatalogService) Seed(ctx context.Context) error {
	n, err := s.templates.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return s.templates.CreateBatch(ctx, seedTemplates())
}
