package usecase

import (
	"context"
	"strings"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"
	"motofix/pkg"
)

// ICatalogUseCase reads the static service catalog. No lifecycle state lives
// here.

type ICatalogUseCase interface {
	ListCategories(ctx context.Context) ([]entities.ServiceCategory, error)
	GetBySlug(ctx context.Context, slug string) (entities.ServiceCategory, error)
	ListQuestions(ctx context.Context, slug string) ([]entities.DiagnosticQuestion, error)
}

type CatalogUseCase struct {
	catalog interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]entities.ServiceCategory, error) {
	return u.catalog.List(ctx)
}

func (u *CatalogUseCase) GetBySlug(ctx context.Context, slug string) (entities.ServiceCategory, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.ServiceCategory{}, pkg.NewValidationError("INVALID_CATEGORY_SLUG", "category slug is required")
	}
	c, err := u.catalog.GetBySlug(ctx, slug)
	if err != nil {
		return entities.ServiceCategory{}, err
	}
	if c.ID == "" {
		return entities.ServiceCategory{}, pkg.NewNotFoundError("category", slug)
	}
	return c, nil
}

func (u *CatalogUseCase) ListQuestions(ctx context.Context, slug string) ([]entities.DiagnosticQuestion, error) {
	c, err := u.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return c.Questions, nil
}
