package service

import (
	"context"
	"strings"

	"gromeuse/internal/entity"
	"gromeuse/internal/repository"
	"gromeuse/internal/utils"

	"github.com/google/uuid"
)

// CatalogService manages the category and brand taxonomies.
type CatalogService struct {
	categories repository.CategoryRepository
	brands     repository.BrandRepository
}

func NewCatalogService(categories repository.CategoryRepository, brands repository.BrandRepository) *CatalogService {
	return &CatalogService{categories: categories, brands: brands}
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string, parentID *uuid.UUID, image *string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	if parentID != nil {
		parent, err := s.categories.FindByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrNotFound
		}
	}

	category := &entity.Category{
		Name:     name,
		Slug:     utils.Slugify(name),
		ParentID: parentID,
		Image:    image,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) CreateBrand(ctx context.Context, name string, logo *string) (*entity.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	brand := &entity.Brand{
		Name: name,
		Slug: utils.Slugify(name),
		Logo: logo,
	}
	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]entity.Brand, error) {
	return s.brands.List(ctx)
}
