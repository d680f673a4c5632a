package service

import (
	"context"
	"strings"

	"gromeuse/internal/entity"
	"gromeuse/internal/repository"
	"gromeuse/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	brands     repository.BrandRepository
}

func NewProductService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		brands:     brands,
	}
}

type CreateProductInput struct {
	Title          string
	Description    string
	Images         []string
	Price          float64
	ComparePrice   *float64
	CostPrice      *float64
	SKU            *string
	Barcode        *string
	Stock          int
	Weight         *float64
	Dimensions     *entity.Dimensions
	Tags           []string
	SeoTitle       *string
	SeoDescription *string
	CategoryID     *uuid.UUID
	BrandID        *uuid.UUID
}

type UpdateProductInput struct {
	Title        *string
	Description  *string
	Images       []string
	Price        *float64
	ComparePrice *float64
	Stock        *int
	Tags         []string
	CategoryID   *uuid.UUID
	BrandID      *uuid.UUID
}

func (s *ProductService) Create(ctx context.Context, sellerID uuid.UUID, input CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Title) == "" || input.Price <= 0 {
		return nil, ErrInvalidInput
	}
	if err := s.checkRefs(ctx, input.CategoryID, input.BrandID); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, input.Title)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Title:          strings.TrimSpace(input.Title),
		Slug:           slug,
		Description:    input.Description,
		Images:         datatypes.NewJSONSlice(input.Images),
		Price:          input.Price,
		ComparePrice:   input.ComparePrice,
		CostPrice:      input.CostPrice,
		SKU:            input.SKU,
		Barcode:        input.Barcode,
		Stock:          input.Stock,
		Weight:         input.Weight,
		Tags:           datatypes.NewJSONSlice(input.Tags),
		SeoTitle:       input.SeoTitle,
		SeoDescription: input.SeoDescription,
		CategoryID:     input.CategoryID,
		BrandID:        input.BrandID,
		SellerID:       sellerID,
	}
	if input.Dimensions != nil {
		dims := datatypes.NewJSONType(*input.Dimensions)
		product.Dimensions = &dims
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	return s.products.List(ctx, filter)
}

func (s *ProductService) Update(ctx context.Context, actor *entity.User, slug string, input UpdateProductInput) (*entity.Product, error) {
	product, err := s.ownedProduct(ctx, actor, slug)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, input.CategoryID, input.BrandID); err != nil {
		return nil, err
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) != "" {
		product.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Images != nil {
		product.Images = datatypes.NewJSONSlice(input.Images)
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, ErrInvalidInput
		}
		product.Price = *input.Price
	}
	if input.ComparePrice != nil {
		product.ComparePrice = input.ComparePrice
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, ErrInvalidInput
		}
		product.Stock = *input.Stock
	}
	if input.Tags != nil {
		product.Tags = datatypes.NewJSONSlice(input.Tags)
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.BrandID != nil {
		product.BrandID = input.BrandID
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, actor *entity.User, slug string) error {
	product, err := s.ownedProduct(ctx, actor, slug)
	if err != nil {
		return err
	}
	return s.products.Delete(ctx, product.ID)
}

// ownedProduct loads the product and enforces that only the owning seller
// or an admin may mutate it.
func (s *ProductService) ownedProduct(ctx context.Context, actor *entity.User, slug string) (*entity.Product, error) {
	product, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if product.SellerID != actor.ID && !actor.HasRole(entity.RoleAdmin) {
		return nil, ErrForbidden
	}
	return product, nil
}

func (s *ProductService) checkRefs(ctx context.Context, categoryID, brandID *uuid.UUID) error {
	if categoryID != nil {
		category, err := s.categories.FindByID(ctx, *categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrNotFound
		}
	}
	if brandID != nil {
		brand, err := s.brands.FindByID(ctx, *brandID)
		if err != nil {
			return err
		}
		if brand == nil {
			return ErrNotFound
		}
	}
	return nil
}

func (s *ProductService) uniqueSlug(ctx context.Context, title string) (string, error) {
	slug := utils.Slugify(title)
	if slug == "" {
		return "", ErrInvalidInput
	}
	exists, err := s.products.SlugExists(ctx, slug)
	if err != nil {
		return "", err
	}
	if !exists {
		return slug, nil
	}
	suffix, err := utils.SlugSuffix()
	if err != nil {
		return "", err
	}
	return slug + "-" + suffix, nil
}
