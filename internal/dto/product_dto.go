package dto

import (
	"time"

	"gromeuse/internal/entity"
)

type DimensionsPayload struct {
	Length float64 `json:"length" validate:"gt=0"`
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

type CreateProductRequest struct {
	Title          string             `json:"title" validate:"required,min=1,max=200"`
	Description    string             `json:"description" validate:"required,min=10"`
	Images         []string           `json:"images" validate:"required,min=1,dive,url"`
	Price          float64            `json:"price" validate:"required,gt=0"`
	ComparePrice   *float64           `json:"comparePrice" validate:"omitempty,gt=0"`
	CostPrice      *float64           `json:"costPrice" validate:"omitempty,gt=0"`
	SKU            *string            `json:"sku"`
	Barcode        *string            `json:"barcode"`
	Stock          int                `json:"stock" validate:"omitempty,min=0"`
	Weight         *float64           `json:"weight" validate:"omitempty,gt=0"`
	Dimensions     *DimensionsPayload `json:"dimensions"`
	Tags           []string           `json:"tags"`
	SeoTitle       *string            `json:"seoTitle" validate:"omitempty,max=60"`
	SeoDescription *string            `json:"seoDescription" validate:"omitempty,max=160"`
	CategoryID     *string            `json:"categoryId" validate:"omitempty,uuid"`
	BrandID        *string            `json:"brandId" validate:"omitempty,uuid"`
}

type UpdateProductRequest struct {
	Title        *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string  `json:"description" validate:"omitempty,min=10"`
	Images       []string `json:"images" validate:"omitempty,min=1,dive,url"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	ComparePrice *float64 `json:"comparePrice" validate:"omitempty,gt=0"`
	Stock        *int     `json:"stock" validate:"omitempty,min=0"`
	Tags         []string `json:"tags"`
	CategoryID   *string  `json:"categoryId" validate:"omitempty,uuid"`
	BrandID      *string  `json:"brandId" validate:"omitempty,uuid"`
}

type ProductResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Images       []string  `json:"images"`
	Price        float64   `json:"price"`
	ComparePrice *float64  `json:"comparePrice,omitempty"`
	Stock        int       `json:"stock"`
	Tags         []string  `json:"tags,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Brand        *string   `json:"brand,omitempty"`
	SellerID     string    `json:"sellerId"`
	CreatedAt    time.Time `json:"created_at"`
}

func ProductResponseFromEntity(product *entity.Product) ProductResponse {
	response := ProductResponse{
		ID:           product.ID.String(),
		Title:        product.Title,
		Slug:         product.Slug,
		Description:  product.Description,
		Images:       product.Images,
		Price:        product.Price,
		ComparePrice: product.ComparePrice,
		Stock:        product.Stock,
		Tags:         product.Tags,
		SellerID:     product.SellerID.String(),
		CreatedAt:    product.CreatedAt,
	}
	if product.Category != nil {
		response.Category = &product.Category.Slug
	}
	if product.Brand != nil {
		response.Brand = &product.Brand.Slug
	}
	return response
}

func ProductResponsesFromEntities(products []entity.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ProductResponseFromEntity(&products[i]))
	}
	return responses
}

type CreateCategoryRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	ParentID *string `json:"parentId" validate:"omitempty,uuid"`
	Image    *string `json:"image" validate:"omitempty,url"`
}

type CategoryResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parentId,omitempty"`
	Image    *string `json:"image,omitempty"`
}

func CategoryResponseFromEntity(category *entity.Category) CategoryResponse {
	response := CategoryResponse{
		ID:    category.ID.String(),
		Name:  category.Name,
		Slug:  category.Slug,
		Image: category.Image,
	}
	if category.ParentID != nil {
		parent := category.ParentID.String()
		response.ParentID = &parent
	}
	return response
}

type CreateBrandRequest struct {
	Name string  `json:"name" validate:"required,min=1,max=100"`
	Logo *string `json:"logo" validate:"omitempty,url"`
}

type BrandResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Slug string  `json:"slug"`
	Logo *string `json:"logo,omitempty"`
}

func BrandResponseFromEntity(brand *entity.Brand) BrandResponse {
	return BrandResponse{
		ID:   brand.ID.String(),
		Name: brand.Name,
		Slug: brand.Slug,
		Logo: brand.Logo,
	}
}
