package handler

import (
	"net/http"

	"gromeuse/internal/dto"
	"gromeuse/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	Service  *service.CatalogService
	Validate *validator.Validate
}

func NewCatalogHandler(svc *service.CatalogService, validate *validator.Validate) *CatalogHandler {
	return &CatalogHandler{Service: svc, Validate: validate}
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.Service.ListCategories(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, dto.CategoryResponseFromEntity(&categories[i]))
	}
	return c.JSON(http.StatusOK, responses)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	parentID, err := parseOptionalID(req.ParentID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	category, err := h.Service.CreateCategory(c.Request().Context(), req.Name, parentID, req.Image)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.CategoryResponseFromEntity(category))
}

func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.Service.ListBrands(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	responses := make([]dto.BrandResponse, 0, len(brands))
	for i := range brands {
		responses = append(responses, dto.BrandResponseFromEntity(&brands[i]))
	}
	return c.JSON(http.StatusOK, responses)
}

func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	var req dto.CreateBrandRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	brand, err := h.Service.CreateBrand(c.Request().Context(), req.Name, req.Logo)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.BrandResponseFromEntity(brand))
}
