package handler

import (
	"errors"
	"net/http"

	"gromeuse/api/middleware"
	"gromeuse/internal/dto"
	"gromeuse/internal/entity"
	"gromeuse/internal/repository"
	"gromeuse/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Service  *service.ProductService
	Users    *service.UserService
	Validate *validator.Validate
}

func NewProductHandler(svc *service.ProductService, users *service.UserService, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{Service: svc, Users: users, Validate: validate}
}

func (h *ProductHandler) List(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	filter := repository.ProductFilter{
		CategorySlug: c.QueryParam("category"),
		BrandSlug:    c.QueryParam("brand"),
		Query:        c.QueryParam("q"),
		Limit:        limit,
		Offset:       offset,
	}
	products, err := h.Service.List(c.Request().Context(), filter)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ProductResponsesFromEntities(products))
}

func (h *ProductHandler) GetBySlug(c echo.Context) error {
	product, err := h.Service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ProductResponseFromEntity(product))
}

func (h *ProductHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.CreateProductRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	input := service.CreateProductInput{
		Title:          req.Title,
		Description:    req.Description,
		Images:         req.Images,
		Price:          req.Price,
		ComparePrice:   req.ComparePrice,
		CostPrice:      req.CostPrice,
		SKU:            req.SKU,
		Barcode:        req.Barcode,
		Stock:          req.Stock,
		Weight:         req.Weight,
		Tags:           req.Tags,
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
	}
	if req.Dimensions != nil {
		input.Dimensions = &entity.Dimensions{
			Length: req.Dimensions.Length,
			Width:  req.Dimensions.Width,
			Height: req.Dimensions.Height,
		}
	}
	var err error
	if input.CategoryID, err = parseOptionalID(req.CategoryID); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if input.BrandID, err = parseOptionalID(req.BrandID); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	product, err := h.Service.Create(c.Request().Context(), userID, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.ProductResponseFromEntity(product))
}

func (h *ProductHandler) Update(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.UpdateProductRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	input := service.UpdateProductInput{
		Title:        req.Title,
		Description:  req.Description,
		Images:       req.Images,
		Price:        req.Price,
		ComparePrice: req.ComparePrice,
		Stock:        req.Stock,
		Tags:         req.Tags,
	}
	if input.CategoryID, err = parseOptionalID(req.CategoryID); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if input.BrandID, err = parseOptionalID(req.BrandID); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	product, err := h.Service.Update(c.Request().Context(), actor, c.Param("slug"), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ProductResponseFromEntity(product))
}

func (h *ProductHandler) Delete(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	if err := h.Service.Delete(c.Request().Context(), actor, c.Param("slug")); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// actor resolves the authenticated account; ownership checks need the
// stored roles, not just the token claims.
func (h *ProductHandler) actor(c echo.Context) (*entity.User, error) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return nil, errors.New("unauthorized")
	}
	user, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return nil, errors.New("unauthorized")
	}
	return user, nil
}

func parseOptionalID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, errors.New("invalid id")
	}
	return &id, nil
}
