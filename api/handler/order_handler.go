package handler

import (
	"errors"
	"net/http"

	"gromeuse/api/middleware"
	"gromeuse/internal/dto"
	"gromeuse/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	Service  *service.OrderService
	Validate *validator.Validate
}

func NewOrderHandler(svc *service.OrderService, validate *validator.Validate) *OrderHandler {
	return &OrderHandler{Service: svc, Validate: validate}
}

func (h *OrderHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.CreateOrderRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	input := service.CreateOrderInput{
		ShippingAddress: req.ShippingAddress.ToEntity(),
		PaymentMethod:   req.PaymentMethod,
	}
	if req.BillingAddress != nil {
		billing := req.BillingAddress.ToEntity()
		input.BillingAddress = &billing
	}

	order, err := h.Service.CreateFromCart(c.Request().Context(), userID, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.OrderResponseFromEntity(order))
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	limit, offset := parseLimitOffset(c)
	orders, err := h.Service.ListForUser(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.OrderResponsesFromEntities(orders))
}

func (h *OrderHandler) ListAll(c echo.Context) error {
	if _, ok := middleware.UserIDFromContext(c); !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	limit, offset := parseLimitOffset(c)
	orders, err := h.Service.ListAll(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.OrderResponsesFromEntities(orders))
}
