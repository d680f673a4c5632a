package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gromeuse/internal/dto"
	"gromeuse/internal/service"

	"github.com/labstack/echo/v4"
)

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"message": err.Error()})
}

func writeValidationError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]any{
		"message": "validation failed",
		"errors":  dto.FieldErrors(err),
	})
}

func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrCartEmpty), errors.Is(err, service.ErrCartLimit):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrAccountExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidToken):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrExpiredToken):
		status = http.StatusGone
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrNotVerified), errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrEmailDelivery):
		status = http.StatusBadGateway
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		// Store failures stay behind a generic message.
		return writeError(c, status, errors.New("internal error"))
	}
	return writeError(c, status, err)
}

func parseLimitOffset(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}
