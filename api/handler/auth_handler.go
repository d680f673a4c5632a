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

type AuthHandler struct {
	Service  *service.AuthService
	Users    *service.UserService
	Validate *validator.Validate
}

func NewAuthHandler(svc *service.AuthService, users *service.UserService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		Service:  svc,
		Users:    users,
		Validate: validate,
	}
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	var req dto.SignUpRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err)
	}
	input := service.RegisterInput{Name: req.Name, Email: req.Email, Password: req.Password}
	userID, err := h.Service.Register(c.Request().Context(), input)
	if err != nil {
		// Delivery failure still created or refreshed the account row; the
		// caller retries by signing up again.
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.SignUpResponse{UserID: userID.String()})
}

func (h *AuthHandler) VerifyToken(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return writeError(c, http.StatusBadRequest, errors.New("token is required"))
	}
	status, err := h.Service.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return writeServiceError(c, err)
	}
	message := "Email verified successfully. You can now sign in."
	if status == service.VerifyStatusAlreadyVerified {
		message = "Email is already verified. You can now sign in."
	}
	return c.JSON(http.StatusOK, dto.VerifyTokenResponse{Status: string(status), Message: message})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err)
	}
	result, err := h.Service.Login(c.Request().Context(), service.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sessionResponse(result, h.Service))
}

func (h *AuthHandler) CheckEmail(c echo.Context) error {
	var req dto.CheckEmailRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err)
	}
	registered, err := h.Service.EmailRegistered(c.Request().Context(), req.Email)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CheckEmailResponse{Registered: registered})
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	user, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func sessionResponse(result *service.LoginResult, svc *service.AuthService) dto.SessionResponse {
	claims := svc.ClaimsFor(result.User)
	return dto.SessionResponse{
		Token:      result.Token,
		ExpiresIn:  result.ExpiresIn,
		UserID:     claims.UserID.String(),
		Name:       claims.Name,
		Roles:      claims.Roles,
		IsVerified: claims.IsVerified,
	}
}
