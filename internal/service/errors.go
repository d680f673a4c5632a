package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("email not verified")
	ErrInvalidToken       = errors.New("invalid verification token")
	ErrExpiredToken       = errors.New("verification token expired")
	ErrEmailDelivery      = errors.New("verification email delivery failed")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrCartLimit          = errors.New("cart item quantity limit reached")
)
