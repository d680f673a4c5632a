package service

import "github.com/google/uuid"

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type Credentials struct {
	Email    string
	Password string
}

// ProviderIdentity is the email/name pair an OAuth provider hands back
// after its own exchange.
type ProviderIdentity struct {
	Provider string
	Email    string
	Name     string
}

type VerifyStatus string

const (
	VerifyStatusVerified        VerifyStatus = "verified"
	VerifyStatusAlreadyVerified VerifyStatus = "already_verified"
)

// SessionClaims is the identity payload embedded in a session token.
type SessionClaims struct {
	UserID     uuid.UUID
	Name       string
	Roles      []string
	IsVerified bool
}
