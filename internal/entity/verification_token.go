package entity

import (
	"time"

	"github.com/google/uuid"
)

type VerificationType string

const (
	EmailVerify VerificationType = "email_verify"
)

// VerificationToken is the single-use token ledger. A user holds at most
// one unconsumed row per type; re-registration deletes prior rows before
// issuing a new one. Consumed rows are kept so a re-submitted token can be
// told apart from an unknown one.
type VerificationToken struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	TokenHash string           `gorm:"type:text;not null;index"`
	Type      VerificationType `gorm:"type:varchar(32);not null"`

	ExpiresAt  time.Time
	ConsumedAt *time.Time

	CreatedAt time.Time
}
