package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxCartItemQuantity caps how many units of one product a cart may hold.
const MaxCartItemQuantity = 10

type CartItem struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Product   Product   `gorm:"constraint:OnDelete:CASCADE"`

	Quantity int `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
