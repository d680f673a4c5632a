package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

type Order struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	Status   OrderStatus `gorm:"type:varchar(20);default:'PENDING';not null"`
	Subtotal float64     `gorm:"not null"`

	PaymentMethod   string                       `gorm:"type:varchar(50);not null"`
	ShippingAddress datatypes.JSONType[Address]  `gorm:"not null"`
	BillingAddress  *datatypes.JSONType[Address]

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem snapshots the product title and unit price at purchase time so
// later catalog edits do not rewrite order history.
type OrderItem struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`

	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Title     string    `gorm:"type:varchar(200);not null"`
	UnitPrice float64   `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
}
