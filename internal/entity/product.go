package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Slug        string    `gorm:"type:varchar(220);uniqueIndex;not null"`
	Description string    `gorm:"type:text;not null"`

	Images datatypes.JSONSlice[string] `gorm:"not null"`

	Price        float64  `gorm:"not null"`
	ComparePrice *float64 `gorm:"column:compare_price"`
	CostPrice    *float64 `gorm:"column:cost_price"`

	SKU     *string `gorm:"type:varchar(100);column:sku"`
	Barcode *string `gorm:"type:varchar(100)"`
	Stock   int     `gorm:"default:0;not null"`
	Weight  *float64

	Dimensions *datatypes.JSONType[Dimensions]
	Tags       datatypes.JSONSlice[string]

	SeoTitle       *string `gorm:"type:varchar(60)"`
	SeoDescription *string `gorm:"type:varchar(160)"`

	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	Category   *Category
	BrandID    *uuid.UUID `gorm:"type:uuid;index"`
	Brand      *Brand

	SellerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Seller   User      `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
