package entity

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name string    `gorm:"type:varchar(100);not null"`
	Slug string    `gorm:"type:varchar(120);uniqueIndex;not null"`

	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	Parent   *Category

	Image *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
