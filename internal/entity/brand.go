package entity

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name string    `gorm:"type:varchar(100);not null"`
	Slug string    `gorm:"type:varchar(120);uniqueIndex;not null"`

	Logo *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
