package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DeliveryCase is one entry of the "납품사례" gallery.
type DeliveryCase struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Region      string         `gorm:"size:100" json:"region"`
	Description string         `gorm:"type:text" json:"description"`
	Images      datatypes.JSON `json:"images,omitempty"`
	DeliveredAt *time.Time     `json:"deliveredAt,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
