package models

import (
	"time"

	"gorm.io/gorm"
)

// Catalog is a downloadable PDF catalog shown on the storefront.
type Catalog struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Title         string `gorm:"size:200;not null" json:"title"`
	Description   string `gorm:"type:text" json:"description"`
	FileURL       string `gorm:"size:500" json:"fileUrl"`
	Thumbnail     string `gorm:"size:500" json:"thumbnail"`
	DownloadCount int    `gorm:"default:0" json:"downloadCount"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
