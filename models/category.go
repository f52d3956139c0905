package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex" json:"slug"`

	// ParentID nullable so top-level categories don't try to insert FK=0.
	ParentID     *uint  `json:"parentId,omitempty" gorm:"column:parent_id"`
	DisplayOrder int    `json:"displayOrder" gorm:"default:0"`
	Description  string `json:"description" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
