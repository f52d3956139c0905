package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is the unit the bulk importer commits and the storefront lists.
// Price is kept as a display string ("1,250,000" / "별도문의") on purpose —
// the catalog shows it verbatim and never computes with it.
type Product struct {
	gorm.Model

	Slug        string  `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Title       string  `json:"title" gorm:"size:200;not null"`
	Description *string `json:"description,omitempty" gorm:"type:text"`

	// ImageURL is the representative image (first of Images, if any).
	ImageURL *string        `json:"imageUrl,omitempty" gorm:"size:500"`
	Images   datatypes.JSON `json:"images,omitempty"`
	Badges   datatypes.JSON `json:"badges,omitempty"`
	Features datatypes.JSON `json:"features,omitempty"`

	Specs *string `json:"specs,omitempty" gorm:"size:1000"`

	MainCategory *string `json:"mainCategory,omitempty" gorm:"size:100;index"`
	Subcategory  *string `json:"subcategory,omitempty" gorm:"size:100"`

	DisplayOrder  int     `json:"displayOrder" gorm:"default:0"`
	ProcurementID *string `json:"procurementId,omitempty" gorm:"size:50"`
	Price         string  `json:"price" gorm:"size:50"`

	// Pointer so an explicit false survives the insert (a plain bool's zero
	// value would be dropped in favor of the column default).
	IsActive *bool `json:"isActive" gorm:"default:true"`
}
