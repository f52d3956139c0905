package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	InquirySourceStorefront = "storefront"
	InquirySourcePlanner    = "planner"

	InquiryStatusNew       = "new"
	InquiryStatusInProcess = "in_process"
	InquiryStatusDone      = "done"
)

type Inquiry struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`
	Company string `gorm:"size:150" json:"company"`
	Message string `gorm:"type:text" json:"message"`

	// ProductID nullable: general consultations have no product attached.
	ProductID *uint    `json:"productId,omitempty" gorm:"column:product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	Source string `gorm:"size:20;default:storefront" json:"source"`
	Status string `gorm:"size:20;default:new" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
