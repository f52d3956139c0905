package models

import "time"

// FurnitureItem is a placeable template for the space-planning simulator.
// Width/Depth are the top-view footprint in millimeters; Price is an integer
// amount in KRW (unlike Product.Price, the planner sums these).
type FurnitureItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Category  string `gorm:"size:50;index" json:"category"`
	Width     int    `gorm:"not null" json:"width"`
	Depth     int    `gorm:"not null" json:"depth"`
	Price     int    `gorm:"not null;default:0" json:"price"`
	Thumbnail string `gorm:"size:500" json:"thumbnail"`
	Color     string `gorm:"size:20" json:"color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
