package services

import (
	"gaguya-backend/config"
	"gaguya-backend/models"
)

type FurnitureService struct{}

// GetAll returns the placeable templates for the planner sidebar.
func (s FurnitureService) GetAll(category string) ([]models.FurnitureItem, error) {
	var items []models.FurnitureItem
	q := config.DB.Order("category asc, id asc")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&items).Error
	return items, err
}

func (s FurnitureService) GetByID(id int) (models.FurnitureItem, error) {
	var item models.FurnitureItem
	err := config.DB.First(&item, id).Error
	return item, err
}
