package services

import (
	"time"

	"gaguya-backend/config"
	"gaguya-backend/models"
)

const categoryCacheKey = "categories:all"

type CategoryService struct{}

// GetAll serves the public category tree, cache-aside with a 5 minute TTL.
func (s CategoryService) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if config.CacheGet(categoryCacheKey, &categories) {
		return categories, nil
	}

	err := config.DB.Order("display_order asc, id asc").Find(&categories).Error
	if err == nil {
		config.CacheSet(categoryCacheKey, categories, 5*time.Minute)
	}
	return categories, err
}

func (s CategoryService) Create(category models.Category) error {
	err := config.DB.Create(&category).Error
	if err == nil {
		config.CacheForget(categoryCacheKey)
	}
	return err
}

func (s CategoryService) Update(id int, fields map[string]interface{}) error {
	err := config.DB.Model(&models.Category{}).Where("id = ?", id).Updates(fields).Error
	if err == nil {
		config.CacheForget(categoryCacheKey)
	}
	return err
}

func (s CategoryService) Delete(id int) error {
	err := config.DB.Delete(&models.Category{}, id).Error
	if err == nil {
		config.CacheForget(categoryCacheKey)
	}
	return err
}
