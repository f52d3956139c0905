package services

import (
	"gaguya-backend/config"
	"gaguya-backend/models"
)

type DeliveryService struct{}

func (s DeliveryService) GetAll() ([]models.DeliveryCase, error) {
	var cases []models.DeliveryCase
	err := config.DB.Order("delivered_at desc, id desc").Find(&cases).Error
	return cases, err
}

func (s DeliveryService) GetByID(id int) (models.DeliveryCase, error) {
	var dc models.DeliveryCase
	err := config.DB.First(&dc, id).Error
	return dc, err
}

func (s DeliveryService) Create(dc models.DeliveryCase) error {
	return config.DB.Create(&dc).Error
}

func (s DeliveryService) Update(id int, fields map[string]interface{}) error {
	return config.DB.Model(&models.DeliveryCase{}).Where("id = ?", id).Updates(fields).Error
}

func (s DeliveryService) Delete(id int) error {
	return config.DB.Delete(&models.DeliveryCase{}, id).Error
}
