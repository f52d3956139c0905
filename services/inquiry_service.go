package services

import (
	"fmt"

	"gaguya-backend/config"
	"gaguya-backend/models"
	"gaguya-backend/planner"
)

type InquiryService struct{}

func (s InquiryService) Create(inquiry models.Inquiry) (models.Inquiry, error) {
	if inquiry.Source == "" {
		inquiry.Source = models.InquirySourceStorefront
	}
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusNew
	}
	err := config.DB.Create(&inquiry).Error
	return inquiry, err
}

// CreateFromPlanner converts a planner consultation into a stored inquiry.
func (s InquiryService) CreateFromPlanner(c planner.Consultation) (models.Inquiry, error) {
	return s.Create(models.Inquiry{
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Company: c.Company,
		Message: c.Message,
		Source:  models.InquirySourcePlanner,
	})
}

func (s InquiryService) GetAll(status string) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	q := config.DB.Preload("Product").Order("id desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&inquiries).Error
	return inquiries, err
}

func (s InquiryService) GetByID(id int) (models.Inquiry, error) {
	var inquiry models.Inquiry
	err := config.DB.Preload("Product").First(&inquiry, id).Error
	return inquiry, err
}

func (s InquiryService) UpdateStatus(id int, status string) error {
	switch status {
	case models.InquiryStatusNew, models.InquiryStatusInProcess, models.InquiryStatusDone:
	default:
		return fmt.Errorf("invalid status %q", status)
	}
	return config.DB.Model(&models.Inquiry{}).Where("id = ?", id).Update("status", status).Error
}

func (s InquiryService) Delete(id int) error {
	return config.DB.Delete(&models.Inquiry{}, id).Error
}
