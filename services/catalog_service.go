package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"gaguya-backend/config"
	"gaguya-backend/models"
	"gaguya-backend/storage"
)

type CatalogService struct{}

func (s CatalogService) GetAll() ([]models.Catalog, error) {
	var catalogs []models.Catalog
	err := config.DB.Order("id desc").Find(&catalogs).Error
	return catalogs, err
}

func (s CatalogService) GetByID(id int) (models.Catalog, error) {
	var catalog models.Catalog
	err := config.DB.First(&catalog, id).Error
	return catalog, err
}

// UploadFile pushes a catalog PDF to the blob store and returns its public
// URL.
func (s CatalogService) UploadFile(ctx context.Context, filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" {
		return "", fmt.Errorf("카탈로그는 PDF만 업로드할 수 있습니다")
	}

	disk := storage.Default()
	path := fmt.Sprintf("catalogs/%d%s", time.Now().UnixNano(), ext)
	if err := disk.Put(ctx, path, data, "application/pdf"); err != nil {
		return "", err
	}
	return disk.URL(path), nil
}

func (s CatalogService) Create(catalog models.Catalog) error {
	return config.DB.Create(&catalog).Error
}

func (s CatalogService) Update(id int, fields map[string]interface{}) error {
	return config.DB.Model(&models.Catalog{}).Where("id = ?", id).Updates(fields).Error
}

func (s CatalogService) Delete(id int) error {
	return config.DB.Delete(&models.Catalog{}, id).Error
}

// RecordDownload bumps the counter and returns the file URL.
func (s CatalogService) RecordDownload(id int) (string, error) {
	var catalog models.Catalog
	if err := config.DB.First(&catalog, id).Error; err != nil {
		return "", err
	}
	if err := config.DB.Model(&catalog).
		Update("download_count", gorm.Expr("download_count + 1")).Error; err != nil {
		return "", err
	}
	return catalog.FileURL, nil
}
