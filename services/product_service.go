package services

import (
	"fmt"
	"time"

	"gaguya-backend/config"
	"gaguya-backend/importer"
	"gaguya-backend/models"
)

const productCacheKey = "products:active"

type ProductService struct{}

// ListActive returns storefront products, optionally filtered by main
// category, ordered for display. The unfiltered listing is cache-aside with
// a 5 minute TTL; filtered queries go straight to the DB.
func (s ProductService) ListActive(category string) ([]models.Product, error) {
	var products []models.Product
	if category == "" && config.CacheGet(productCacheKey, &products) {
		return products, nil
	}

	q := config.DB.Where("is_active = ?", true)
	if category != "" {
		q = q.Where("main_category = ?", category)
	}
	err := q.Order("display_order asc, id desc").Find(&products).Error
	if err == nil && category == "" {
		config.CacheSet(productCacheKey, products, 5*time.Minute)
	}
	return products, err
}

func (s ProductService) GetBySlug(slug string) (models.Product, error) {
	var product models.Product
	err := config.DB.Where("slug = ?", slug).First(&product).Error
	return product, err
}

func (s ProductService) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := config.DB.Order("display_order asc, id desc").Find(&products).Error
	return products, err
}

func (s ProductService) GetByID(id int) (models.Product, error) {
	var product models.Product
	err := config.DB.First(&product, id).Error
	return product, err
}

// Create allocates a unique slug before inserting, so the manual admin path
// and the bulk importer share one slug discipline.
func (s ProductService) Create(product models.Product) (models.Product, error) {
	base := importer.Slugify(product.Slug)
	if base == "" {
		base = importer.Slugify(product.Title)
	}
	if base == "" {
		base = fmt.Sprintf("product-%d", time.Now().UnixMilli())
	}

	existing, err := s.SlugSet()
	if err != nil {
		return product, err
	}
	product.Slug = importer.GenerateUniqueSlug(base, existing, nil, importer.SlugMaxAttempts)

	err = config.DB.Create(&product).Error
	if err == nil {
		config.CacheForget(productCacheKey)
	}
	return product, err
}

func (s ProductService) Update(id int, fields map[string]interface{}) error {
	err := config.DB.Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
	if err == nil {
		config.CacheForget(productCacheKey)
	}
	return err
}

func (s ProductService) Delete(id int) error {
	err := config.DB.Delete(&models.Product{}, id).Error
	if err == nil {
		config.CacheForget(productCacheKey)
	}
	return err
}

// SlugSet loads every product slug into a set for the allocator.
func (s ProductService) SlugSet() (map[string]bool, error) {
	var slugs []string
	if err := config.DB.Model(&models.Product{}).Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		set[slug] = true
	}
	return set, nil
}
