package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"gaguya-backend/models"
	"gaguya-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct {
	service services.ProductService
}

func NewProductController(service services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// ----------------------------------------------------
// Public storefront
// ----------------------------------------------------

func (pc *ProductController) GetProducts(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))

	products, err := pc.service.ListActive(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	product, err := pc.service.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("product '%s' not found", slug)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// ----------------------------------------------------
// Admin CRUD
// ----------------------------------------------------

func (pc *ProductController) GetAllProducts(c *gin.Context) {
	products, err := pc.service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	product.Title = strings.TrimSpace(product.Title)
	if product.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "품명이 필요합니다.",
		})
		return
	}

	created, err := pc.service.Create(product)
	if err != nil {
		log.Printf("❌ DB ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	// Protect identity and bookkeeping fields.
	delete(updateData, "id")
	delete(updateData, "slug")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted_at")

	if err := pc.service.Update(id, updateData); err != nil {
		log.Printf("❌ Update Error for Product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Product updated successfully"})
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := pc.service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete product.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Product deleted successfully"})
}
