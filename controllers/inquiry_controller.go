package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gaguya-backend/models"
	"gaguya-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var inquiryService services.InquiryService

// CreateInquiry is the public storefront contact form. ProductID is optional —
// a general inquiry has none, a product-page inquiry carries the product.
func CreateInquiry(c *gin.Context) {
	var inquiry models.Inquiry
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	inquiry.Name = strings.TrimSpace(inquiry.Name)
	inquiry.Phone = strings.TrimSpace(inquiry.Phone)
	if inquiry.Name == "" || inquiry.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "이름과 연락처를 입력해 주세요."})
		return
	}

	// Clients never set workflow fields.
	inquiry.Status = ""
	inquiry.Source = ""

	created, err := inquiryService.Create(inquiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "문의 접수에 실패했습니다."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "문의가 접수되었습니다.", "id": created.ID})
}

func GetInquiries(c *gin.Context) {
	status := c.Query("status")
	inquiries, err := inquiryService.GetAll(status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

func GetInquiry(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry id"})
		return
	}

	inquiry, err := inquiryService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inquiry)
}

func UpdateInquiryStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry id"})
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := inquiryService.UpdateStatus(id, payload.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

func DeleteInquiry(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry id"})
		return
	}

	if err := inquiryService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "inquiry deleted"})
}
