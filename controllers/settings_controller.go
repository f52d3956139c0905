package controllers

import (
	"errors"
	"net/http"

	"gaguya-backend/config"
	"gaguya-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type siteSettingsPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Logo    string `json:"logo"`
}

func GetSiteSettings(c *gin.Context) {
	var site models.SiteSetting
	if err := config.DB.First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"site": models.SiteSetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"site": site})
}

func UpdateSiteSettings(c *gin.Context) {
	var payload siteSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var site models.SiteSetting
	err := config.DB.First(&site).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			site = models.SiteSetting{
				Name:    payload.Name,
				Address: payload.Address,
				Phone:   payload.Phone,
				Email:   payload.Email,
				Website: payload.Website,
				Logo:    payload.Logo,
			}
			if err := config.DB.Create(&site).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"site": site})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	site.Name = payload.Name
	site.Address = payload.Address
	site.Phone = payload.Phone
	site.Email = payload.Email
	site.Website = payload.Website
	site.Logo = payload.Logo

	if err := config.DB.Save(&site).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"site": site})
}
