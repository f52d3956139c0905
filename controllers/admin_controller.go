package controllers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"gaguya-backend/config"
	"gaguya-backend/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type createAdminPayload struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

var adminEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func GetAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := config.DB.Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, admins)
}

func CreateAdmin(c *gin.Context) {
	var payload createAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	username := strings.TrimSpace(payload.Username)
	if !adminEmailRegex.MatchString(username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username must be an email address"})
		return
	}
	if len(payload.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 8 characters"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	admin := models.Admin{
		FullName: strings.TrimSpace(payload.FullName),
		Username: username,
		Password: string(hash),
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") ||
			strings.Contains(err.Error(), "duplicate key") ||
			strings.Contains(err.Error(), "UNIQUE constraint failed") {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("admin '%s' already exists", username)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Optional role assignment at creation time.
	if role := strings.TrimSpace(payload.Role); role != "" {
		var r models.Role
		if err := config.DB.Where("LOWER(name) = ?", strings.ToLower(role)).First(&r).Error; err == nil {
			config.DB.Create(&models.RoleMember{RoleID: r.ID, AdminID: admin.ID})
		}
	}

	c.JSON(http.StatusCreated, admin)
}

func DeleteAdmin(c *gin.Context) {
	id := c.Param("id")

	var count int64
	config.DB.Model(&models.Admin{}).Count(&count)
	if count <= 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete the last admin"})
		return
	}

	result := config.DB.Where("id = ?", id).Delete(&models.Admin{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("admin %s not found", id)})
		return
	}

	config.DB.Where("admin_id = ?", id).Delete(&models.RoleMember{})
	c.JSON(http.StatusOK, gin.H{"message": "admin deleted"})
}
