package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"gaguya-backend/config"
	"gaguya-backend/models"

	"github.com/gin-gonic/gin"
)

type rolePermissionsPayload struct {
	Permissions []string `json:"permissions"`
}

type roleMemberResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

var defaultActionsByModule = map[string][]string{
	"productManagement":   {"view", "create", "edit", "delete", "import"},
	"categoryManagement":  {"view", "create", "edit", "delete"},
	"catalogManagement":   {"view", "create", "edit", "delete"},
	"inquiryManagement":   {"view", "edit", "delete"},
	"deliveryManagement":  {"view", "create", "edit", "delete"},
	"rolesAndPermissions": {"view", "create", "edit", "delete"},
}

func buildDefaultPermissions() map[string]map[string]bool {
	permMap := map[string]map[string]bool{}
	for module, actions := range defaultActionsByModule {
		permMap[module] = map[string]bool{}
		for _, action := range actions {
			permMap[module][action] = false
		}
	}
	return permMap
}

type roleResponse struct {
	ID          uint                       `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Permissions map[string]map[string]bool `json:"permissions"`
	Members     []roleMemberResponse       `json:"members"`
}

func GetRoles(c *gin.Context) {
	var roles []models.Role
	if err := config.DB.Preload("Permissions").Preload("Members").Find(&roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]roleResponse, 0, len(roles))
	for _, role := range roles {
		permMap := buildDefaultPermissions()
		for _, perm := range role.Permissions {
			parts := strings.Split(perm.Permission, ".")
			if len(parts) != 2 {
				continue
			}
			if _, ok := permMap[parts[0]]; !ok {
				permMap[parts[0]] = map[string]bool{}
			}
			permMap[parts[0]][parts[1]] = true
		}

		members := make([]roleMemberResponse, 0, len(role.Members))
		for _, m := range role.Members {
			members = append(members, roleMemberResponse{ID: m.ID, Name: m.FullName, Email: m.Username})
		}

		responses = append(responses, roleResponse{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
			Permissions: permMap,
			Members:     members,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// UpdateRolePermissions replaces a role's permission rows with the posted
// "module.action" list.
func UpdateRolePermissions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}

	var payload rolePermissionsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	var role models.Role
	if err := config.DB.First(&role, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
		return
	}

	if err := config.DB.Where("role_id = ?", role.ID).Delete(&models.RolePermission{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	perms := make([]models.RolePermission, 0, len(payload.Permissions))
	for _, p := range payload.Permissions {
		p = strings.TrimSpace(p)
		if p == "" || !strings.Contains(p, ".") {
			continue
		}
		perms = append(perms, models.RolePermission{RoleID: role.ID, Permission: p})
	}
	if len(perms) > 0 {
		if err := config.DB.Create(&perms).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "permissions updated"})
}
