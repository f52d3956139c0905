package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gaguya-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// resolveDSN prefers DATABASE_URL, falling back to discrete DB_* vars for
// the default postgres driver.
func resolveDSN(driver string) string {
	if raw := strings.TrimSpace(os.Getenv("DATABASE_URL")); raw != "" {
		return raw
	}

	switch driver {
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			envOrDefault("DB_HOST", "127.0.0.1"),
			envOrDefault("DB_USER", "postgres"),
			envOrDefault("DB_PASS", "postgres"),
			envOrDefault("DB_NAME", "gaguya"),
			envOrDefault("DB_PORT", "5432"),
			envOrDefault("DB_SSLMODE", "disable"),
		)
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			envOrDefault("DB_USER", "root"),
			envOrDefault("DB_PASS", "root"),
			envOrDefault("DB_HOST", "127.0.0.1"),
			envOrDefault("DB_PORT", "3306"),
			envOrDefault("DB_NAME", "gaguya"),
		)
	default: // sqlite
		return envOrDefault("DB_NAME", "gaguya.db")
	}
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: postgres, mysql, sqlite)", driver)
	}
}

func ConnectDatabase() error {
	driver := strings.ToLower(envOrDefault("DB_DRIVER", "postgres"))
	dsn := resolveDSN(driver)

	dialector, err := buildDialector(driver, dsn)
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	// Connection pool settings; sqlite ignores most of these.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.SiteSetting{},
		&models.RoleMember{}, // before Role so the join table keeps its own id column
		&models.Role{},
		&models.RolePermission{},
		&models.Category{},
		&models.Product{},
		&models.Catalog{},
		&models.DeliveryCase{},
		&models.Inquiry{},
		&models.FurnitureItem{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

func SeedDatabase() {
	// ---------------- Admins ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_INITIAL_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "관리자",
				Username: envOrDefault("ADMIN_INITIAL_USERNAME", "admin@gaguya.local"),
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Categories ----------------
	var catCount int64
	DB.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		categories := []models.Category{
			{Name: "사무용 가구", Slug: "office", DisplayOrder: 1},
			{Name: "학교 가구", Slug: "school", DisplayOrder: 2},
			{Name: "기숙사 가구", Slug: "dormitory", DisplayOrder: 3},
			{Name: "도서관 가구", Slug: "library", DisplayOrder: 4},
		}
		DB.Create(&categories)
		log.Println("Categories seeded")
	}

	// ---------------- Planner furniture templates ----------------
	var itemCount int64
	DB.Model(&models.FurnitureItem{}).Count(&itemCount)
	if itemCount == 0 {
		items := []models.FurnitureItem{
			{Name: "사무용 책상", Category: "desk", Width: 1200, Depth: 600, Price: 180000, Color: "#c8a977"},
			{Name: "회의 테이블", Category: "desk", Width: 1800, Depth: 900, Price: 420000, Color: "#b08e5c"},
			{Name: "사무용 의자", Category: "chair", Width: 600, Depth: 600, Price: 120000, Color: "#4a4a4a"},
			{Name: "수납장", Category: "cabinet", Width: 800, Depth: 400, Price: 250000, Color: "#8a7156"},
			{Name: "파티션", Category: "partition", Width: 1200, Depth: 60, Price: 95000, Color: "#d9d4cb"},
		}
		DB.Create(&items)
		log.Println("Planner furniture templates seeded")
	}

	// ---------------- Roles ----------------
	desiredRoles := []models.Role{
		{Name: "owner", Description: "System owner with full access"},
		{Name: "Manager", Description: "Catalog and inquiry management"},
		{Name: "Editor", Description: "Product content editing"},
	}

	allPerms := []string{
		"productManagement.view",
		"productManagement.create",
		"productManagement.edit",
		"productManagement.delete",
		"productManagement.import",
		"categoryManagement.view",
		"categoryManagement.create",
		"categoryManagement.edit",
		"categoryManagement.delete",
		"catalogManagement.view",
		"catalogManagement.create",
		"catalogManagement.edit",
		"catalogManagement.delete",
		"inquiryManagement.view",
		"inquiryManagement.edit",
		"inquiryManagement.delete",
		"deliveryManagement.view",
		"deliveryManagement.create",
		"deliveryManagement.edit",
		"deliveryManagement.delete",
		"rolesAndPermissions.view",
		"rolesAndPermissions.create",
		"rolesAndPermissions.edit",
		"rolesAndPermissions.delete",
	}

	rolesByKey := map[string]models.Role{}
	for i := range desiredRoles {
		role := desiredRoles[i]
		key := strings.ToLower(role.Name)

		var existing models.Role
		err := DB.Where("LOWER(name) = ?", key).First(&existing).Error
		if err == nil && existing.ID != 0 {
			rolesByKey[key] = existing
			continue
		}

		if err := DB.Create(&role).Error; err != nil {
			log.Printf("warning: failed to create role %s: %v", role.Name, err)
			continue
		}
		rolesByKey[key] = role
	}

	ownerRole, ok := rolesByKey["owner"]
	if ok && ownerRole.ID != 0 {
		var permCount int64
		DB.Model(&models.RolePermission{}).Where("role_id = ?", ownerRole.ID).Count(&permCount)
		if permCount == 0 {
			perms := make([]models.RolePermission, 0, len(allPerms))
			for _, p := range allPerms {
				perms = append(perms, models.RolePermission{RoleID: ownerRole.ID, Permission: p})
			}
			if err := DB.Create(&perms).Error; err != nil {
				log.Printf("warning: failed to create owner permissions: %v", err)
			}
		}

		var memberCount int64
		DB.Model(&models.RoleMember{}).Where("role_id = ?", ownerRole.ID).Count(&memberCount)
		if memberCount == 0 {
			var admins []models.Admin
			DB.Find(&admins)
			if len(admins) > 0 {
				members := make([]models.RoleMember, 0, len(admins))
				for _, admin := range admins {
					members = append(members, models.RoleMember{RoleID: ownerRole.ID, AdminID: admin.ID})
				}
				if err := DB.Create(&members).Error; err != nil {
					log.Printf("warning: failed to assign admins to owner role: %v", err)
				}
			}
		}
	}

	log.Println("Roles ensured")
}
