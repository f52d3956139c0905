package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gaguya-backend/controllers"
	"gaguya-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public storefront, the planner protocol and the
// token-guarded admin surface.
func SetupRouter(
	pc *controllers.ProductController,
	ic *controllers.ImportController,
	plc *controllers.PlannerController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public storefront
		products := api.Group("/products")
		{
			products.GET("", pc.GetProducts)
			products.GET("/:slug", pc.GetProductBySlug)
		}

		api.GET("/categories", controllers.GetCategories)
		api.GET("/delivery-cases", controllers.GetDeliveryCases)

		catalogs := api.Group("/catalogs")
		{
			catalogs.GET("", controllers.GetCatalogs)
			catalogs.POST("/:id/download", controllers.DownloadCatalog)
		}

		api.POST("/inquiries", controllers.CreateInquiry)
		api.GET("/settings/site", controllers.GetSiteSettings)

		// Space planner — anonymous, session-scoped
		plannerRoutes := api.Group("/planner")
		{
			plannerRoutes.GET("/furniture", plc.GetFurnitureItems)
			plannerRoutes.POST("/sessions", plc.CreateSession)

			session := plannerRoutes.Group("/sessions/:sessionId")
			{
				session.GET("", plc.GetSession)
				session.DELETE("", plc.DestroySession)
				session.PUT("/room", plc.UpdateRoom)
				session.POST("/furniture", plc.AddFurniture)
				session.PUT("/furniture/:itemId/position", plc.MoveFurniture)
				session.POST("/furniture/:itemId/rotate", plc.RotateFurniture)
				session.PATCH("/furniture/:itemId/color", plc.ChangeFurnitureColor)
				session.DELETE("/furniture/:itemId", plc.RemoveFurniture)
				session.DELETE("/furniture", plc.ClearFurniture)
				session.PUT("/selection", plc.SelectFurniture)
				session.GET("/quote", plc.GetQuote)
				session.POST("/consult", plc.RequestConsultation)
			}
		}

		// Auth
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/logout", controllers.Logout)
			auth.POST("/forgot", controllers.ForgotPassword)
		}

		// Admin back office
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			adminProducts := admin.Group("/products")
			{
				adminProducts.GET("", pc.GetAllProducts)
				adminProducts.POST("", pc.CreateProduct)
				adminProducts.POST("/import", ic.ImportProducts)
				adminProducts.PUT("/:id", pc.UpdateProduct)
				adminProducts.DELETE("/:id", pc.DeleteProduct)
			}

			adminCategories := admin.Group("/categories")
			{
				adminCategories.POST("", controllers.CreateCategory)
				adminCategories.PUT("/:id", controllers.UpdateCategory)
				adminCategories.DELETE("/:id", controllers.DeleteCategory)
			}

			adminCatalogs := admin.Group("/catalogs")
			{
				adminCatalogs.POST("", controllers.CreateCatalog)
				adminCatalogs.PUT("/:id", controllers.UpdateCatalog)
				adminCatalogs.DELETE("/:id", controllers.DeleteCatalog)
			}

			adminDelivery := admin.Group("/delivery-cases")
			{
				adminDelivery.POST("", controllers.CreateDeliveryCase)
				adminDelivery.PUT("/:id", controllers.UpdateDeliveryCase)
				adminDelivery.DELETE("/:id", controllers.DeleteDeliveryCase)
			}

			adminInquiries := admin.Group("/inquiries")
			{
				adminInquiries.GET("", controllers.GetInquiries)
				adminInquiries.GET("/:id", controllers.GetInquiry)
				adminInquiries.PATCH("/:id/status", controllers.UpdateInquiryStatus)
				adminInquiries.DELETE("/:id", controllers.DeleteInquiry)
			}

			admins := admin.Group("/admins")
			{
				admins.GET("", controllers.GetAdmins)
				admins.POST("", controllers.CreateAdmin)
				admins.DELETE("/:id", controllers.DeleteAdmin)
			}

			roles := admin.Group("/roles")
			{
				roles.GET("", controllers.GetRoles)
				roles.PUT("/:id/permissions", controllers.UpdateRolePermissions)
			}

			admin.PUT("/settings/site", controllers.UpdateSiteSettings)
		}
	}

	return r
}
