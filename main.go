package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gaguya-backend/config"
	"gaguya-backend/controllers"
	"gaguya-backend/planner"
	"gaguya-backend/routes"
	"gaguya-backend/services"
	"gaguya-backend/storage"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Redis is optional; the category cache degrades to DB-only without it.
	config.ConnectCache()

	// Blob storage: local disk always, S3 when a bucket is configured.
	if err := storage.Connect(storage.Config{
		Default:      os.Getenv("STORAGE_DISK"),
		LocalRoot:    os.Getenv("STORAGE_LOCAL_ROOT"),
		LocalBaseURL: os.Getenv("STORAGE_LOCAL_BASE_URL"),
		S3Bucket:     os.Getenv("S3_BUCKET"),
		S3Region:     os.Getenv("S3_REGION"),
		S3Key:        os.Getenv("S3_ACCESS_KEY"),
		S3Secret:     os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:   os.Getenv("S3_ENDPOINT"),
		S3BaseURL:    os.Getenv("S3_BASE_URL"),
	}); err != nil {
		log.Fatalf("❌ Storage connect failed: %v", err)
	}
	log.Println("✅ Storage ready.")

	// Initialize services
	productService := services.ProductService{}
	furnitureService := services.FurnitureService{}
	inquiryService := services.InquiryService{}
	importService := services.NewImportService(db, storage.Default())
	sessions := planner.NewSessionManager(planner.DefaultSessionTTL)

	// Initialize controllers
	productController := controllers.NewProductController(productService)
	importController := controllers.NewImportController(importService)
	plannerController := controllers.NewPlannerController(sessions, furnitureService, inquiryService)

	// Build router
	router := routes.SetupRouter(productController, importController, plannerController)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // bulk imports hold the request open
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
