package services

import (
	"strings"
	"testing"

	"gaguya-backend/config"
	"gaguya-backend/models"
)

func TestProductCreateAllocatesUniqueSlug(t *testing.T) {
	config.DB = setupImportDB(t)
	svc := ProductService{}

	first, err := svc.Create(models.Product{Title: "사무용 책상", Price: "180,000원"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Slug != "사무용-책상" {
		t.Fatalf("slug = %q", first.Slug)
	}

	second, err := svc.Create(models.Product{Title: "사무용 책상", Price: "190,000원"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.Slug == first.Slug || !strings.HasPrefix(second.Slug, "사무용-책상-") {
		t.Fatalf("second slug = %q", second.Slug)
	}
}

func TestProductListActiveFiltersByCategory(t *testing.T) {
	config.DB = setupImportDB(t)
	svc := ProductService{}

	office := "office"
	home := "home"
	inactive := false
	seed := []models.Product{
		{Slug: "a", Title: "a", MainCategory: &office, DisplayOrder: 2},
		{Slug: "b", Title: "b", MainCategory: &office, DisplayOrder: 1},
		{Slug: "c", Title: "c", MainCategory: &home},
		{Slug: "d", Title: "d", MainCategory: &office, IsActive: &inactive},
	}
	for i := range seed {
		if err := config.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	products, err := svc.ListActive("office")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("count = %d", len(products))
	}
	// display_order ascending.
	if products[0].Slug != "b" || products[1].Slug != "a" {
		t.Fatalf("order = %q, %q", products[0].Slug, products[1].Slug)
	}
}
