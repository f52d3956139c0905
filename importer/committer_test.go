package importer

import (
	"errors"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gaguya-backend/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func record(row int, slug, title string) ProductImportRecord {
	return ProductImportRecord{RowIndex: row, Slug: slug, Title: title, IsActive: true, Price: "10000"}
}

func TestCommitInsertsCleanBatch(t *testing.T) {
	db := setupTestDB(t)
	c := NewCommitter(db)

	records := []ProductImportRecord{
		record(2, "책상", "책상"),
		record(3, "의자", "의자"),
	}
	seen := map[string]bool{"책상": true, "의자": true}

	result, err := c.Commit(records, seen, nil)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if result.Inserted != 2 || len(result.Errors) != 0 {
		t.Fatalf("result = %+v", result)
	}

	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count != 2 {
		t.Fatalf("db count = %d", count)
	}
}

func TestCommitDemotesConflictingChunkToRows(t *testing.T) {
	db := setupTestDB(t)

	// A slug the pre-check never saw — simulates a product created between
	// the slug scan and the insert.
	if err := db.Create(&models.Product{Slug: "책상", Title: "선점된 책상", Price: "0"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	c := NewCommitter(db)
	records := []ProductImportRecord{
		record(2, "책상", "책상"),
		record(3, "의자", "의자"),
	}
	seen := map[string]bool{"책상": true, "의자": true}

	result, err := c.Commit(records, seen, nil)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if result.Inserted != 2 {
		t.Fatalf("inserted = %d, want both rows to survive via regeneration", result.Inserted)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("errors = %v", result.Errors)
	}

	var products []models.Product
	db.Order("id asc").Find(&products)
	if len(products) != 3 {
		t.Fatalf("db count = %d", len(products))
	}
	// The conflicting row got a fresh suffixed slug; the clean row kept its.
	var regenerated string
	for _, p := range products[1:] {
		if p.Title == "책상" {
			regenerated = p.Slug
		}
	}
	if regenerated == "" || regenerated == "책상" || !strings.HasPrefix(regenerated, "책상-") {
		t.Fatalf("regenerated slug = %q", regenerated)
	}
	if !seen[regenerated] {
		t.Fatal("regenerated slug missing from the shared set")
	}
}

func TestCommitChunking(t *testing.T) {
	db := setupTestDB(t)
	c := NewCommitter(db)
	c.ChunkSize = 2

	var records []ProductImportRecord
	for i := 0; i < 5; i++ {
		slug := "제품-" + string(rune('a'+i))
		records = append(records, record(i+2, slug, slug))
	}

	var calls int
	progress := func(current, total int, label, phase string) {
		if phase != PhaseInserting {
			t.Fatalf("unexpected phase %q", phase)
		}
		if total != 5 {
			t.Fatalf("total = %d", total)
		}
		calls++
	}

	result, err := c.Commit(records, map[string]bool{}, progress)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if result.Inserted != 5 {
		t.Fatalf("inserted = %d", result.Inserted)
	}
	if calls != 3 { // ceil(5/2) chunk-level reports
		t.Fatalf("progress calls = %d", calls)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	for _, msg := range []string{
		`ERROR: duplicate key value violates unique constraint "idx_products_slug" (SQLSTATE 23505)`,
		`Error 1062 (23000): Duplicate entry '책상' for key 'idx_products_slug'`,
		`UNIQUE constraint failed: products.slug`,
	} {
		if !IsUniqueViolation(errors.New(msg)) {
			t.Fatalf("should match: %s", msg)
		}
	}
	if IsUniqueViolation(nil) {
		t.Fatal("nil matched")
	}
	if IsUniqueViolation(errors.New("connection refused")) {
		t.Fatal("unrelated error matched")
	}
}
