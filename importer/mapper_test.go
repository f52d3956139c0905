package importer

import (
	"strings"
	"testing"
)

func rowWith(index int, values map[string]string) ExcelRowData {
	return ExcelRowData{RowIndex: index, Values: values}
}

func TestFieldResolverMatchesKoreanAliases(t *testing.T) {
	r := NewFieldResolver([]string{"품명", "규격", "가격", "진열순서"})

	row := rowWith(2, map[string]string{
		"품명": "책상", "규격": "1200×600", "가격": "180,000원", "진열순서": "5",
	})

	if got := r.Get(row, "title"); got != "책상" {
		t.Fatalf("title = %q", got)
	}
	if got := r.Get(row, "size"); got != "1200×600" {
		t.Fatalf("size = %q", got)
	}
	if got := r.Get(row, "price"); got != "180,000원" {
		t.Fatalf("price = %q", got)
	}
	if r.Has("description") {
		t.Fatal("description column should be absent")
	}
}

func TestFieldResolverFirstAliasWins(t *testing.T) {
	// Both 품명 and title present — the earlier alias in the table wins.
	r := NewFieldResolver([]string{"품명", "title"})
	row := rowWith(2, map[string]string{"품명": "한글", "title": "english"})
	if got := r.Get(row, "title"); got != "한글" {
		t.Fatalf("got %q, want the 품명 column", got)
	}
}

func TestMapRowRequiresTitle(t *testing.T) {
	r := NewFieldResolver([]string{"품명", "가격"})
	_, err := MapRow(rowWith(7, map[string]string{"품명": "", "가격": "1000"}), nil, r)
	if err == nil {
		t.Fatal("expected error for missing title")
	}
	if !strings.Contains(err.Error(), "행 7") {
		t.Fatalf("error should name the row: %v", err)
	}
}

func TestMapRowDerivesSlugFromTitle(t *testing.T) {
	r := NewFieldResolver([]string{"품명"})
	rec, err := MapRow(rowWith(2, map[string]string{"품명": "사무용 책상"}), nil, r)
	if err != nil {
		t.Fatalf("MapRow: %v", err)
	}
	if rec.Slug != "사무용-책상" {
		t.Fatalf("slug = %q", rec.Slug)
	}
	if !rec.IsActive {
		t.Fatal("IsActive should default to true")
	}
}

func TestMapRowExplicitSlugColumnWins(t *testing.T) {
	r := NewFieldResolver([]string{"품명", "슬러그"})
	rec, err := MapRow(rowWith(2, map[string]string{"품명": "사무용 책상", "슬러그": "Desk-2024"}), nil, r)
	if err != nil {
		t.Fatalf("MapRow: %v", err)
	}
	if rec.Slug != "desk-2024" {
		t.Fatalf("slug = %q", rec.Slug)
	}
}

func TestMapRowUnusableSlugFallsBack(t *testing.T) {
	r := NewFieldResolver([]string{"품명"})
	rec, err := MapRow(rowWith(9, map[string]string{"품명": "!!!"}), nil, r)
	if err != nil {
		t.Fatalf("MapRow: %v", err)
	}
	if !strings.HasPrefix(rec.Slug, "product-") || !strings.HasSuffix(rec.Slug, "-9") {
		t.Fatalf("fallback slug = %q", rec.Slug)
	}
}

func TestMapRowImagePriorityAndCap(t *testing.T) {
	r := NewFieldResolver([]string{"품명", "이미지URL", "추가이미지1", "추가이미지2"})
	row := rowWith(2, map[string]string{
		"품명":     "책상",
		"이미지URL": "https://cdn.example.com/a.png",
		"추가이미지1": "https://cdn.example.com/b.png",
		"추가이미지2": "not-a-url",
	})
	uploaded := []string{"https://cdn.example.com/u1.png", "https://cdn.example.com/u2.png"}

	rec, err := MapRow(row, uploaded, r)
	if err != nil {
		t.Fatalf("MapRow: %v", err)
	}
	if len(rec.Images) != MaxImagesPerRow {
		t.Fatalf("image count = %d", len(rec.Images))
	}
	// Uploaded embedded images come first, then URL columns; junk is skipped.
	if rec.Images[0] != uploaded[0] || rec.Images[1] != uploaded[1] {
		t.Fatalf("uploaded images not first: %v", rec.Images)
	}
	if rec.Images[2] != "https://cdn.example.com/a.png" {
		t.Fatalf("third image = %q", rec.Images[2])
	}
	if rec.ImageURL == nil || *rec.ImageURL != rec.Images[0] {
		t.Fatalf("ImageURL should be the first image")
	}
}

func TestMapRowBadgesAndFeatures(t *testing.T) {
	r := NewFieldResolver([]string{"품명", "뱃지", "특징"})
	row := rowWith(2, map[string]string{
		"품명": "책상",
		"뱃지": "신상품, 베스트,, 할인",
		"특징": "높이조절|케이블홀|  |5년 보증",
	})

	rec, err := MapRow(row, nil, r)
	if err != nil {
		t.Fatalf("MapRow: %v", err)
	}
	if len(rec.Badges) != 3 || rec.Badges[1] != "베스트" {
		t.Fatalf("badges = %v", rec.Badges)
	}
	if len(rec.Features) != 3 || rec.Features[2] != "5년 보증" {
		t.Fatalf("features = %v", rec.Features)
	}
}

func TestMapRowSpecsPrecedence(t *testing.T) {
	r := NewFieldResolver([]string{"품명", "사양", "규격"})

	// specs column wins over size.
	rec, _ := MapRow(rowWith(2, map[string]string{"품명": "a", "사양": "상세 사양", "규격": "1200×600"}), nil, r)
	if rec.Specs == nil || *rec.Specs != "상세 사양" {
		t.Fatalf("specs = %v", rec.Specs)
	}

	// size alone fills specs.
	rec, _ = MapRow(rowWith(3, map[string]string{"품명": "b", "사양": "", "규격": "1200×600"}), nil, r)
	if rec.Specs == nil || *rec.Specs != "1200×600" {
		t.Fatalf("specs from size = %v", rec.Specs)
	}

	// neither → nil, never an empty string.
	rec, _ = MapRow(rowWith(4, map[string]string{"품명": "c"}), nil, r)
	if rec.Specs != nil {
		t.Fatalf("specs should be nil, got %q", *rec.Specs)
	}
}

func TestMapRowDisplayOrder(t *testing.T) {
	r := NewFieldResolver([]string{"품명", "진열순서"})

	rec, _ := MapRow(rowWith(6, map[string]string{"품명": "a", "진열순서": ""}), nil, r)
	if rec.DisplayOrder != 6 {
		t.Fatalf("default order = %d, want row index", rec.DisplayOrder)
	}

	rec, _ = MapRow(rowWith(6, map[string]string{"품명": "a", "진열순서": "abc"}), nil, r)
	if rec.DisplayOrder != 6 {
		t.Fatalf("non-numeric order = %d, want row index", rec.DisplayOrder)
	}

	rec, _ = MapRow(rowWith(6, map[string]string{"품명": "a", "진열순서": "-3"}), nil, r)
	if rec.DisplayOrder != 0 {
		t.Fatalf("negative order = %d, want 0", rec.DisplayOrder)
	}

	rec, _ = MapRow(rowWith(6, map[string]string{"품명": "a", "진열순서": "99999"}), nil, r)
	if rec.DisplayOrder != MaxDisplayOrder {
		t.Fatalf("huge order = %d, want clamp", rec.DisplayOrder)
	}
}

func TestMapRowIsActive(t *testing.T) {
	r := NewFieldResolver([]string{"품명", "판매여부"})

	for _, falsy := range []string{"N", "no", "FALSE", "0", "아니오", "x"} {
		rec, _ := MapRow(rowWith(2, map[string]string{"품명": "a", "판매여부": falsy}), nil, r)
		if rec.IsActive {
			t.Fatalf("%q should deactivate", falsy)
		}
	}
	for _, truthy := range []string{"", "Y", "yes", "판매중"} {
		rec, _ := MapRow(rowWith(2, map[string]string{"품명": "a", "판매여부": truthy}), nil, r)
		if !rec.IsActive {
			t.Fatalf("%q should stay active", truthy)
		}
	}
}
