package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Canonical fields and the header aliases (Korean first — that's what the
// distributed templates use) that may carry them. Resolved once per file,
// not per row.
var fieldAliasTable = []struct {
	canonical string
	aliases   []string
}{
	{"title", []string{"품명", "제품명", "상품명", "title"}},
	{"slug", []string{"슬러그", "slug"}},
	{"description", []string{"설명", "제품설명", "상세설명", "description"}},
	{"image_url", []string{"이미지URL", "이미지url", "image_url"}},
	{"image_url2", []string{"추가이미지1", "image_url2"}},
	{"image_url3", []string{"추가이미지2", "image_url3"}},
	{"badges", []string{"뱃지", "배지", "badges"}},
	{"features", []string{"특징", "주요특징", "features"}},
	{"specs", []string{"사양", "specs"}},
	{"size", []string{"규격", "크기", "size"}},
	{"main_category", []string{"대분류", "메인카테고리", "카테고리", "main_category", "category"}},
	{"subcategory", []string{"소분류", "서브카테고리", "subcategory"}},
	{"display_order", []string{"진열순서", "순서", "display_order"}},
	{"procurement_id", []string{"조달식별번호", "조달번호", "procurement_id"}},
	{"price", []string{"가격", "판매가", "price"}},
	{"is_active", []string{"판매여부", "활성화", "is_active"}},
}

// FieldResolver maps canonical field names to the header actually present
// in this file.
type FieldResolver struct {
	headerFor map[string]string
}

// NewFieldResolver matches the alias table against the file's headers.
// First present alias wins.
func NewFieldResolver(headers []string) *FieldResolver {
	present := map[string]bool{}
	for _, h := range headers {
		if h != "" {
			present[h] = true
		}
	}

	r := &FieldResolver{headerFor: map[string]string{}}
	for _, f := range fieldAliasTable {
		for _, alias := range f.aliases {
			if present[alias] {
				r.headerFor[f.canonical] = alias
				break
			}
		}
	}
	return r
}

// Get returns the cell value for a canonical field, "" when the column is
// absent.
func (r *FieldResolver) Get(row ExcelRowData, canonical string) string {
	header, ok := r.headerFor[canonical]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row.Values[header])
}

// Has reports whether the file carries a column for the canonical field.
func (r *FieldResolver) Has(canonical string) bool {
	_, ok := r.headerFor[canonical]
	return ok
}

// MapRow turns one row plus its already-uploaded image URLs into an import
// record. Title is the only hard requirement; everything else defaults or
// truncates. The returned record's Slug is a base candidate — the caller
// runs it through GenerateUniqueSlug before commit.
func MapRow(row ExcelRowData, uploadedURLs []string, resolver *FieldResolver) (*ProductImportRecord, error) {
	title := truncateRunes(resolver.Get(row, "title"), MaxTitleLen)
	if title == "" {
		return nil, fmt.Errorf("행 %d: 품명이 필요합니다.", row.RowIndex)
	}

	slug := resolver.Get(row, "slug")
	if slug == "" {
		slug = Slugify(title)
	} else {
		slug = Slugify(slug)
	}
	if slug == "" {
		slug = fmt.Sprintf("product-%d-%d", time.Now().UnixMilli(), row.RowIndex)
	}
	slug = truncateRunes(slug, MaxSlugLen)

	rec := &ProductImportRecord{
		RowIndex: row.RowIndex,
		Slug:     slug,
		Title:    title,
		IsActive: true,
	}

	rec.Description = optional(truncateRunes(resolver.Get(row, "description"), MaxDescriptionLen))

	// Uploaded embedded images first, then explicit URL columns, capped at 3.
	images := append([]string{}, uploadedURLs...)
	for _, field := range []string{"image_url", "image_url2", "image_url3"} {
		if u := resolver.Get(row, field); isImageURL(u) {
			images = append(images, u)
		}
	}
	if len(images) > MaxImagesPerRow {
		images = images[:MaxImagesPerRow]
	}
	rec.Images = images
	if len(images) > 0 {
		rec.ImageURL = &images[0]
	}

	rec.Badges = splitCapped(resolver.Get(row, "badges"), ",", MaxBadges, MaxBadgeLen)
	rec.Features = splitCapped(resolver.Get(row, "features"), "|", MaxFeatures, MaxFeatureLen)

	// specs stays opaque free text — the bulk path never JSON-parses it.
	if v := resolver.Get(row, "specs"); v != "" {
		rec.Specs = optional(truncateRunes(v, MaxSpecsLen))
	} else if v := resolver.Get(row, "size"); v != "" {
		rec.Specs = optional(truncateRunes(v, MaxSizeSpecLen))
	}

	rec.MainCategory = optional(truncateRunes(resolver.Get(row, "main_category"), MaxCategoryLen))
	rec.Subcategory = optional(truncateRunes(resolver.Get(row, "subcategory"), MaxCategoryLen))
	rec.ProcurementID = optional(truncateRunes(resolver.Get(row, "procurement_id"), MaxProcurementLen))
	rec.Price = truncateRunes(resolver.Get(row, "price"), MaxPriceLen)

	rec.DisplayOrder = parseDisplayOrder(resolver.Get(row, "display_order"), row.RowIndex)

	if v := resolver.Get(row, "is_active"); v != "" {
		rec.IsActive = !isFalsy(v)
	}

	return rec, nil
}

// parseDisplayOrder clamps into [0, MaxDisplayOrder]; non-numeric or absent
// values default to the row index so imported order mirrors sheet order.
func parseDisplayOrder(v string, rowIndex int) int {
	order, err := strconv.Atoi(v)
	if v == "" || err != nil {
		order = rowIndex
	}
	if order < 0 {
		order = 0
	}
	if order > MaxDisplayOrder {
		order = MaxDisplayOrder
	}
	return order
}

func splitCapped(v, sep string, maxItems, maxItemLen int) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, sep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, truncateRunes(part, maxItemLen))
		if len(out) == maxItems {
			break
		}
	}
	return out
}

func isImageURL(u string) bool {
	return strings.HasPrefix(u, "http://") ||
		strings.HasPrefix(u, "https://") ||
		strings.HasPrefix(u, "/")
}

func isFalsy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "n", "no", "false", "0", "아니오", "x":
		return true
	}
	return false
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
