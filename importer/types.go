package importer

import (
	"encoding/json"

	"gorm.io/datatypes"

	"gaguya-backend/models"
)

// Field caps for ProductImportRecord. Counted in runes — most of this data
// is Korean.
const (
	MaxSlugLen        = 100
	MaxTitleLen       = 200
	MaxDescriptionLen = 5000
	MaxSpecsLen       = 1000
	MaxSizeSpecLen    = 200
	MaxCategoryLen    = 100
	MaxProcurementLen = 50
	MaxPriceLen       = 50

	MaxImagesPerRow = 3
	MaxBadges       = 10
	MaxBadgeLen     = 50
	MaxFeatures     = 20
	MaxFeatureLen   = 500

	MaxDisplayOrder = 10000
)

// ExcelImageData is one embedded picture pulled out of the workbook.
// Row/Col are the 1-based anchor it resolved to.
type ExcelImageData struct {
	Data []byte
	Ext  string // without dot, lowercased
	Row  int
	Col  int
}

// ExcelRowData is one parsed data row. Values maps normalized headers to
// trimmed cell text.
type ExcelRowData struct {
	RowIndex int // 1-based, as shown in the spreadsheet UI
	Values   map[string]string
	Images   []ExcelImageData
}

// HasData reports whether any mapped cell is non-empty.
func (r ExcelRowData) HasData() bool {
	for _, v := range r.Values {
		if v != "" {
			return true
		}
	}
	return false
}

// ParseResult carries the surviving rows plus everything worth telling the
// user about. Warnings never abort a parse.
type ParseResult struct {
	Rows     []ExcelRowData
	Headers  []string
	Warnings []string
}

// ProductImportRecord is the validated unit handed to the committer. Slug
// holds the allocator's final choice by the time Commit sees it.
type ProductImportRecord struct {
	RowIndex int

	Slug          string
	Title         string
	Description   *string
	ImageURL      *string
	Images        []string
	Badges        []string
	Features      []string
	Specs         *string
	MainCategory  *string
	Subcategory   *string
	DisplayOrder  int
	ProcurementID *string
	Price         string
	IsActive      bool
}

// ToModel converts the record to the persisted product shape.
func (r ProductImportRecord) ToModel() models.Product {
	p := models.Product{
		Slug:          r.Slug,
		Title:         r.Title,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		Specs:         r.Specs,
		MainCategory:  r.MainCategory,
		Subcategory:   r.Subcategory,
		DisplayOrder:  r.DisplayOrder,
		ProcurementID: r.ProcurementID,
		Price:         r.Price,
	}
	active := r.IsActive
	p.IsActive = &active
	p.Images = marshalJSON(r.Images)
	p.Badges = marshalJSON(r.Badges)
	p.Features = marshalJSON(r.Features)
	return p
}

func marshalJSON(ss []string) datatypes.JSON {
	if len(ss) == 0 {
		return nil
	}
	b, err := json.Marshal(ss)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// Import phases, in order. Progress callbacks are monotonic in current
// within one phase.
const (
	PhaseParsing   = "parsing"
	PhaseUploading = "uploading-images"
	PhaseInserting = "inserting"
	PhaseDone      = "done"
)

// ProgressFunc receives (current, total, label, phase). May be nil.
type ProgressFunc func(current, total int, label, phase string)

func report(fn ProgressFunc, current, total int, label, phase string) {
	if fn != nil {
		fn(current, total, label, phase)
	}
}
