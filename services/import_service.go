package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"gaguya-backend/config"
	"gaguya-backend/importer"
	"gaguya-backend/models"
	"gaguya-backend/storage"
)

// ImportReport is what the admin UI renders after a bulk upload: full
// success, partial success with itemized counts, or (via the error return)
// one hard failure reason.
type ImportReport struct {
	TotalRows int      `json:"totalRows"`
	Inserted  int      `json:"inserted"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors"`
	Warnings  []string `json:"warnings"`
}

type ImportService struct {
	db   *gorm.DB
	disk storage.Disk
}

func NewImportService(db *gorm.DB, disk storage.Disk) *ImportService {
	return &ImportService{db: db, disk: disk}
}

// ImportExcel runs the full spreadsheet pipeline: parse, map, upload
// embedded images, allocate slugs, commit in chunks. Rows are strictly
// sequential — slug allocation must see each row's slug before the next row
// is considered — while the images inside one row upload concurrently.
func (s *ImportService) ImportExcel(ctx context.Context, r io.Reader, progress importer.ProgressFunc) (*ImportReport, error) {
	parsed, err := importer.ReadWorkbook(r)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, parsed, importer.ExcelChunkSize, importer.SlugMaxAttempts, progress)
}

// ImportCSV is the simpler text path: same mapping rules, no images,
// bigger chunks, fewer slug attempts (legacy behavior kept).
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader, progress importer.ProgressFunc) (*ImportReport, error) {
	parsed, err := importer.ReadCSV(r)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, parsed, importer.CSVChunkSize, importer.CSVSlugMaxAttempts, progress)
}

func (s *ImportService) run(ctx context.Context, parsed *importer.ParseResult, chunkSize, slugAttempts int, progress importer.ProgressFunc) (*ImportReport, error) {
	report := &ImportReport{
		TotalRows: len(parsed.Rows),
		Warnings:  parsed.Warnings,
	}
	notify(progress, len(parsed.Rows), len(parsed.Rows), "", importer.PhaseParsing)

	existing, err := s.existingSlugs()
	if err != nil {
		return nil, fmt.Errorf("기존 슬러그를 조회할 수 없습니다: %w", err)
	}

	resolver := importer.NewFieldResolver(parsed.Headers)
	uploader := importer.NewImageUploader(s.disk)
	batchSlugs := map[string]bool{}

	var records []importer.ProductImportRecord
	for i, row := range parsed.Rows {
		// Per-row image fan-out; the join happens inside UploadRow, so the
		// next row never starts while this row's uploads are in flight.
		urls, uploadErrs := uploader.UploadRow(ctx, row.RowIndex, row.Images)
		report.Warnings = append(report.Warnings, uploadErrs...)
		if len(row.Images) > 0 {
			notify(progress, i+1, len(parsed.Rows), rowLabel(row, resolver), importer.PhaseUploading)
		}

		rec, mapErr := importer.MapRow(row, urls, resolver)
		if mapErr != nil {
			report.Errors = append(report.Errors, mapErr.Error())
			report.Skipped++
			continue
		}

		rec.Slug = importer.GenerateUniqueSlug(rec.Slug, existing, batchSlugs, slugAttempts)
		batchSlugs[rec.Slug] = true
		records = append(records, *rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("가져올 수 있는 유효한 제품이 없습니다")
	}

	// The committer needs one shared set: DB slugs plus this batch's.
	seen := existing
	for slug := range batchSlugs {
		seen[slug] = true
	}

	committer := importer.NewCommitter(s.db)
	committer.ChunkSize = chunkSize
	committer.SlugAttempts = slugAttempts

	result, err := committer.Commit(records, seen, progress)
	if err != nil {
		return nil, err
	}

	report.Inserted = result.Inserted
	report.Errors = append(report.Errors, result.Errors...)
	report.Skipped += len(records) - result.Inserted

	if result.Inserted > 0 {
		config.CacheForget(productCacheKey)
	}

	notify(progress, len(records), len(records), "", importer.PhaseDone)
	return report, nil
}

func (s *ImportService) existingSlugs() (map[string]bool, error) {
	var slugs []string
	if err := s.db.Model(&models.Product{}).Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		set[slug] = true
	}
	return set, nil
}

func rowLabel(row importer.ExcelRowData, resolver *importer.FieldResolver) string {
	if title := resolver.Get(row, "title"); title != "" {
		return title
	}
	return fmt.Sprintf("행 %d", row.RowIndex)
}

func notify(fn importer.ProgressFunc, current, total int, label, phase string) {
	if fn != nil {
		fn(current, total, label, phase)
	}
}

// DetectFormat picks the import path from filename/MIME. xlsx/xls take the
// workbook reader; csv takes the text reader.
func DetectFormat(filename, mimeType string) (string, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".xlsx"), strings.HasSuffix(name, ".xls"):
		return "excel", nil
	case strings.HasSuffix(name, ".csv"):
		return "csv", nil
	}
	switch mimeType {
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-excel":
		return "excel", nil
	case "text/csv":
		return "csv", nil
	}
	return "", fmt.Errorf("지원하지 않는 파일 형식입니다 (.xlsx/.xls/.csv만 가능)")
}
