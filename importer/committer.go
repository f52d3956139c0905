package importer

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"gaguya-backend/models"
)

const (
	// ExcelChunkSize keeps requests small on the image-heavy path; the plain
	// CSV path can afford bigger chunks.
	ExcelChunkSize = 50
	CSVChunkSize   = 100

	// MaxRowInsertRetries bounds slug regeneration per row after a late
	// (insert-time) collision.
	MaxRowInsertRetries = 8
)

// CommitResult is what the batch run produced. Errors are per-row and
// non-fatal — partial success is the normal outcome of a big upload.
type CommitResult struct {
	Inserted int
	Errors   []string
}

// Committer inserts validated records in chunks, demoting a chunk to
// row-by-row inserts when it trips the slug unique constraint. Slug
// conflicts are the only recoverable error class; anything else aborts the
// whole batch.
type Committer struct {
	DB           *gorm.DB
	ChunkSize    int
	SlugAttempts int
}

func NewCommitter(db *gorm.DB) *Committer {
	return &Committer{DB: db, ChunkSize: ExcelChunkSize, SlugAttempts: SlugMaxAttempts}
}

// Commit inserts records in order. seen is the shared slug set (DB slugs
// plus the batch's own) and is extended with every regenerated slug.
func (c *Committer) Commit(records []ProductImportRecord, seen map[string]bool, progress ProgressFunc) (CommitResult, error) {
	result := CommitResult{}
	if len(records) == 0 {
		return result, nil
	}
	chunkSize := c.ChunkSize
	if chunkSize <= 0 {
		chunkSize = ExcelChunkSize
	}

	total := len(records)
	done := 0

	for start := 0; start < total; start += chunkSize {
		end := start + chunkSize
		if end > total {
			end = total
		}
		chunk := records[start:end]

		products := make([]models.Product, len(chunk))
		for i, rec := range chunk {
			products[i] = rec.ToModel()
		}

		err := c.DB.Create(&products).Error
		if err == nil {
			result.Inserted += len(chunk)
			done += len(chunk)
			report(progress, done, total, chunk[len(chunk)-1].Title, PhaseInserting)
			continue
		}
		if !IsUniqueViolation(err) {
			return result, fmt.Errorf("제품 저장 중 오류가 발생했습니다: %w", err)
		}

		// Someone (another import, the admin UI) claimed a slug between our
		// pre-check and the insert. Fall back to one row at a time.
		for _, rec := range chunk {
			if err := c.insertWithRetry(rec, seen); err != nil {
				if !IsUniqueViolation(err) {
					return result, fmt.Errorf("제품 저장 중 오류가 발생했습니다: %w", err)
				}
				result.Errors = append(result.Errors,
					fmt.Sprintf("행 %d: 슬러그 충돌이 반복되어 저장하지 못했습니다 (%s)", rec.RowIndex, rec.Title))
			} else {
				result.Inserted++
			}
			done++
			report(progress, done, total, rec.Title, PhaseInserting)
		}
	}

	return result, nil
}

// insertWithRetry retries a single row, regenerating the slug from its
// stripped base on every unique-constraint conflict. Returns the last
// conflict error after MaxRowInsertRetries attempts.
func (c *Committer) insertWithRetry(rec ProductImportRecord, seen map[string]bool) error {
	var lastErr error
	for attempt := 0; attempt < MaxRowInsertRetries; attempt++ {
		product := rec.ToModel()
		err := c.DB.Create(&product).Error
		if err == nil {
			seen[rec.Slug] = true
			return nil
		}
		if !IsUniqueViolation(err) {
			return err
		}
		lastErr = err

		base := StripRandomSuffix(rec.Slug)
		rec.Slug = GenerateUniqueSlug(base, seen, nil, c.SlugAttempts)
		seen[rec.Slug] = true
	}
	return lastErr
}

// IsUniqueViolation matches the drivers we run against: postgres reports
// SQLSTATE 23505, mysql "Duplicate entry", sqlite "UNIQUE constraint
// failed". Same substring approach the rest of the codebase uses for
// duplicate detection.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
