package importer

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MaxImageBytes is the per-image size cap (5MB). Oversized images are
// dropped with a warning, never a parse failure.
const MaxImageBytes = 5 * 1024 * 1024

var allowedImageExts = map[string]bool{
	"png": true, "jpeg": true, "jpg": true, "gif": true, "webp": true,
}

// ReadWorkbook parses the first sheet of an xlsx/xls workbook into
// header-mapped rows with their embedded images attached.
//
// Headers come from row 1; a trailing "*" marker (template notation for
// required columns) is stripped, so "품명 *" keys cells under "품명".
// Rows survive if they have any cell content or at least one image; a second
// pass moves images anchored on empty rows to the nearest data row (≤2 away).
//
// Only a fully unreadable file, an empty header row, or zero data rows are
// fatal. Everything touching a single image or row becomes a warning.
func ReadWorkbook(r io.Reader) (*ParseResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("엑셀 파일을 열 수 없습니다: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("시트가 없습니다")
	}
	sheet := sheets[0]

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("시트를 읽을 수 없습니다: %w", err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("빈 파일입니다 (헤더 행이 없습니다)")
	}

	headers := normalizeHeaders(cells[0])
	if len(headers) == 0 {
		return nil, fmt.Errorf("헤더를 찾을 수 없습니다")
	}

	result := &ParseResult{Headers: headers}

	imagesByRow := extractImages(f, sheet, result)

	for i := 1; i < len(cells); i++ {
		rowIndex := i + 1 // spreadsheet numbering
		values := map[string]string{}
		for c, header := range headers {
			if header == "" {
				continue
			}
			v := ""
			if c < len(cells[i]) {
				v = strings.TrimSpace(cells[i][c])
			}
			values[header] = v
		}

		row := ExcelRowData{RowIndex: rowIndex, Values: values, Images: imagesByRow[rowIndex]}
		delete(imagesByRow, rowIndex)
		if row.HasData() || len(row.Images) > 0 {
			result.Rows = append(result.Rows, row)
		}
	}

	// Images anchored past the last data row still deserve the remap pass:
	// keep them as image-only rows for now.
	for rowIndex, imgs := range imagesByRow {
		result.Rows = append(result.Rows, ExcelRowData{
			RowIndex: rowIndex,
			Values:   map[string]string{},
			Images:   imgs,
		})
	}
	sort.Slice(result.Rows, func(a, b int) bool {
		return result.Rows[a].RowIndex < result.Rows[b].RowIndex
	})

	result.Rows = RemapOrphanImages(result.Rows, result)

	if len(result.Rows) == 0 {
		return nil, fmt.Errorf("가져올 데이터 행이 없습니다")
	}
	return result, nil
}

// normalizeHeaders trims whitespace and the trailing required-column marker.
// Trailing empty columns are cut off.
func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	last := -1
	for i, h := range raw {
		h = strings.TrimSpace(h)
		h = strings.TrimSpace(strings.TrimSuffix(h, "*"))
		headers[i] = h
		if h != "" {
			last = i
		}
	}
	return headers[:last+1]
}

// extractImages pulls every embedded picture with a resolvable anchor,
// validated and grouped by row, at most MaxImagesPerRow per row.
func extractImages(f *excelize.File, sheet string, result *ParseResult) map[int][]ExcelImageData {
	imagesByRow := map[int][]ExcelImageData{}

	cellRefs, err := f.GetPictureCells(sheet)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("이미지 목록을 읽을 수 없습니다: %v", err))
		return imagesByRow
	}
	sort.Strings(cellRefs)

	var images []ExcelImageData
	for _, ref := range cellRefs {
		pics, err := f.GetPictures(sheet, ref)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("이미지(%s)를 추출할 수 없습니다: %v", ref, err))
			continue
		}
		row, col, ok := resolveAnchor(ref)
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("이미지 앵커(%s)를 해석할 수 없습니다 — 건너뜁니다", ref))
			continue
		}
		if row < 2 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("헤더 행에 걸린 이미지(%s)는 무시합니다", ref))
			continue
		}

		for _, pic := range pics {
			ext := strings.ToLower(strings.TrimPrefix(pic.Extension, "."))
			if !allowedImageExts[ext] {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("행 %d: 지원하지 않는 이미지 형식(%s)", row, ext))
				continue
			}
			if len(pic.File) > MaxImageBytes {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("행 %d: 이미지가 5MB를 초과하여 제외합니다", row))
				continue
			}
			images = append(images, ExcelImageData{Data: pic.File, Ext: ext, Row: row, Col: col})
		}
	}

	sort.SliceStable(images, func(a, b int) bool {
		if images[a].Row != images[b].Row {
			return images[a].Row < images[b].Row
		}
		return images[a].Col < images[b].Col
	})

	for _, img := range images {
		if len(imagesByRow[img.Row]) >= MaxImagesPerRow {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("행 %d: 이미지는 행당 최대 %d개까지만 사용합니다", img.Row, MaxImagesPerRow))
			continue
		}
		imagesByRow[img.Row] = append(imagesByRow[img.Row], img)
	}
	return imagesByRow
}

// resolveAnchor turns a picture anchor into a 1-based (row, col). Drawing
// anchors show up in two encodings depending on how the file was authored:
// a spreadsheet cell reference ("G2") or a structured "col,row" pair of
// 1-based indices. Anything else is unresolvable.
func resolveAnchor(ref string) (row, col int, ok bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, 0, false
	}

	if c, r, err := excelize.CellNameToCoordinates(ref); err == nil {
		return r, c, true
	}

	parts := strings.Split(ref, ",")
	if len(parts) == 2 {
		c, errC := strconv.Atoi(strings.TrimSpace(parts[0]))
		r, errR := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errC == nil && errR == nil && c > 0 && r > 0 {
			return r, c, true
		}
	}
	return 0, 0, false
}
