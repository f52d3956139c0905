package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV parses the text-based import path. Same header normalization and
// row semantics as the workbook reader, minus embedded images — CSV can't
// carry them.
func ReadCSV(r io.Reader) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // templates get edited by hand; tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV 파일을 읽을 수 없습니다: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("빈 파일입니다 (헤더 행이 없습니다)")
	}

	first := records[0]
	if len(first) > 0 {
		first[0] = strings.TrimPrefix(first[0], "\uFEFF") // Excel exports love a BOM
	}
	headers := normalizeHeaders(first)
	if len(headers) == 0 {
		return nil, fmt.Errorf("헤더를 찾을 수 없습니다")
	}

	result := &ParseResult{Headers: headers}
	for i := 1; i < len(records); i++ {
		values := map[string]string{}
		for c, header := range headers {
			if header == "" {
				continue
			}
			v := ""
			if c < len(records[i]) {
				v = strings.TrimSpace(records[i][c])
			}
			values[header] = v
		}
		row := ExcelRowData{RowIndex: i + 1, Values: values}
		if row.HasData() {
			result.Rows = append(result.Rows, row)
		}
	}

	if len(result.Rows) == 0 {
		return nil, fmt.Errorf("가져올 데이터 행이 없습니다")
	}
	return result, nil
}
