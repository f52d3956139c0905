package importer

import "fmt"

// MaxAnchorDistance bounds how far (in rows) an orphaned image may travel to
// reach a data row. Users drop pictures roughly next to the row they mean;
// exact-row matching would lose most of them.
const MaxAnchorDistance = 2

// RemapOrphanImages moves images sitting on empty rows onto the nearest row
// that actually has data, within MaxAnchorDistance. Ties break toward the
// earlier row. Images that would overflow the target's 3-image cap are
// dropped with a warning, and rows left with neither data nor images are
// removed.
func RemapOrphanImages(rows []ExcelRowData, result *ParseResult) []ExcelRowData {
	for i := range rows {
		if rows[i].HasData() || len(rows[i].Images) == 0 {
			continue
		}

		target := nearestDataRow(rows, i)
		if target < 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("행 %d: 근처에 데이터 행이 없어 이미지 %d개를 버립니다", rows[i].RowIndex, len(rows[i].Images)))
			rows[i].Images = nil
			continue
		}

		for _, img := range rows[i].Images {
			if len(rows[target].Images) >= MaxImagesPerRow {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("행 %d: 행 %d의 이미지 한도를 초과하여 이미지를 버립니다",
						rows[i].RowIndex, rows[target].RowIndex))
				continue
			}
			rows[target].Images = append(rows[target].Images, img)
		}
		rows[i].Images = nil
	}

	kept := rows[:0]
	for _, row := range rows {
		if row.HasData() || len(row.Images) > 0 {
			kept = append(kept, row)
		}
	}
	return kept
}

// nearestDataRow finds the index of the closest row with data within
// MaxAnchorDistance of rows[from], preferring the earlier row on ties.
func nearestDataRow(rows []ExcelRowData, from int) int {
	best := -1
	bestDist := MaxAnchorDistance + 1
	for i := range rows {
		if i == from || !rows[i].HasData() {
			continue
		}
		dist := rows[from].RowIndex - rows[i].RowIndex
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			bestDist = dist
			best = i
		}
		// Equal distance: rows are scanned in ascending RowIndex order, so
		// the earlier row already won.
	}
	return best
}
