package importer

import (
	"strings"
	"testing"
)

func dataRow(index int, title string) ExcelRowData {
	return ExcelRowData{RowIndex: index, Values: map[string]string{"품명": title}}
}

func imageRow(index int, count int) ExcelRowData {
	imgs := make([]ExcelImageData, count)
	for i := range imgs {
		imgs[i] = ExcelImageData{Data: []byte{1}, Ext: "png", Row: index, Col: i + 1}
	}
	return ExcelRowData{RowIndex: index, Values: map[string]string{}, Images: imgs}
}

func TestRemapMovesOrphanToNearestDataRow(t *testing.T) {
	result := &ParseResult{}
	rows := []ExcelRowData{
		dataRow(2, "책상"),
		imageRow(3, 1), // 1 away from row 2, 2 away from row 5
		dataRow(5, "의자"),
	}

	kept := RemapOrphanImages(rows, result)
	if len(kept) != 2 {
		t.Fatalf("kept %d rows", len(kept))
	}
	if len(kept[0].Images) != 1 {
		t.Fatalf("row 2 images = %d", len(kept[0].Images))
	}
	if len(kept[1].Images) != 0 {
		t.Fatalf("row 5 images = %d", len(kept[1].Images))
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRemapTieGoesToEarlierRow(t *testing.T) {
	result := &ParseResult{}
	rows := []ExcelRowData{
		dataRow(2, "책상"),
		imageRow(3, 1), // exactly 1 from both neighbors
		dataRow(4, "의자"),
	}

	kept := RemapOrphanImages(rows, result)
	if len(kept[0].Images) != 1 {
		t.Fatalf("earlier row should win the tie, images = %d", len(kept[0].Images))
	}
	if len(kept[1].Images) != 0 {
		t.Fatalf("later row got the image")
	}
}

func TestRemapDropsImagesBeyondDistance(t *testing.T) {
	result := &ParseResult{}
	rows := []ExcelRowData{
		dataRow(2, "책상"),
		imageRow(6, 2), // 4 rows away — beyond MaxAnchorDistance
	}

	kept := RemapOrphanImages(rows, result)
	if len(kept) != 1 {
		t.Fatalf("kept %d rows", len(kept))
	}
	if len(kept[0].Images) != 0 {
		t.Fatalf("images travelled too far")
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "행 6") {
		t.Fatalf("warnings = %v", result.Warnings)
	}
}

func TestRemapRespectsPerRowImageCap(t *testing.T) {
	result := &ParseResult{}
	target := dataRow(2, "책상")
	target.Images = []ExcelImageData{
		{Ext: "png", Row: 2, Col: 1},
		{Ext: "png", Row: 2, Col: 2},
	}
	rows := []ExcelRowData{
		target,
		imageRow(3, 2), // only one slot left on row 2
	}

	kept := RemapOrphanImages(rows, result)
	if len(kept[0].Images) != MaxImagesPerRow {
		t.Fatalf("row 2 images = %d, want %d", len(kept[0].Images), MaxImagesPerRow)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("warnings = %v", result.Warnings)
	}
}

func TestRemapPrunesEmptyRows(t *testing.T) {
	result := &ParseResult{}
	rows := []ExcelRowData{
		dataRow(2, "책상"),
		{RowIndex: 3, Values: map[string]string{"품명": ""}},
		imageRow(9, 1), // orphan with no target; dropped, then pruned
	}

	kept := RemapOrphanImages(rows, result)
	if len(kept) != 1 || kept[0].RowIndex != 2 {
		t.Fatalf("kept = %+v", kept)
	}
}
