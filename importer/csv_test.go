package importer

import (
	"strings"
	"testing"
)

func TestReadCSVBasic(t *testing.T) {
	csv := "품명 *,규격,가격\n" +
		"책상,1200×600,180000\n" +
		"의자,,95000\n"

	parsed, err := ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	// Required-column marker stripped from the header.
	if parsed.Headers[0] != "품명" {
		t.Fatalf("headers = %v", parsed.Headers)
	}
	if len(parsed.Rows) != 2 {
		t.Fatalf("rows = %d", len(parsed.Rows))
	}
	if parsed.Rows[0].RowIndex != 2 || parsed.Rows[0].Values["품명"] != "책상" {
		t.Fatalf("first row = %+v", parsed.Rows[0])
	}
	if parsed.Rows[1].Values["규격"] != "" {
		t.Fatalf("missing cell should be empty, got %q", parsed.Rows[1].Values["규격"])
	}
}

func TestReadCSVStripsBOM(t *testing.T) {
	csv := "\uFEFF품명,가격\n책상,180000\n"

	parsed, err := ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if parsed.Headers[0] != "품명" {
		t.Fatalf("BOM survived: %q", parsed.Headers[0])
	}
}

func TestReadCSVToleratesRaggedRows(t *testing.T) {
	csv := "품명,규격,가격\n책상,1200×600\n의자,600×600,95000,extra\n"

	parsed, err := ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(parsed.Rows) != 2 {
		t.Fatalf("rows = %d", len(parsed.Rows))
	}
}

func TestReadCSVSkipsEmptyRows(t *testing.T) {
	csv := "품명,가격\n책상,180000\n,\n의자,95000\n"

	parsed, err := ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(parsed.Rows) != 2 {
		t.Fatalf("rows = %d", len(parsed.Rows))
	}
	// Row indexes keep spreadsheet numbering even across skipped rows.
	if parsed.Rows[1].RowIndex != 4 {
		t.Fatalf("second row index = %d, want 4", parsed.Rows[1].RowIndex)
	}
}

func TestReadCSVErrors(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("empty file should fail")
	}
	if _, err := ReadCSV(strings.NewReader("품명,가격\n")); err == nil {
		t.Fatal("header-only file should fail")
	}
}
