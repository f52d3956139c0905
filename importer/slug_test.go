package importer

import (
	"regexp"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"사무용 책상":           "사무용-책상",
		"  Office Desk  ":  "office-desk",
		"책상 (1200×600)":    "책상-1200600",
		"A---B":            "a-b",
		"-leading-trail-":  "leading-trail",
		"!@#$%":            "",
		"회의용   테이블  Pro":   "회의용-테이블-pro",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugifyTruncatesTo80Runes(t *testing.T) {
	got := Slugify(strings.Repeat("가", 120))
	if n := len([]rune(got)); n != 80 {
		t.Fatalf("got %d runes, want 80", n)
	}
}

func TestGenerateUniqueSlugReturnsFreeBase(t *testing.T) {
	existing := map[string]bool{"의자": true}
	if got := GenerateUniqueSlug("책상", existing, nil, SlugMaxAttempts); got != "책상" {
		t.Fatalf("got %q, want base unchanged", got)
	}
}

func TestGenerateUniqueSlugSuffixesOnCollision(t *testing.T) {
	existing := map[string]bool{"책상": true}
	got := GenerateUniqueSlug("책상", existing, nil, SlugMaxAttempts)
	if !regexp.MustCompile(`^책상-[a-z0-9]{4}$`).MatchString(got) {
		t.Fatalf("got %q, want 책상-xxxx", got)
	}
}

func TestGenerateUniqueSlugChecksInFlightSet(t *testing.T) {
	inFlight := map[string]bool{"책상": true}
	got := GenerateUniqueSlug("책상", map[string]bool{}, inFlight, SlugMaxAttempts)
	if got == "책상" {
		t.Fatal("in-flight slug was reused")
	}
}

func TestGenerateUniqueSlugNeverRepeats(t *testing.T) {
	existing := map[string]bool{"책상": true}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		slug := GenerateUniqueSlug("책상", existing, nil, SlugMaxAttempts)
		if seen[slug] {
			t.Fatalf("slug %q issued twice", slug)
		}
		seen[slug] = true
		existing[slug] = true
	}
}

func TestStripRandomSuffix(t *testing.T) {
	cases := map[string]string{
		"책상-ab12":      "책상",
		"책상-ab12-cd34": "책상-ab12", // strips one layer only
		"책상":           "책상",
		"desk-chair":   "desk-chair", // 5 chars, not a suffix
		"-ab12":        "-ab12",      // stripping would empty it
	}
	for in, want := range cases {
		if got := StripRandomSuffix(in); got != want {
			t.Fatalf("StripRandomSuffix(%q) = %q, want %q", in, got, want)
		}
	}
}
