package importer

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

const (
	// SlugMaxAttempts is for the spreadsheet path; the CSV path historically
	// gives up earlier.
	SlugMaxAttempts    = 20
	CSVSlugMaxAttempts = 10

	slugSuffixChars = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var (
	slugDisallowed  = regexp.MustCompile(`[^a-z0-9가-힣-]`)
	hyphenRuns      = regexp.MustCompile(`-{2,}`)
	randSuffixAtEnd = regexp.MustCompile(`-[a-z0-9]{4}$`)
)

// Slugify derives a URL-safe identifier from a product title. Korean
// syllables are kept as-is — slugs like "책상" are expected.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.Join(strings.Fields(s), "-")
	s = slugDisallowed.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return truncateRunes(s, 80)
}

// GenerateUniqueSlug returns base if it collides with nothing, otherwise
// retries with a random 4-char suffix up to maxAttempts, and finally forces
// uniqueness with a millisecond timestamp. Termination is structural, not
// probabilistic.
func GenerateUniqueSlug(base string, existing, inFlight map[string]bool, maxAttempts int) string {
	if maxAttempts <= 0 {
		maxAttempts = SlugMaxAttempts
	}
	taken := func(s string) bool { return existing[s] || inFlight[s] }

	if !taken(base) {
		return base
	}
	for i := 0; i < maxAttempts; i++ {
		candidate := base + "-" + randomSuffix(4)
		if !taken(candidate) {
			return candidate
		}
	}
	return fmt.Sprintf("%s-%d", base, time.Now().UnixMilli())
}

// StripRandomSuffix removes one trailing "-xxxx" random suffix so a slug
// that failed at insert time doesn't compound suffixes across retries
// ("foo-ab12-cd34" is a bug, not a slug).
func StripRandomSuffix(slug string) string {
	if stripped := randSuffixAtEnd.ReplaceAllString(slug, ""); stripped != "" {
		return stripped
	}
	return slug
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = slugSuffixChars[rand.Intn(len(slugSuffixChars))]
	}
	return string(b)
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
