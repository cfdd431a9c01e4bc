package validate

import (
	"regexp"
	"strings"
)

const (
	// MinAmountCents is the smallest accepted donation, one currency unit.
	MinAmountCents int64 = 100
	// MaxAmountCents is a sanity ceiling for a single donation.
	MaxAmountCents int64 = 99_999_900
)

var (
	slugRe     = regexp.MustCompile(`^[a-z0-9-]+$`)
	hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	slugifyRe  = regexp.MustCompile(`[^a-z0-9]+`)
)

func IsSlug(s string) bool {
	return slugRe.MatchString(s)
}

func IsHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

func IsAmountInRange(cents int64) bool {
	return cents >= MinAmountCents && cents <= MaxAmountCents
}

// Slugify derives a URL-safe slug from a display name.
func Slugify(name string) string {
	s := slugifyRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
