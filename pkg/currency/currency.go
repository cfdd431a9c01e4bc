package currency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts travel through the service as integer minor units (cents). This
// package converts between that representation and major-unit strings at the
// API boundary.

var ErrMalformedAmount = errors.New("malformed amount")

var usd = message.NewPrinter(language.AmericanEnglish)

// ParseMajor converts a major-unit decimal string ("50", "50.5", "50.00")
// into cents without going through binary floating point. More than two
// fractional digits is an error.
func ParseMajor(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMalformedAmount
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" || len(frac) > 2 {
		return 0, ErrMalformedAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrMalformedAmount
	}
	centsPart, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrMalformedAmount
	}

	cents := dollars*100 + centsPart
	if neg {
		cents = -cents
	}
	return cents, nil
}

// String renders cents as a plain major-unit decimal, e.g. "50.00".
func String(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// FormatUSD renders cents as a grouped whole-dollar display string, e.g.
// "$1,234", matching the site's en-US currency formatting.
func FormatUSD(cents int64) string {
	return usd.Sprintf("$%d", cents/100)
}

// Miles converts a raised amount to miles at the fundraiser's 1:1
// dollars-to-miles ratio.
func Miles(cents int64) int {
	return int(cents / 100)
}
