package duration

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sceneforge/sceneplan-api/internal/models"
)

// tokenPattern matches one <number><unit> pair anywhere in the expression.
// Longer unit spellings come first in the alternation so "min" is never
// consumed as "m" plus leftovers. The sign is part of the number so that
// "-5s" fails the positivity check instead of silently matching "5s".
var tokenPattern = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*(minutes|minute|mins|min|phút|phut|seconds|second|secs|sec|giây|giay|m|s)`)

// minuteUnits is the exact set of unit spellings that scale by 60. Every
// other recognized unit counts as seconds.
var minuteUnits = map[string]bool{
	"m":       true,
	"min":     true,
	"mins":    true,
	"minute":  true,
	"minutes": true,
	"phút":    true,
	"phut":    true,
}

// MaxSeconds bounds accepted durations to one day of footage. ParseFloat
// happily returns values like 1e20, and a total that large would overflow
// the int conversions downstream scene math depends on, so anything above
// the bound is invalid rather than merely impractical.
const MaxSeconds = 24 * 60 * 60

// Parse converts a free-text duration expression into canonical seconds.
//
// English and Vietnamese unit spellings are recognized in any mix and any
// order; multiple number+unit pairs sum, so "1m 30s" is 90. A string with no
// recognized pair at all is parsed as a bare number of seconds. The total
// must be strictly greater than zero and at most MaxSeconds; anything else
// returns an INVALID_DURATION error carrying the original expression.
func Parse(expr string) (float64, error) {
	normalized := strings.ToLower(strings.TrimSpace(expr))
	normalized = strings.ReplaceAll(normalized, ",", ".")

	var total float64
	matches := tokenPattern.FindAllStringSubmatch(normalized, -1)
	for _, match := range matches {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return 0, models.NewInvalidDurationError(expr)
		}
		if minuteUnits[match[2]] {
			total += value * 60
		} else {
			total += value
		}
	}

	if len(matches) == 0 {
		value, err := strconv.ParseFloat(normalized, 64)
		if err != nil {
			return 0, models.NewInvalidDurationError(expr)
		}
		total = value
	}

	if math.IsNaN(total) || total <= 0 || total > MaxSeconds {
		return 0, models.NewInvalidDurationError(expr)
	}
	return total, nil
}

// Describe renders seconds as a short human-readable summary, e.g. "1m 30s"
// or "45s". Used for logs and the duration preview endpoint; it never feeds
// back into scene math. Inputs normally arrive Parse-validated; the clamp
// keeps the int conversion defined for direct callers.
func Describe(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	} else if seconds > MaxSeconds {
		seconds = MaxSeconds
	}
	whole := int(math.Round(seconds))
	if whole < 60 {
		return strconv.Itoa(whole) + "s"
	}
	mins := whole / 60
	secs := whole % 60
	if secs == 0 {
		return strconv.Itoa(mins) + "m"
	}
	return strconv.Itoa(mins) + "m " + strconv.Itoa(secs) + "s"
}
