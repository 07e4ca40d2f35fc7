package i18n

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Locale is a supported display language.
type Locale string

const (
	English Locale = "en"
	Chinese Locale = "zh"
)

// Default is used for empty or unknown locales.
const Default = English

// ParseLocale maps a locale tag such as "zh-CN" or "en_US" onto a supported
// Locale. Anything else reads as Default.
func ParseLocale(s string) Locale {
	tag := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	switch Locale(tag) {
	case English, Chinese:
		return Locale(tag)
	default:
		return Default
	}
}

// Supported lists every locale with a string table.
func Supported() []Locale {
	return []Locale{English, Chinese}
}

// T returns the string for key in locale l, falling back to English and then
// to the key itself.
func T(l Locale, key string) string {
	if s, ok := tables[ParseLocale(string(l))][key]; ok {
		return s
	}
	if s, ok := tables[English][key]; ok {
		return s
	}
	return key
}

// Format looks up key and applies args to it as a fmt template.
func Format(l Locale, key string, args ...any) string {
	return fmt.Sprintf(T(l, key), args...)
}

// Fixed renders v with exactly places decimals, rounding half away from zero.
// Non-finite values render as NaN, +Inf or -Inf.
func Fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
