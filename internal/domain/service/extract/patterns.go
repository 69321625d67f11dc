package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"shipquote/internal/domain/value"
)

// space matches what \s matches in JavaScript. Go's \s is ASCII only, which
// misses the non-breaking spaces common in HTML mail.
const space = `[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]`

//nolint:gochecknoglobals
var (
	weightPattern = regexp.MustCompile(
		`(?i)\b(\d+(\.\d+)?)` + space + `*(kg|lb|lbs|kilograms|pounds)\b`,
	)
	dimensionsPattern = regexp.MustCompile(
		`(?i)\b(\d+(\.\d+)?)` + space + `*x` + space + `*(\d+(\.\d+)?)` + space + `*x` + space +
			`*(\d+(\.\d+)?)` + space + `*(cm|mm|in|inch|inches|meters|metres)\b`,
	)
)

// Weight returns the first "<number> <unit>" weight mention in text, or nil.
func Weight(text string) *value.Weight {
	m := firstMatch(weightPattern, text, 3)
	if m == nil {
		return nil
	}

	v, ok := parseNumber(m[1])
	if !ok {
		return nil
	}

	return &value.Weight{
		Value: v,
		Unit:  value.WeightUnit(strings.ToLower(m[3])),
	}
}

// Dimensions returns the first "<l> x <w> x <h> <unit>" mention in text, or
// nil. The unit is kept as written (lowercased), values are not converted.
func Dimensions(text string) *value.Dimensions {
	m := firstMatch(dimensionsPattern, text, 7)
	if m == nil {
		return nil
	}

	var sides [3]float64

	for i, group := range []string{m[1], m[3], m[5]} {
		v, ok := parseNumber(group)
		if !ok {
			return nil
		}

		sides[i] = v
	}

	return &value.Dimensions{
		Length: sides[0],
		Width:  sides[1],
		Height: sides[2],
		Unit:   value.LengthUnit(strings.ToLower(m[7])),
	}
}

// firstMatch returns the first match whose unit group is plain ASCII. (?i)
// also folds the Kelvin sign into k and the long s into s, and neither is a
// unit anyone writes.
func firstMatch(re *regexp.Regexp, text string, unitGroup int) []string {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if isASCII(m[unitGroup]) {
			return m
		}
	}

	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

// parseNumber rejects digit runs too long to fit a float64; they would
// otherwise become +Inf, which JSON cannot carry.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}
