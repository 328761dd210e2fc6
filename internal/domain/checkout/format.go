package checkout

import (
	"strings"
	"unicode"
)

const (
	cardGroupSize    = 4
	cardDisplayLimit = 19 // 16 digits + 3 separators
	cvvMaxDigits     = 4
	zipDigits        = 5
)

// FormatCardNumber regroups the input in blocks of four. Only whitespace is
// removed; non-digits survive so the validator can reject them.
func FormatCardNumber(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	runes := []rune(cleaned)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && i%cardGroupSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return truncateRunes(b.String(), cardDisplayLimit)
}

// FormatExpiry produces MM/YY. The slash appears once a year digit follows
// the month. Month range is a validation concern, so "13" stays "13".
func FormatExpiry(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) <= 2 {
		return digits
	}
	year := digits[2:]
	if len(year) > 2 {
		year = year[:2]
	}
	return digits[:2] + "/" + year
}

func FormatCVV(raw string) string {
	return truncateRunes(digitsOnly(raw), cvvMaxDigits)
}

func FormatZip(raw string) string {
	return truncateRunes(digitsOnly(raw), zipDigits)
}

// FormatField applies the mask for masked fields and passes other values through.
func FormatField(f Field, raw string) string {
	switch f {
	case FieldCardNumber:
		return FormatCardNumber(raw)
	case FieldCardExpiry:
		return FormatExpiry(raw)
	case FieldCardCVV:
		return FormatCVV(raw)
	case FieldZipCode:
		return FormatZip(raw)
	default:
		return raw
	}
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
