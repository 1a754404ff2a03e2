package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	nonDigitPattern = regexp.MustCompile(`\D`)
	amountPattern   = regexp.MustCompile(`\$?\d+(?:\.\d+)?[kK]?`)
)

// NormalizePhone strips a phone number down to its digits for comparison
func NormalizePhone(phone string) string {
	if phone == "" {
		return ""
	}
	return nonDigitPattern.ReplaceAllString(phone, "")
}

// ParseCallCount parses a CSV call count. Non-numeric input collapses to 0
// and negative counts are clamped to 0.
func ParseCallCount(raw string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

// ParseTags parses a comma-separated or single tag value. Tags are trimmed
// and lowercased, empties dropped. Returns nil when nothing remains.
func ParseTags(raw string) []string {
	if raw == "" {
		return nil
	}

	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		tags := make([]string, 0, len(parts))
		for _, p := range parts {
			if t := strings.ToLower(strings.TrimSpace(p)); t != "" {
				tags = append(tags, t)
			}
		}
		if len(tags) == 0 {
			return nil
		}
		return tags
	}

	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return nil
	}
	return []string{trimmed}
}

// dateLayouts are tried in order when parsing CSV dates
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"02 Jan 2006",
	"Jan 2, 2006",
}

// ParseDate attempts to parse a CSV date value. Returns nil on any parse
// failure; never an error.
func ParseDate(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}

// ParseLoanAmount extracts the maximum numeric value from a free-text loan
// amount. Handles "$20,000 - $30,000" (upper bound wins), "$50k" and plain
// numbers; returns 0 when no numeric token is found.
func ParseLoanAmount(raw string) float64 {
	if raw == "" {
		return 0
	}

	cleaned := strings.ReplaceAll(raw, ",", "")
	matches := amountPattern.FindAllString(cleaned, -1)
	if len(matches) == 0 {
		return 0
	}

	max := 0.0
	for _, match := range matches {
		value := strings.ToLower(strings.TrimPrefix(match, "$"))
		multiplier := 1.0
		if strings.HasSuffix(value, "k") {
			value = strings.TrimSuffix(value, "k")
			multiplier = 1000
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			continue
		}
		if parsed*multiplier > max {
			max = parsed * multiplier
		}
	}
	return max
}
