package normalize

import (
	"strconv"
	"strings"
)

// ParseMinute turns a provider minute value into a canonical minute.
// "45+2" sums base and injury time (47), "HT"/"FT" map to 45/90, plain
// digits parse directly, and anything unparseable yields 0. Never errors.
func ParseMinute(raw any) int {
	switch value := raw.(type) {
	case nil:
		return 0
	case float64:
		return clampMinute(int(value))
	case int:
		return clampMinute(value)
	case int64:
		return clampMinute(int(value))
	case string:
		return parseMinuteString(value)
	default:
		return 0
	}
}

func parseMinuteString(value string) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}

	switch strings.ToUpper(trimmed) {
	case "HT":
		return 45
	case "FT":
		return 90
	}

	if base, extra, found := strings.Cut(trimmed, "+"); found {
		return clampMinute(leadingInt(base) + leadingInt(extra))
	}
	return clampMinute(leadingInt(trimmed))
}

// leadingInt parses the first run of digits, tolerating suffixes like "45'".
func leadingInt(value string) int {
	trimmed := strings.TrimSpace(value)
	end := 0
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	parsed, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return 0
	}
	return parsed
}

func clampMinute(minute int) int {
	if minute < 0 {
		return 0
	}
	return minute
}
