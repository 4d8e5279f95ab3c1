package extract

import (
	"strconv"
	"strings"
)

// Record is an opaque provider payload of unknown shape.
type Record = map[string]any

var numericChars = func() [256]bool {
	var set [256]bool
	for _, c := range "0123456789.-" {
		set[c] = true
	}
	return set
}()

// String probes candidate keys in order and returns the first value that
// coerces to a non-empty string, or fallback when nothing matches.
func String(record Record, keys []string, fallback string) string {
	if value, ok := StringOK(record, keys); ok {
		return value
	}
	return fallback
}

// StringOK is String with an explicit presence flag.
func StringOK(record Record, keys []string) (string, bool) {
	if record == nil {
		return "", false
	}
	for _, key := range keys {
		raw, ok := record[key]
		if !ok || raw == nil {
			continue
		}
		if value, ok := coerceString(raw); ok {
			return value, true
		}
	}
	return "", false
}

// Number probes candidate keys in order and returns the first value that
// coerces to a number, or fallback when nothing matches. String values are
// stripped of non-numeric characters before parsing, so "45'" and "2.15 EUR"
// both coerce.
func Number(record Record, keys []string, fallback float64) float64 {
	if value, ok := NumberOK(record, keys); ok {
		return value
	}
	return fallback
}

// NumberOK is Number with an explicit presence flag.
func NumberOK(record Record, keys []string) (float64, bool) {
	if record == nil {
		return 0, false
	}
	for _, key := range keys {
		raw, ok := record[key]
		if !ok || raw == nil {
			continue
		}
		if value, ok := coerceNumber(raw); ok {
			return value, true
		}
	}
	return 0, false
}

// Records probes candidate keys in order and returns the first value that is
// a non-empty array of objects. Entries that are not objects are skipped.
func Records(record Record, keys []string) []Record {
	if record == nil {
		return nil
	}
	for _, key := range keys {
		raw, ok := record[key]
		if !ok {
			continue
		}
		items, ok := raw.([]any)
		if !ok || len(items) == 0 {
			continue
		}
		out := make([]Record, 0, len(items))
		for _, item := range items {
			if entry, ok := item.(Record); ok {
				out = append(out, entry)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// Object probes candidate keys in order and returns the first nested object.
func Object(record Record, keys []string) (Record, bool) {
	if record == nil {
		return nil, false
	}
	for _, key := range keys {
		if nested, ok := record[key].(Record); ok && len(nested) > 0 {
			return nested, true
		}
	}
	return nil, false
}

// Truthy applies boolean-like coercion: "false", "0", empty string, zero
// numbers, nil and false are false; everything else is true.
func Truthy(raw any) bool {
	switch value := raw.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		trimmed := strings.TrimSpace(strings.ToLower(value))
		return trimmed != "" && trimmed != "false" && trimmed != "0"
	case float64:
		return value != 0
	case int:
		return value != 0
	case int64:
		return value != 0
	default:
		return true
	}
}

func coerceString(raw any) (string, bool) {
	switch value := raw.(type) {
	case string:
		trimmed := strings.TrimSpace(value)
		return trimmed, trimmed != ""
	case float64:
		if value == float64(int64(value)) {
			return strconv.FormatInt(int64(value), 10), true
		}
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case int:
		return strconv.Itoa(value), true
	case int64:
		return strconv.FormatInt(value, 10), true
	case bool:
		return strconv.FormatBool(value), true
	default:
		return "", false
	}
}

func coerceNumber(raw any) (float64, bool) {
	switch value := raw.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		cleaned := stripNonNumeric(value)
		if cleaned == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func stripNonNumeric(value string) string {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		if numericChars[value[i]] {
			b.WriteByte(value[i])
		}
	}
	return b.String()
}
