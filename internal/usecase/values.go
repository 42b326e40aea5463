package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// isBlankValue reports values that CSV exports and form posts use for "no data".
func isBlankValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		trimmed := strings.TrimSpace(value)
		return trimmed == "" || strings.EqualFold(trimmed, "nan")
	default:
		return false
	}
}

func parseOptionalFloat(field string, v any) (*float64, error) {
	if isBlankValue(v) {
		return nil, nil
	}

	var out float64
	switch value := v.(type) {
	case float64:
		out = value
	case float32:
		out = float64(value)
	case int:
		out = float64(value)
	case int64:
		out = float64(value)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be numeric", ErrInvalidInput, field)
		}
		out = parsed
	default:
		return nil, fmt.Errorf("%w: %s must be numeric", ErrInvalidInput, field)
	}

	if math.IsNaN(out) || math.IsInf(out, 0) {
		return nil, nil
	}
	return &out, nil
}

func parseOptionalInt(field string, v any) (*int, error) {
	f, err := parseOptionalFloat(field, v)
	if err != nil || f == nil {
		return nil, err
	}
	if *f != math.Trunc(*f) {
		return nil, fmt.Errorf("%w: %s must be a whole number", ErrInvalidInput, field)
	}
	if *f < math.MinInt32 || *f > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %s is out of range", ErrInvalidInput, field)
	}
	out := int(*f)
	return &out, nil
}

// lookupField finds a key case-insensitively, trying names in order.
func lookupField(fields map[string]any, names ...string) (any, bool) {
	for _, name := range names {
		if v, ok := fields[name]; ok {
			return v, true
		}
	}
	for _, name := range names {
		for key, v := range fields {
			if strings.EqualFold(strings.TrimSpace(key), name) {
				return v, true
			}
		}
	}
	return nil, false
}

func stringField(fields map[string]any, names ...string) string {
	v, ok := lookupField(fields, names...)
	if !ok || v == nil {
		return ""
	}
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}

func trimNames(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SplitIDs parses a comma separated id list such as the compare query parameter.
func SplitIDs(raw string) []string {
	return trimNames(strings.Split(raw, ","))
}
