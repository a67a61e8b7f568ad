package metadata

import "strings"

// filterBlank drops blank and whitespace-only entries, preserving relative
// order. The input slice is never modified.
func filterBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// TruncateSingleValued applies the last-value-wins policy: a single-valued
// field type keeps only the final entry of values. The returned flag reports
// whether values were discarded, so callers can surface the condition.
// Multi-valued types pass through untouched.
func TruncateSingleValued(fieldType FieldType, values []string) ([]string, bool) {
	if fieldType.MultiValued() || len(values) <= 1 {
		return values, false
	}
	return values[len(values)-1:], true
}
