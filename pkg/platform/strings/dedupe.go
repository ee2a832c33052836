// Package strings provides string slice utilities.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and blank entries from a slice, trimming
// whitespace from each element. Order is preserved.
//
//	DedupeAndTrim([]string{"  foo ", "bar", "foo", "", "  "})
//	// []string{"foo", "bar"}
func DedupeAndTrim(values []string) []string {
	return DedupeAndTrimBy(values, func(s string) string { return s })
}

// DedupeAndTrimBy is like DedupeAndTrim but two elements are duplicates when
// key maps their trimmed forms to the same value. The first element seen for
// a key is kept, in its trimmed form.
//
//	DedupeAndTrimBy([]string{"12.345.678-5", "123456785"}, canonical)
//	// []string{"12.345.678-5"}
func DedupeAndTrimBy(values []string, key func(string) string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		k := key(trimmed)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}
