// Package options names the primitive conversion categories so they can be
// selected from configuration files and environment variables.
package options

import (
	"fmt"
	"slices"
	"strings"

	"flatmap/primitive"
)

var categoryNames = map[string]primitive.CategoryEnum{
	"text-number":   primitive.CategoryTextNumber,
	"numeric-bool":  primitive.CategoryNumericBool,
	"textual-bool":  primitive.CategoryTextualBool,
	"datetime":      primitive.CategoryDatetime,
	"timestamp":     primitive.CategoryTimestamp,
	"duration":      primitive.CategoryDuration,
	"nanoseconds":   primitive.CategoryNanoseconds,
	"seconds":       primitive.CategorySeconds,
	"enum-string":   primitive.CategoryEnumString,

	// groups
	"text": primitive.CategoryText,
	"all":  primitive.CategoryAll,
	"none": primitive.CategoryNone,
}

// ParseCategories combines the named categories. Names are case insensitive;
// an empty list selects primitive.CategoryText.
func ParseCategories(names []string) (primitive.CategoryEnum, error) {
	if len(names) == 0 {
		return primitive.CategoryText, nil
	}

	var out primitive.CategoryEnum

	for _, name := range names {
		c, ok := categoryNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("unknown conversion category %q, expected one of: %s",
				name, strings.Join(CategoryNames(), ", "))
		}

		out |= c
	}

	return out, nil
}

// CategoryNames lists every accepted category name in sorted order.
func CategoryNames() []string {
	names := make([]string, 0, len(categoryNames))
	for name := range categoryNames {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
