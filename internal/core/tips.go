package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bundled-components/internal/types"
)

var headingLevelPattern = regexp.MustCompile(`^h[1-6]$`)

// headingMisspellings are values authors commonly write when they mean a
// heading level.
var headingMisspellings = map[string]struct{}{
	"header":  {},
	"heading": {},
	"title":   {},
}

// GenerateTip returns a remediation hint for common authoring mistakes, or
// an empty string when none applies.
func GenerateTip(value any, rule types.PropertyRule) string {
	text, ok := value.(string)
	if !ok {
		return ""
	}

	switch rule.Type {
	case types.PropertyTypeBoolean:
		if text == "true" || text == "false" {
			return fmt.Sprintf(
				"use %s (boolean) instead of %q (string); in templates any non-empty string, including \"false\", evaluates to true",
				text, text,
			)
		}
	case types.PropertyTypeNumber:
		trimmed := strings.TrimSpace(text)
		if _, err := strconv.ParseFloat(trimmed, 64); err == nil && trimmed != "" {
			return fmt.Sprintf("remove the quotes: use %s instead of %q", trimmed, text)
		}
	}

	if !rule.HasEnum() {
		return ""
	}
	if _, ok := headingMisspellings[strings.ToLower(text)]; ok && isHeadingEnum(rule.Enum) {
		return fmt.Sprintf("%q is not a heading level; use %s", text, humanList(rule.Enum))
	}
	for _, option := range rule.Enum {
		candidate, ok := option.(string)
		if ok && candidate != text && strings.EqualFold(candidate, text) {
			return fmt.Sprintf("values are case-sensitive; did you mean %q?", candidate)
		}
	}
	return ""
}

func isHeadingEnum(values []any) bool {
	if len(values) == 0 {
		return false
	}
	for _, value := range values {
		text, ok := value.(string)
		if !ok || !headingLevelPattern.MatchString(text) {
			return false
		}
	}
	return true
}

// humanList joins values as "a, b, or c".
func humanList(values []any) string {
	items := make([]string, 0, len(values))
	for _, value := range values {
		items = append(items, fmt.Sprint(value))
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}
