package core

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/rs/zerolog/log"

	"bundled-components/internal/types"
)

// Result is the outcome of validating one value, object or section. Only the
// first failure is reported.
type Result struct {
	Valid   bool
	Message string
	Tip     string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(message string, tip string) Result {
	return Result{Message: message, Tip: tip}
}

// String formats the failure with its tip on a separate line.
func (r Result) String() string {
	if r.Valid {
		return ""
	}
	if r.Tip == "" {
		return r.Message
	}
	return r.Message + "\n  Tip: " + r.Tip
}

// ValidateProperty checks value against rule. A nil value is always valid;
// use ValidateRequiredProperties to demand presence.
func ValidateProperty(value any, rule types.PropertyRule, path string) Result {
	if value == nil {
		return valid()
	}

	actual := TypeOf(value)
	if rule.Type != "" && actual != rule.Type {
		return invalid(
			fmt.Sprintf("%s: expected %s, got %s (%s)", path, rule.Type, actual, renderValue(value)),
			GenerateTip(value, rule),
		)
	}

	if rule.HasConst && !valuesEqual(value, rule.Const) {
		return invalid(
			fmt.Sprintf("%s: must be %s, got %s", path, renderValue(rule.Const), renderValue(value)),
			GenerateTip(value, rule),
		)
	}

	if rule.HasEnum() && !containsValue(rule.Enum, value) {
		return invalid(
			fmt.Sprintf("%s: must be one of [%s], got %s", path, renderList(rule.Enum), renderValue(value)),
			GenerateTip(value, rule),
		)
	}

	if rule.Type == types.PropertyTypeArray && rule.Items != nil {
		items := reflect.ValueOf(value)
		for i := 0; i < items.Len(); i++ {
			item := items.Index(i).Interface()
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			var result Result
			if rule.Items.Properties != nil {
				result = ValidateObjectProperties(item, rule.Items.Properties, itemPath)
			} else {
				result = ValidateProperty(item, *rule.Items, itemPath)
			}
			if !result.Valid {
				return result
			}
		}
	}

	return valid()
}

// ValidateRequiredProperties fails on the first path whose terminal key is
// not set on obj.
func ValidateRequiredProperties(obj any, required []string) Result {
	for _, path := range required {
		if !HasNestedProperty(obj, path) {
			return invalid(fmt.Sprintf("%s: required property is missing", path), "")
		}
	}
	return valid()
}

// ValidateObjectProperties applies every rule to the value at its path.
// basePath prefixes reported paths, e.g. "ctas[0]" for array items.
func ValidateObjectProperties(obj any, rules map[string]types.PropertyRule, basePath string) Result {
	for _, path := range types.SortedPropertyPaths(rules) {
		value, _ := GetNestedProperty(obj, path)
		fullPath := path
		if basePath != "" {
			fullPath = basePath + "." + path
		}
		if result := ValidateProperty(value, rules[path], fullPath); !result.Valid {
			return result
		}
	}
	return valid()
}

// ValidateSection runs the required check and then the property rules.
// A failure message is prefixed by label on its own line.
func ValidateSection(section map[string]any, config *types.ValidationConfig, label string) Result {
	if config.Empty() {
		return valid()
	}
	result := ValidateRequiredProperties(section, config.Required)
	if result.Valid {
		result = ValidateObjectProperties(section, config.Properties, "")
	}
	if !result.Valid && label != "" {
		result.Message = label + "\n" + result.Message
	}
	return result
}

// ValidateSections validates every object-shaped section carrying a
// sectionType. Unknown section types are logged and skipped, as are
// components without validation rules. It never fails; it only reports.
func ValidateSections(ctx context.Context, sections []any, getManifest ManifestAccessor, fileName string) []types.ValidationError {
	if getManifest == nil {
		return nil
	}
	var errs []types.ValidationError
	for index, entry := range sections {
		section, sectionType, ok := types.SectionType(entry)
		if !ok {
			continue
		}
		component, err := getManifest(sectionType)
		if err != nil {
			log.Ctx(ctx).Warn().
				Err(err).
				Str("file", fileName).
				Int("section", index).
				Str("section_type", sectionType).
				Msg("no component for section type; skipping validation")
			continue
		}
		if component.Validation == nil {
			continue
		}
		label := fmt.Sprintf("%s: section %d (%s)", fileName, index, sectionType)
		result := ValidateSection(section, component.Validation, label)
		if result.Valid {
			continue
		}
		errs = append(errs, types.ValidationError{
			SectionIndex: index,
			SectionType:  sectionType,
			FileName:     fileName,
			Message:      result.String(),
		})
	}
	return errs
}

// TypeOf names the runtime type of a decoded value. Sequences are "array"
// and mappings "object".
func TypeOf(value any) types.PropertyType {
	if value == nil {
		return types.PropertyTypeNull
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool:
		return types.PropertyTypeBoolean
	case reflect.String:
		return types.PropertyTypeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return types.PropertyTypeNumber
	case reflect.Slice, reflect.Array:
		return types.PropertyTypeArray
	default:
		return types.PropertyTypeObject
	}
}

func valuesEqual(a any, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func containsValue(values []any, target any) bool {
	for _, value := range values {
		if valuesEqual(value, target) {
			return true
		}
	}
	return false
}

func toFloat(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func renderValue(value any) string {
	return oj.JSON(value, &oj.Options{Sort: true})
}

func renderList(values []any) string {
	rendered := make([]string, 0, len(values))
	for _, value := range values {
		if s, ok := value.(string); ok {
			rendered = append(rendered, s)
			continue
		}
		rendered = append(rendered, renderValue(value))
	}
	return strings.Join(rendered, ", ")
}
