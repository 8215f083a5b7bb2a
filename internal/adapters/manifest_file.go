package adapters

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"bundled-components/internal/types"
)

// DecodeManifest parses manifest bytes according to the file extension.
func DecodeManifest(path string, data []byte) (map[string]any, error) {
	var raw map[string]any
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported manifest format: " + path)
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest: " + path).
			WithCause(err)
	}
	if raw == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest is empty: " + path)
	}
	return raw, nil
}

// ComponentFromManifest converts a decoded manifest into a Component.
// Missing lists become empty, "dependencies" is accepted when "requires" is
// absent, and malformed validation rules are dropped with a warning.
func ComponentFromManifest(raw map[string]any, dir string, manifestPath string) (types.Component, []string, error) {
	name, _ := raw["name"].(string)
	if strings.TrimSpace(name) == "" {
		return types.Component{}, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest missing name: " + manifestPath)
	}

	componentType, _ := raw["type"].(string)
	requires, ok := raw["requires"]
	if !ok || requires == nil {
		requires = raw["dependencies"]
	}

	var warnings []string
	component := types.Component{
		Name:     name,
		Type:     componentType,
		Styles:   stringList(raw["styles"]),
		Scripts:  stringList(raw["scripts"]),
		Requires: stringList(requires),
		Path:     dir,
		Manifest: manifestPath,
	}
	if validation, ok := raw["validation"]; ok && validation != nil {
		config, configWarnings := decodeValidationConfig(validation)
		component.Validation = config
		warnings = append(warnings, configWarnings...)
	}
	return component, warnings, nil
}

func decodeValidationConfig(value any) (*types.ValidationConfig, []string) {
	object, ok := toObject(value)
	if !ok {
		return nil, []string{"validation must be an object; ignoring it"}
	}
	config := &types.ValidationConfig{
		Required: stringList(object["required"]),
	}
	var warnings []string
	if properties, ok := object["properties"]; ok && properties != nil {
		rules, ruleWarnings := decodePropertyRules(properties, "validation.properties")
		config.Properties = rules
		warnings = append(warnings, ruleWarnings...)
	}
	return config, warnings
}

func decodePropertyRules(value any, location string) (map[string]types.PropertyRule, []string) {
	object, ok := toObject(value)
	if !ok {
		return nil, []string{location + " must be an object; ignoring it"}
	}
	rules := make(map[string]types.PropertyRule, len(object))
	var warnings []string
	for path, rawRule := range object {
		rule, ruleWarnings, ok := decodePropertyRule(rawRule, location+"."+path)
		warnings = append(warnings, ruleWarnings...)
		if !ok {
			continue
		}
		rules[path] = rule
	}
	return rules, warnings
}

func decodePropertyRule(value any, location string) (types.PropertyRule, []string, bool) {
	object, ok := toObject(value)
	if !ok {
		return types.PropertyRule{}, []string{location + " must be an object; ignoring rule"}, false
	}

	var rule types.PropertyRule
	var warnings []string
	if rawType, ok := object["type"]; ok {
		name, isString := rawType.(string)
		switch types.PropertyType(name) {
		case types.PropertyTypeBoolean, types.PropertyTypeString, types.PropertyTypeNumber,
			types.PropertyTypeArray, types.PropertyTypeObject:
			rule.Type = types.PropertyType(name)
		default:
			if !isString {
				name = fmt.Sprint(rawType)
			}
			warnings = append(warnings, fmt.Sprintf("%s.type %q is not a known type; ignoring it", location, name))
		}
	}
	if constant, ok := object["const"]; ok {
		rule.Const = constant
		rule.HasConst = true
	}
	if rawEnum, ok := object["enum"]; ok {
		values, isList := rawEnum.([]any)
		if isList {
			rule.Enum = append(make([]any, 0, len(values)), values...)
		} else {
			warnings = append(warnings, location+".enum must be a list; ignoring it")
		}
	}
	if rawItems, ok := object["items"]; ok && rawItems != nil {
		items, itemWarnings, ok := decodePropertyRule(rawItems, location+".items")
		warnings = append(warnings, itemWarnings...)
		if ok {
			rule.Items = &items
		}
	}
	if rawProperties, ok := object["properties"]; ok && rawProperties != nil {
		properties, propertyWarnings := decodePropertyRules(rawProperties, location+".properties")
		rule.Properties = properties
		warnings = append(warnings, propertyWarnings...)
	}
	return rule, warnings, true
}

func stringList(value any) []string {
	out := []string{}
	switch typed := value.(type) {
	case []any:
		for _, item := range typed {
			if text, ok := item.(string); ok && strings.TrimSpace(text) != "" {
				out = append(out, text)
			}
		}
	case []string:
		out = append(out, typed...)
	case string:
		if strings.TrimSpace(typed) != "" {
			out = append(out, typed)
		}
	}
	return out
}

func toObject(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for key, item := range typed {
			converted[fmt.Sprint(key)] = item
		}
		return converted, true
	default:
		return nil, false
	}
}
