package core

import "strings"

// GetNestedProperty follows a dot-notation path through nested objects.
// It reports false as soon as a key is missing or an intermediate value is
// not an object.
func GetNestedProperty(obj any, path string) (any, bool) {
	current := obj
	for _, key := range strings.Split(path, ".") {
		object, ok := asObject(current)
		if !ok {
			return nil, false
		}
		value, ok := object[key]
		if !ok {
			return nil, false
		}
		current = value
	}
	return current, true
}

// HasNestedProperty reports whether the terminal key of path is set, even
// when its value is nil.
func HasNestedProperty(obj any, path string) bool {
	_, ok := GetNestedProperty(obj, path)
	return ok
}

// SetNestedProperty stores value at path, creating intermediate objects and
// replacing any non-object value found on the way.
func SetNestedProperty(obj map[string]any, path string, value any) {
	keys := strings.Split(path, ".")
	current := obj
	for _, key := range keys[:len(keys)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

func asObject(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for key, item := range typed {
			name, ok := key.(string)
			if !ok {
				continue
			}
			converted[name] = item
		}
		return converted, true
	default:
		return nil, false
	}
}
