package adapters

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
)

// manifestSchema describes the manifest shape. It is deliberately loose:
// unknown keys are allowed, only the keys the resolver and the section
// validator read are typed.
const manifestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "type": {"type": "string"},
    "styles": {"$ref": "#/definitions/names"},
    "scripts": {"$ref": "#/definitions/names"},
    "requires": {"$ref": "#/definitions/names"},
    "dependencies": {"$ref": "#/definitions/names"},
    "validation": {
      "type": "object",
      "properties": {
        "required": {"$ref": "#/definitions/names"},
        "properties": {
          "type": "object",
          "additionalProperties": {"$ref": "#/definitions/rule"}
        }
      }
    }
  },
  "definitions": {
    "names": {"type": "array", "items": {"type": "string"}},
    "rule": {
      "type": "object",
      "properties": {
        "type": {"enum": ["boolean", "string", "number", "array", "object"]},
        "enum": {"type": "array"},
        "items": {"$ref": "#/definitions/rule"},
        "properties": {
          "type": "object",
          "additionalProperties": {"$ref": "#/definitions/rule"}
        }
      }
    }
  }
}`

// ManifestLinter reports structural problems in decoded manifests. Findings
// are advisory; loading never fails because of them.
type ManifestLinter struct {
	schema *gojsonschema.Schema
}

func NewManifestLinter() *ManifestLinter {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(manifestSchema))
	if err != nil {
		log.Error().Err(err).Msg("failed to compile manifest schema; manifest lint disabled")
		return &ManifestLinter{}
	}
	return &ManifestLinter{schema: schema}
}

// Lint returns one message per schema violation.
func (l *ManifestLinter) Lint(raw map[string]any) []string {
	if l == nil || l.schema == nil {
		return nil
	}
	result, err := l.schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return []string{fmt.Sprintf("manifest could not be linted: %v", err)}
	}
	if result.Valid() {
		return nil
	}
	messages := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		field := verr.Field()
		if field == "" {
			field = "(root)"
		}
		messages = append(messages, fmt.Sprintf("manifest lint: %s: %s", field, verr.Description()))
	}
	return messages
}
