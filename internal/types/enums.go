package types

// PropertyType is the runtime type a validation rule can demand.
type PropertyType string

const (
	PropertyTypeBoolean PropertyType = "boolean"
	PropertyTypeString  PropertyType = "string"
	PropertyTypeNumber  PropertyType = "number"
	PropertyTypeArray   PropertyType = "array"
	PropertyTypeObject  PropertyType = "object"
	PropertyTypeNull    PropertyType = "null"
)

// ComponentTypeAuto marks a component whose manifest was synthesized from
// filename conventions instead of being read from disk.
const ComponentTypeAuto = "auto"

// ManifestFileNames lists the manifest files a component directory may carry,
// in lookup order.
var ManifestFileNames = []string{
	"manifest.json",
	"manifest.yaml",
	"manifest.yml",
	"manifest.toml",
}
