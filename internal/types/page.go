package types

// PageFile is one entry of the site's in-memory file map.
type PageFile struct {
	// Contents is the raw file body, frontmatter removed. Nil when the host
	// supplied no contents.
	Contents []byte

	// Sections is the frontmatter "sections" list. Elements are usually
	// map[string]any but may be anything the frontmatter declared.
	Sections []any

	// Frontmatter keeps the remaining frontmatter keys.
	Frontmatter map[string]any
}

// TemplateFile is a layout template read from the optional layout tree.
type TemplateFile struct {
	Path     string
	Contents []byte
}

// SectionType returns the sectionType of a section entry when the entry is
// object-shaped and the type is a non-empty string.
func SectionType(section any) (map[string]any, string, bool) {
	obj, ok := section.(map[string]any)
	if !ok {
		return nil, "", false
	}
	sectionType, ok := obj["sectionType"].(string)
	if !ok || sectionType == "" {
		return obj, "", false
	}
	return obj, sectionType, true
}
