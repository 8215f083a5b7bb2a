package types

import "fmt"

// ValidationError is one section that failed its component's rules.
type ValidationError struct {
	SectionIndex int
	SectionType  string
	FileName     string
	Message      string
}

func (e ValidationError) Error() string {
	return e.Message
}

// FileValidationReport groups the section failures of one page file.
type FileValidationReport struct {
	FileName string
	Errors   []ValidationError
}

// BundleRequest is the hand-off from the resolution pass to the bundler.
type BundleRequest struct {
	Components   []Component
	MainCSSEntry string
	MainJSEntry  string
	CSSDest      string
	JSDest       string
	Minify       bool
}

// BundleOutput describes one written bundle.
type BundleOutput struct {
	Path    string
	Inputs  []string
	Bytes   int
	Written bool
}

func (o BundleOutput) String() string {
	if !o.Written {
		return fmt.Sprintf("%s (skipped, no inputs)", o.Path)
	}
	return fmt.Sprintf("%s (%d inputs, %d bytes)", o.Path, len(o.Inputs), o.Bytes)
}

type BundleResult struct {
	CSS BundleOutput
	JS  BundleOutput
}
