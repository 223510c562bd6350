// Package prompts generates canned prompt text implementing each protocol
// layer. Every generator takes an options struct with enumerated choices and
// fails with ErrUnsupportedOption for values outside the enumerated sets.
package prompts

import "errors"

// ErrUnsupportedOption is wrapped by all errors returned for language, style,
// or level values outside the enumerated sets.
var ErrUnsupportedOption = errors.New("unsupported option")

// Language selects the prompt language.
type Language string

const (
	LanguageEN Language = "en"
	LanguageZH Language = "zh"
)

// CrisisResources lists support resources to embed in boundary prompts.
type CrisisResources struct {
	// Crisis hotline number
	Crisis string
	// Mental health resource URL
	MentalHealth string
	// Additional resources
	Additional map[string]string
}
