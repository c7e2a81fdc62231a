package recurring

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	noisePhrases  = regexp.MustCompile(`(?i)payment to|payment for|invoice|bill|receipt|transaction`)
	referenceCode = regexp.MustCompile(`#\d+`)
)

// BillName derives a display name from a raw expense description by stripping
// transactional noise ("payment to", "invoice", reference numbers like #4821)
// and title-casing what remains. Noise matches are removed wherever they
// appear, including inside longer words.
//
// If nothing survives the stripping, the original description comes back
// unchanged so a bill never ends up nameless.
func BillName(description string) string {
	cleaned := noisePhrases.ReplaceAllString(description, "")
	cleaned = referenceCode.ReplaceAllString(cleaned, "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return description
	}
	// Title casers are stateful, so build one per call instead of sharing
	// a package-level instance across goroutines.
	return cases.Title(language.English, cases.NoLower).String(cleaned)
}
