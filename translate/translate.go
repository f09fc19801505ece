// Package translate renders user-visible strings through a locale-aware
// message printer.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	setCatalog()

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("asm16: locale: %v", err)
	}

	printer = message.NewPrinter(Match(locales...))
}

// Match selects the catalog language for a list of user locales. English is
// used when none of the locales has a catalog.
func Match(locales ...string) (tag language.Tag) {
	var tags []language.Tag
	for _, loc := range locales {
		parsed, err := language.Parse(loc)
		if err == nil {
			tags = append(tags, parsed)
		}
	}

	matcher := language.NewMatcher(message.DefaultCatalog.Languages())
	tag, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		tag = language.English
	}

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
