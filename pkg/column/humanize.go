package column

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Humanize derives a display label from a field path: snake_case words are
// title-cased and path segments are joined with " > ".
//
//	Humanize("created_at")     // "Created At"
//	Humanize("author.name")    // "Author > Name"
//	Humanize("profile__bio")   // "Profile > Bio"
func Humanize(field string) string {
	if field == "" {
		return ""
	}

	// Embedded separators nest like relationship dots.
	field = strings.ReplaceAll(field, "__", ".")

	segments := strings.Split(field, ".")
	for i, seg := range segments {
		segments[i] = titleCaser.String(strings.ReplaceAll(seg, "_", " "))
	}
	return strings.Join(segments, " > ")
}
