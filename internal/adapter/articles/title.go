package articles

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// TitleFromFilename turns "my_first-note.md" into "My First Note".
func TitleFromFilename(name string) string {
	base := strings.TrimSuffix(name, path.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	words := strings.Fields(base)
	if len(words) == 0 {
		return name
	}
	return titleCaser.String(strings.Join(words, " "))
}
