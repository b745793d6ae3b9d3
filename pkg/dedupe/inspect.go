package dedupe

import "github.com/arthur-debert/springclean/pkg/layout"

// Duplicates returns the icon identifiers that occur more than once
// anywhere in the document, with their total occurrence counts. It is
// a read-only report used by the check command; the pass itself does
// not depend on it.
func Duplicates(doc *layout.Document) map[string]int {
	dupes := make(map[string]int)
	for id, n := range doc.IconCounts() {
		if n > 1 {
			dupes[id] = n
		}
	}
	return dupes
}
