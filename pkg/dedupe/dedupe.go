// Package dedupe implements the duplicate-icon removal pass over a
// layout document. One pass shares a single registry of already-seen
// identifiers across the dock, every page, and every nested folder
// page, so an identifier survives exactly once no matter where it
// first appears. The traversal never mutates its input; it builds a
// fresh copy with the duplicate entries dropped.
package dedupe

import (
	"github.com/arthur-debert/springclean/pkg/layout"
	"github.com/arthur-debert/springclean/pkg/logging"
)

// Registry is the grow-only set of icon identifiers already kept
// during the current pass. It is scoped to exactly one pass and must
// never be shared across passes.
type Registry struct {
	seen map[string]struct{}
}

// NewRegistry creates an empty registry for one pass.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// Seen reports whether the identifier was already kept this pass.
func (r *Registry) Seen(id string) bool {
	_, ok := r.seen[id]
	return ok
}

// Add marks the identifier as kept. Identifiers are never removed.
func (r *Registry) Add(id string) {
	r.seen[id] = struct{}{}
}

// Len returns how many distinct identifiers have been kept so far.
func (r *Registry) Len() int {
	return len(r.seen)
}

// Lists produces duplicate-free copies of an ordered sequence of page
// lists, threading the shared registry through every sibling list and
// nested folder. It returns the new lists and whether any duplicate
// was dropped anywhere in the traversal.
func Lists(lists []layout.PageList, reg *Registry) ([]layout.PageList, bool) {
	if lists == nil {
		return nil, false
	}
	out := make([]layout.PageList, len(lists))
	found := false
	for i, list := range lists {
		newList, f := List(list, reg)
		out[i] = newList
		found = found || f
	}
	return out, found
}

// List produces a duplicate-free copy of a single page list. Icons are
// kept on first sight and registered, dropped afterwards. Folders are
// copied with their nested lists recursed through the same registry;
// every other folder attribute is carried over unchanged. Entries the
// document model does not understand pass through untouched and never
// affect uniqueness tracking.
func List(list layout.PageList, reg *Registry) (layout.PageList, bool) {
	if list == nil {
		return nil, false
	}
	out := make(layout.PageList, 0, len(list))
	found := false
	for _, entry := range list {
		switch e := entry.(type) {
		case layout.Icon:
			if reg.Seen(e.ID) {
				found = true
				continue
			}
			reg.Add(e.ID)
			out = append(out, e)
		case *layout.Folder:
			newLists, f := Lists(e.Lists, reg)
			found = found || f
			out = append(out, &layout.Folder{
				Lists: newLists,
				Attrs: layout.CloneAttrs(e.Attrs),
			})
		default:
			out = append(out, layout.CloneEntry(entry))
		}
	}
	return out, found
}

// Document runs one full pass over a layout document with a fresh
// registry. The dock is processed first, so a dock occurrence wins the
// tie against the same identifier appearing later in the pages. The
// input document is never modified.
func Document(doc *layout.Document) (*layout.Document, bool) {
	logger := logging.GetLogger("dedupe")
	reg := NewRegistry()

	dock, foundDock := List(doc.Dock, reg)
	pages, foundPages := Lists(doc.Pages, reg)
	found := foundDock || foundPages

	out := &layout.Document{
		Dock:       dock,
		Pages:      pages,
		DockNested: doc.DockNested,
		Format:     doc.Format,
		Extra:      layout.CloneAttrs(doc.Extra),
	}

	logger.Debug().
		Bool("found", found).
		Int("distinctIcons", reg.Len()).
		Msg("Dedupe pass finished")

	return out, found
}
