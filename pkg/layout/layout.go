// Package layout models the home-screen icon layout document: a dock
// list plus an ordered sequence of pages, where pages hold icons and
// folders and folders recursively hold pages of their own.
//
// The on-disk representation is a property list with at least two
// recognized keys, "buttonBar" (the dock) and "iconLists" (the pages).
// Everything the package does not recognize is carried through
// verbatim so a decode/encode round trip never loses data.
package layout

import "reflect"

// Recognized property-list keys.
const (
	KeyButtonBar = "buttonBar"
	KeyIconLists = "iconLists"
)

// Entry is one element of a page list. The concrete variant is decided
// once at decode time: Icon for raw string identifiers, Folder for
// records carrying nested icon lists, Opaque for everything else.
type Entry interface {
	entry()
}

// Icon is an opaque icon identifier with unique-by-value semantics.
type Icon struct {
	ID string
}

func (Icon) entry() {}

// Folder is a container entry holding its own nested pages. Attrs
// carries every folder key except "iconLists" verbatim (display name,
// color, list type and whatever else the host writes there).
type Folder struct {
	Lists []PageList
	Attrs map[string]interface{}
}

func (*Folder) entry() {}

// DisplayName returns the folder's display name attribute, if present.
func (f *Folder) DisplayName() string {
	if name, ok := f.Attrs["displayName"].(string); ok {
		return name
	}
	return ""
}

// Opaque is an entry the package does not understand. It is copied
// through unchanged and never participates in uniqueness tracking.
type Opaque struct {
	Raw interface{}
}

func (Opaque) entry() {}

// PageList is an ordered sequence of entries.
type PageList []Entry

// Document is the top-level layout document.
type Document struct {
	// Dock is the single flat dock list.
	Dock PageList

	// Pages is the ordered sequence of home-screen pages.
	Pages []PageList

	// DockNested records whether the buttonBar key was stored wrapped
	// in a one-element list of lists, so encoding restores the shape.
	DockNested bool

	// Format is the property-list format the document was decoded
	// from, reused when encoding.
	Format int

	// Extra holds unrecognized top-level keys, preserved verbatim.
	Extra map[string]interface{}
}

// Clone returns a deep, independent copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{
		Dock:       ClonePageList(d.Dock),
		Pages:      ClonePageLists(d.Pages),
		DockNested: d.DockNested,
		Format:     d.Format,
		Extra:      copyMap(d.Extra),
	}
}

// ClonePageLists deep-copies an ordered sequence of page lists.
func ClonePageLists(lists []PageList) []PageList {
	if lists == nil {
		return nil
	}
	out := make([]PageList, len(lists))
	for i, list := range lists {
		out[i] = ClonePageList(list)
	}
	return out
}

// ClonePageList deep-copies a single page list.
func ClonePageList(list PageList) PageList {
	if list == nil {
		return nil
	}
	out := make(PageList, len(list))
	for i, e := range list {
		out[i] = CloneEntry(e)
	}
	return out
}

// CloneEntry deep-copies a single entry.
func CloneEntry(e Entry) Entry {
	switch v := e.(type) {
	case Icon:
		return v
	case *Folder:
		return &Folder{
			Lists: ClonePageLists(v.Lists),
			Attrs: copyMap(v.Attrs),
		}
	case Opaque:
		return Opaque{Raw: copyValue(v.Raw)}
	default:
		return e
	}
}

// Equal reports deep structural equality of two documents.
func Equal(a, b *Document) bool {
	return reflect.DeepEqual(a, b)
}

// IconCounts returns how often each icon identifier occurs across the
// dock, all pages, and all nested folder pages at every depth.
func (d *Document) IconCounts() map[string]int {
	counts := make(map[string]int)
	countList(d.Dock, counts)
	for _, page := range d.Pages {
		countList(page, counts)
	}
	return counts
}

func countList(list PageList, counts map[string]int) {
	for _, e := range list {
		switch v := e.(type) {
		case Icon:
			counts[v.ID]++
		case *Folder:
			for _, nested := range v.Lists {
				countList(nested, counts)
			}
		}
	}
}

// CloneAttrs deep-copies a raw attribute map (folder attributes or
// document extras). Nil maps stay nil.
func CloneAttrs(m map[string]interface{}) map[string]interface{} {
	return copyMap(m)
}

// copyValue deep-copies the raw plist value shapes the codec produces:
// maps, slices, and scalars. Scalars are immutable and returned as-is.
func copyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		if val == nil {
			return val
		}
		return copyMap(val)
	case []interface{}:
		if val == nil {
			return val
		}
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, item := range m {
		out[k] = copyValue(item)
	}
	return out
}
