package layout

import (
	"howett.net/plist"

	"github.com/arthur-debert/springclean/pkg/errors"
)

// Decode parses a property-list layout document. Both XML and binary
// plists are accepted; the detected format is recorded on the document
// so Encode can write the same representation back.
func Decode(data []byte) (*Document, error) {
	var raw interface{}
	format, err := plist.Unmarshal(data, &raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrLayoutParse, "failed to parse layout plist")
	}

	dict, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrLayoutParse,
			"layout root is %T, expected a dictionary", raw)
	}

	return fromRaw(dict, format), nil
}

// Encode serializes the document back to its property-list form,
// preserving the format it was decoded from.
func Encode(doc *Document) ([]byte, error) {
	format := doc.Format
	if format == plist.AutomaticFormat {
		format = plist.XMLFormat
	}

	var (
		data []byte
		err  error
	)
	if format == plist.XMLFormat {
		data, err = plist.MarshalIndent(toRaw(doc), format, "\t")
	} else {
		data, err = plist.Marshal(toRaw(doc), format)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrLayoutEncode, "failed to encode layout plist")
	}
	return data, nil
}

// fromRaw converts the decoded plist tree into the typed document.
// Recognized keys are lifted into Dock/Pages; everything else lands in
// Extra untouched.
func fromRaw(dict map[string]interface{}, format int) *Document {
	doc := &Document{
		Format: format,
		Extra:  make(map[string]interface{}),
	}

	for key, value := range dict {
		switch key {
		case KeyButtonBar:
			if list, ok := value.([]interface{}); ok {
				doc.Dock, doc.DockNested = dockFromRaw(list)
			} else {
				doc.Extra[key] = copyValue(value)
			}
		case KeyIconLists:
			if lists, ok := value.([]interface{}); ok {
				doc.Pages = pageListsFromRaw(lists)
			} else {
				doc.Extra[key] = copyValue(value)
			}
		default:
			doc.Extra[key] = copyValue(value)
		}
	}

	return doc
}

// dockFromRaw handles both dock shapes the host writes: a bare entry
// list, and the same list wrapped in a one-element list of lists.
func dockFromRaw(list []interface{}) (PageList, bool) {
	if len(list) == 1 {
		if inner, ok := list[0].([]interface{}); ok {
			return pageListFromRaw(inner), true
		}
	}
	return pageListFromRaw(list), false
}

func pageListsFromRaw(lists []interface{}) []PageList {
	out := make([]PageList, 0, len(lists))
	for _, item := range lists {
		if list, ok := item.([]interface{}); ok {
			out = append(out, pageListFromRaw(list))
			continue
		}
		// A page that is not a list at all; keep it as a single
		// opaque entry rather than dropping it.
		out = append(out, PageList{Opaque{Raw: copyValue(item)}})
	}
	return out
}

func pageListFromRaw(list []interface{}) PageList {
	out := make(PageList, 0, len(list))
	for _, item := range list {
		out = append(out, entryFromRaw(item))
	}
	return out
}

// entryFromRaw decides the entry variant exactly once: strings are
// icons, dictionaries with an iconLists list are folders, and anything
// else passes through opaque and untracked.
func entryFromRaw(v interface{}) Entry {
	switch val := v.(type) {
	case string:
		return Icon{ID: val}
	case map[string]interface{}:
		lists, ok := val[KeyIconLists].([]interface{})
		if !ok {
			return Opaque{Raw: copyValue(v)}
		}
		attrs := make(map[string]interface{}, len(val)-1)
		for k, item := range val {
			if k == KeyIconLists {
				continue
			}
			attrs[k] = copyValue(item)
		}
		return &Folder{
			Lists: pageListsFromRaw(lists),
			Attrs: attrs,
		}
	default:
		return Opaque{Raw: copyValue(v)}
	}
}

func toRaw(doc *Document) map[string]interface{} {
	dict := copyMap(doc.Extra)
	if dict == nil {
		dict = make(map[string]interface{})
	}

	if doc.Dock != nil {
		dock := pageListToRaw(doc.Dock)
		if doc.DockNested {
			dict[KeyButtonBar] = []interface{}{dock}
		} else {
			dict[KeyButtonBar] = dock
		}
	}
	if doc.Pages != nil {
		dict[KeyIconLists] = pageListsToRaw(doc.Pages)
	}

	return dict
}

func pageListsToRaw(lists []PageList) []interface{} {
	out := make([]interface{}, len(lists))
	for i, list := range lists {
		out[i] = pageListToRaw(list)
	}
	return out
}

func pageListToRaw(list PageList) []interface{} {
	out := make([]interface{}, len(list))
	for i, e := range list {
		out[i] = entryToRaw(e)
	}
	return out
}

func entryToRaw(e Entry) interface{} {
	switch val := e.(type) {
	case Icon:
		return val.ID
	case *Folder:
		dict := copyMap(val.Attrs)
		if dict == nil {
			dict = make(map[string]interface{})
		}
		dict[KeyIconLists] = pageListsToRaw(val.Lists)
		return dict
	case Opaque:
		return copyValue(val.Raw)
	default:
		return nil
	}
}
