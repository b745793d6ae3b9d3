// pkg/layout/codec_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test plist decode/encode round trips and shape tolerance

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

const xmlLayout = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>buttonBar</key>
	<array>
		<string>com.apple.mobilephone</string>
		<string>com.apple.mobilesafari</string>
	</array>
	<key>iconLists</key>
	<array>
		<array>
			<string>com.apple.mobilemail</string>
			<dict>
				<key>displayName</key>
				<string>Utilities</string>
				<key>iconLists</key>
				<array>
					<array>
						<string>com.apple.calculator</string>
					</array>
				</array>
			</dict>
		</array>
		<array>
			<string>com.apple.camera</string>
		</array>
	</array>
	<key>listType</key>
	<string>root</string>
</dict>
</plist>`

func TestDecode_XML(t *testing.T) {
	doc, err := Decode([]byte(xmlLayout))
	require.NoError(t, err)

	assert.Equal(t, plist.XMLFormat, doc.Format)
	assert.False(t, doc.DockNested)
	require.Len(t, doc.Dock, 2)
	assert.Equal(t, Icon{ID: "com.apple.mobilephone"}, doc.Dock[0])

	require.Len(t, doc.Pages, 2)
	folder, ok := doc.Pages[0][1].(*Folder)
	require.True(t, ok, "second entry of page 1 should decode as a folder")
	assert.Equal(t, "Utilities", folder.DisplayName())
	require.Len(t, folder.Lists, 1)
	assert.Equal(t, Icon{ID: "com.apple.calculator"}, folder.Lists[0][0])

	// Unrecognized top-level key survives decode.
	assert.Equal(t, "root", doc.Extra["listType"])
}

func TestDecode_NestedDock(t *testing.T) {
	raw := map[string]interface{}{
		"buttonBar": []interface{}{
			[]interface{}{"com.apple.mobilephone"},
		},
	}
	data, err := plist.Marshal(raw, plist.XMLFormat)
	require.NoError(t, err)

	doc, err := Decode(data)
	require.NoError(t, err)

	assert.True(t, doc.DockNested)
	require.Len(t, doc.Dock, 1)
	assert.Equal(t, Icon{ID: "com.apple.mobilephone"}, doc.Dock[0])

	// The wrapped shape is restored on encode.
	out, err := Encode(doc)
	require.NoError(t, err)
	var roundTrip interface{}
	_, err = plist.Unmarshal(out, &roundTrip)
	require.NoError(t, err)
	dock := roundTrip.(map[string]interface{})["buttonBar"].([]interface{})
	require.Len(t, dock, 1)
	assert.Equal(t, []interface{}{"com.apple.mobilephone"}, dock[0])
}

func TestDecode_RejectsNonDictionaryRoot(t *testing.T) {
	data, err := plist.Marshal([]interface{}{"a", "b"}, plist.XMLFormat)
	require.NoError(t, err)

	_, err = Decode(data)
	assert.Error(t, err)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not a plist at all"))
	assert.Error(t, err)
}

func TestRoundTrip_PreservesDocument(t *testing.T) {
	doc, err := Decode([]byte(xmlLayout))
	require.NoError(t, err)

	data, err := Encode(doc)
	require.NoError(t, err)

	again, err := Decode(data)
	require.NoError(t, err)

	assert.True(t, Equal(doc, again), "decode(encode(doc)) should equal doc")
}

func TestRoundTrip_BinaryFormat(t *testing.T) {
	doc, err := Decode([]byte(xmlLayout))
	require.NoError(t, err)
	doc.Format = plist.BinaryFormat

	data, err := Encode(doc)
	require.NoError(t, err)

	again, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, plist.BinaryFormat, again.Format)
	assert.Equal(t, doc.IconCounts(), again.IconCounts())
}

func TestDecode_FolderAttributesPreserved(t *testing.T) {
	raw := map[string]interface{}{
		"iconLists": []interface{}{
			[]interface{}{
				map[string]interface{}{
					"displayName": "Misc",
					"folderColor": "blue",
					"badgeCount":  uint64(3),
					"iconLists": []interface{}{
						[]interface{}{"app.one"},
					},
				},
			},
		},
	}
	data, err := plist.Marshal(raw, plist.XMLFormat)
	require.NoError(t, err)

	doc, err := Decode(data)
	require.NoError(t, err)

	folder := doc.Pages[0][0].(*Folder)
	assert.Equal(t, "blue", folder.Attrs["folderColor"])
	assert.Equal(t, uint64(3), folder.Attrs["badgeCount"])

	out, err := Encode(doc)
	require.NoError(t, err)
	var roundTrip interface{}
	_, err = plist.Unmarshal(out, &roundTrip)
	require.NoError(t, err)

	folderDict := roundTrip.(map[string]interface{})["iconLists"].([]interface{})[0].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "blue", folderDict["folderColor"])
	assert.Equal(t, uint64(3), folderDict["badgeCount"])
}

func TestDecode_DictWithoutIconListsIsOpaque(t *testing.T) {
	raw := map[string]interface{}{
		"iconLists": []interface{}{
			[]interface{}{
				map[string]interface{}{"widget": "weather"},
				"app.one",
			},
		},
	}
	data, err := plist.Marshal(raw, plist.XMLFormat)
	require.NoError(t, err)

	doc, err := Decode(data)
	require.NoError(t, err)

	_, ok := doc.Pages[0][0].(Opaque)
	assert.True(t, ok, "dict without iconLists should stay opaque")
	assert.Equal(t, Icon{ID: "app.one"}, doc.Pages[0][1])
}
