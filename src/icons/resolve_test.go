package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_TypeDesignators(t *testing.T) {
	for code, id := range TypeCodes() {
		def := Resolve(code, "")
		assert.Equal(t, id, def.ID, "type %s", code)

		// Category never overrides a known type.
		assert.Equal(t, id, Resolve(code, "C3").ID, "type %s with category", code)
	}
}

func TestResolve_Categories(t *testing.T) {
	for category, id := range Categories() {
		want := id
		if _, ok := Lookup(id); !ok {
			want = DefaultID
		}
		assert.Equal(t, want, Resolve("", category).ID, "category %s", category)
	}
}

func TestResolve_BalloonFallsBackToDefault(t *testing.T) {
	for _, category := range []string{"B2", "B3"} {
		id, ok := IconForCategory(category)
		require.True(t, ok)
		assert.Equal(t, "balloon", id)

		_, inCatalog := Lookup(id)
		assert.False(t, inCatalog)

		assert.Equal(t, Default(), Resolve("", category))
	}
}

func TestResolve_Default(t *testing.T) {
	tests := []struct {
		name     string
		typeCode string
		category string
	}{
		{"both empty", "", ""},
		{"unknown type, no category", "ZZZZ", ""},
		{"unknown type and category", "ZZZZ", "Z9"},
		{"unknown category", "", "A7"},
		{"case sensitive type", "b738", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := Resolve(tt.typeCode, tt.category)
			assert.Equal(t, DefaultID, def.ID)
			assert.True(t, def.NoRotate)
			assert.Equal(t, `<circle cx="16" cy="16" r="4"/>`, def.Path)
		})
	}
}

func TestResolve_TypeTakesPriority(t *testing.T) {
	assert.Equal(t, "airliner", Resolve("B738", "C1").ID)
	assert.Equal(t, "ground_vehicle", Resolve("", "C1").ID)
	assert.Equal(t, "ground_vehicle", Resolve("NOPE", "C1").ID)
}

func TestCatalog_Shapes(t *testing.T) {
	ids := IDs()
	assert.Equal(t, []string{
		"airliner", "default", "glider", "ground_vehicle", "heavy_4e",
		"helicopter", "jet_nonmil", "light_single", "light_twin", "tower",
	}, ids)

	exempt := map[string]bool{"helicopter": true, "ground_vehicle": true, "tower": true, DefaultID: true}
	for id, def := range Catalog() {
		assert.Equal(t, id, def.ID)
		assert.Equal(t, 32, def.Width, id)
		assert.Equal(t, 32, def.Height, id)
		assert.Equal(t, "0 0 32 32", def.ViewBox, id)
		assert.Greater(t, def.Scale, 0.0, id)
		assert.Equal(t, exempt[id], def.NoRotate, id)
	}
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	cat := Catalog()
	cat["airliner"] = IconDefinition{ID: "mutated"}
	delete(cat, DefaultID)

	codes := TypeCodes()
	codes["B738"] = "tower"

	def, ok := Lookup("airliner")
	require.True(t, ok)
	assert.Equal(t, "airliner", def.ID)
	assert.Equal(t, DefaultID, Default().ID)
	assert.Equal(t, "airliner", Resolve("B738", "").ID)
}

func TestCheckIndexes(t *testing.T) {
	refs := CheckIndexes()
	require.Len(t, refs, 2)
	assert.Equal(t, DanglingRef{Index: "category", Key: "B2", ID: "balloon"}, refs[0])
	assert.Equal(t, DanglingRef{Index: "category", Key: "B3", ID: "balloon"}, refs[1])
	assert.Equal(t, "category B2 -> balloon", refs[0].String())
}
