package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultCatalogLookup tests classification of the built-in kinds
func TestDefaultCatalogLookup(t *testing.T) {
	cat := DefaultCatalog()

	container, ok := cat.Lookup("Container")
	require.True(t, ok)
	assert.Equal(t, "child", container.ChildProp)

	row, ok := cat.Lookup("Row")
	require.True(t, ok)
	assert.Equal(t, "children", row.ChildProp)

	text, ok := cat.Lookup("Text")
	require.True(t, ok)
	assert.Equal(t, []string{"text"}, text.Positional)

	imageAsset, ok := cat.Lookup("Image.asset")
	require.True(t, ok, "dotted constructor spellings are catalog keys")
	assert.Equal(t, []string{"src"}, imageAsset.Positional)

	_, ok = cat.Lookup("NotAWidget")
	assert.False(t, ok)
}

// TestCatalogAddKind tests registering and replacing kinds
func TestCatalogAddKind(t *testing.T) {
	cat := DefaultCatalog()

	cat.AddKind(Kind{Name: "Badge", Positional: []string{"label"}, ChildProp: "child"})
	badge, ok := cat.Lookup("Badge")
	require.True(t, ok)
	assert.Equal(t, []string{"label"}, badge.Positional)

	// replacing an existing kind wins
	cat.AddKind(Kind{Name: "Container", ChildProp: "content"})
	container, _ := cat.Lookup("Container")
	assert.Equal(t, "content", container.ChildProp)
}

// TestCatalogStyleProperties tests the style projection subset
func TestCatalogStyleProperties(t *testing.T) {
	cat := DefaultCatalog()

	assert.True(t, cat.IsStyleProperty("color"))
	assert.True(t, cat.IsStyleProperty("padding"))
	assert.False(t, cat.IsStyleProperty("onPressed"))

	cat.AddStyleProperty("glow")
	assert.True(t, cat.IsStyleProperty("glow"))
}

// TestCatalogNamesSorted tests deterministic name listings
func TestCatalogNamesSorted(t *testing.T) {
	cat := DefaultCatalog()

	kinds := cat.KindNames()
	require.NotEmpty(t, kinds)
	assert.IsIncreasing(t, kinds)
	assert.Contains(t, kinds, "Container")

	props := cat.StylePropertyNames()
	require.NotEmpty(t, props)
	assert.IsIncreasing(t, props)
	assert.Contains(t, props, "fontSize")
}
