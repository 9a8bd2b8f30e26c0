package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandResolvesKnownReferences(t *testing.T) {
	ref := testReference()
	items := []ComboNotationItem{
		{CategoryID: "buttons", ElementID: "lp"},
		{CategoryID: "motions", ElementID: "qcf"},
		{CategoryID: "buttons", ElementID: "hp"},
	}

	expanded, misses := Expand(ref, items)

	require.Len(t, expanded, 3)
	assert.Empty(t, misses)

	assert.Equal(t, "Light Punch", expanded[0].Name)
	assert.Equal(t, "Buttons", expanded[0].CategoryName)
	assert.Equal(t, "Quarter Circle Forward", expanded[1].Name)
	assert.Equal(t, "Motions", expanded[1].CategoryName)
	assert.Equal(t, "Heavy Punch", expanded[2].Name)
}

func TestExpandPreservesOrderAndLength(t *testing.T) {
	ref := testReference()
	items := []ComboNotationItem{
		{CategoryID: "buttons", ElementID: "hp"},
		{CategoryID: "missing", ElementID: "x"},
		{CategoryID: "buttons", ElementID: "lp"},
		{},
		{CategoryID: "buttons", ElementID: "ghost"},
	}

	expanded, _ := Expand(ref, items)

	require.Len(t, expanded, len(items))
	assert.Equal(t, "hp", expanded[0].ElementID)
	assert.Equal(t, "x", expanded[1].ElementID)
	assert.Equal(t, "lp", expanded[2].ElementID)
	assert.Equal(t, "", expanded[3].ElementID)
	assert.Equal(t, "ghost", expanded[4].ElementID)
}

func TestExpandSynthesizesPlaceholderOnCategoryMiss(t *testing.T) {
	items := []ComboNotationItem{{CategoryID: "lasers", ElementID: "beam"}}

	expanded, misses := Expand(testReference(), items)

	require.Len(t, expanded, 1)
	assert.Equal(t, "beam", expanded[0].Name)
	assert.Equal(t, "beam", expanded[0].Symbol)
	assert.Equal(t, "beam", expanded[0].ElementID)
	assert.Equal(t, "lasers", expanded[0].CategoryID)
	assert.Equal(t, "Lasers", expanded[0].CategoryName)

	require.Len(t, misses, 1)
	assert.Equal(t, MissCategory, misses[0].Reason)
	assert.Equal(t, 0, misses[0].Index)
}

func TestExpandSynthesizesPlaceholderOnElementMiss(t *testing.T) {
	items := []ComboNotationItem{{CategoryID: "buttons", ElementID: "mk"}}

	expanded, misses := Expand(testReference(), items)

	require.Len(t, expanded, 1)
	assert.Equal(t, "mk", expanded[0].Name)
	assert.Equal(t, "mk", expanded[0].Symbol)

	require.Len(t, misses, 1)
	assert.Equal(t, MissElement, misses[0].Reason)
}

func TestExpandNormalizesBareReferences(t *testing.T) {
	items := []ComboNotationItem{
		{},
		{CategoryID: "buttons"},
		{ElementID: "lp"},
	}

	expanded, misses := Expand(testReference(), items)

	require.Len(t, expanded, 3)
	assert.Empty(t, misses)

	assert.Equal(t, "Unknown", expanded[0].Name)
	assert.Equal(t, "unknown", expanded[0].CategoryID)

	assert.Equal(t, "Unknown", expanded[1].Name)
	assert.Equal(t, "buttons", expanded[1].CategoryID)

	// A bare elementId still yields a renderable element.
	assert.Equal(t, "lp", expanded[2].Name)
	assert.Equal(t, "lp", expanded[2].ID)
}

func TestExpandReferenceHasAuthorityOverIdentifiers(t *testing.T) {
	ref := NotationReference{
		"buttons": {
			{ID: "hp", ElementID: "stale", CategoryID: "stale-cat", Name: "Heavy Punch"},
		},
	}

	expanded, misses := Expand(ref, []ComboNotationItem{{CategoryID: "buttons", ElementID: "hp"}})

	require.Len(t, expanded, 1)
	assert.Empty(t, misses)
	assert.Equal(t, "hp", expanded[0].ID)
	assert.Equal(t, "hp", expanded[0].ElementID)
	assert.Equal(t, "buttons", expanded[0].CategoryID)
	assert.Equal(t, "Heavy Punch", expanded[0].Name)
}

func TestExpandDoesNotMutateInputs(t *testing.T) {
	ref := testReference()
	original := ref["buttons"][0]
	items := []ComboNotationItem{{CategoryID: "buttons", ElementID: "lp"}}

	Expand(ref, items)

	assert.Equal(t, original, ref["buttons"][0])
	assert.Equal(t, ComboNotationItem{CategoryID: "buttons", ElementID: "lp"}, items[0])
}

func TestExpandEmptyAndNilInputs(t *testing.T) {
	expanded, misses := Expand(testReference(), nil)
	assert.Empty(t, expanded)
	assert.Empty(t, misses)

	expanded, misses = Expand(nil, []ComboNotationItem{{CategoryID: "buttons", ElementID: "lp"}})
	require.Len(t, expanded, 1)
	require.Len(t, misses, 1)
	assert.Equal(t, MissCategory, misses[0].Reason)
}

func TestExpandBare(t *testing.T) {
	items := []ComboNotationItem{
		{CategoryID: "buttons", ElementID: "lp"},
		{CategoryID: "motions", ElementID: "qcf"},
	}

	expanded := ExpandBare(items)

	require.Len(t, expanded, 2)
	// Without reference data the identifier doubles as the display name.
	assert.Equal(t, "lp", expanded[0].Name)
	assert.Equal(t, "buttons", expanded[0].CategoryID)
	assert.Equal(t, "Buttons", expanded[0].CategoryName)
	assert.Equal(t, "qcf", expanded[1].Name)
}
