package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeNilInput(t *testing.T) {
	assert.Nil(t, Normalize(nil))
}

func TestNormalizeFlatVariant(t *testing.T) {
	raw := &RawNotationElement{
		ID:          "hp",
		CategoryID:  "buttons",
		Name:        "Heavy Punch",
		Symbol:      "HP",
		Numpad:      "HP",
		Description: "strongest punch",
	}

	got := Normalize(raw)
	require.NotNil(t, got)
	assert.Equal(t, "hp", got.ID)
	assert.Equal(t, "hp", got.ElementID)
	assert.Equal(t, "buttons", got.CategoryID)
	assert.Equal(t, "Heavy Punch", got.Name)
	assert.Equal(t, "HP", got.Symbol)
	assert.Equal(t, "HP", got.Numpad)
	assert.Equal(t, "strongest punch", got.Description)
}

func TestNormalizeNestedVariantPrefersElementPayload(t *testing.T) {
	raw := &RawNotationElement{
		ID:          "qcf",
		CategoryID:  "motions",
		Name:        "stale top-level name",
		Symbol:      "stale",
		Description: "top-level description",
		ImageURL:    strPtr("/old.png"),
		Element: &RawElementFields{
			Name:        "Quarter Circle Forward",
			Symbol:      "↓↘→",
			Numpad:      "236",
			Description: "roll the stick forward",
			ImageURL:    strPtr("/qcf.webp"),
		},
	}

	got := Normalize(raw)
	require.NotNil(t, got)
	assert.Equal(t, "Quarter Circle Forward", got.Name)
	assert.Equal(t, "↓↘→", got.Symbol)
	assert.Equal(t, "236", got.Numpad)
	assert.Equal(t, "roll the stick forward", got.Description)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "/qcf.webp", *got.ImageURL)
}

func TestNormalizeNestedVariantFallsBackToFlatFields(t *testing.T) {
	raw := &RawNotationElement{
		ID:         "lk",
		CategoryID: "buttons",
		Name:       "Light Kick",
		Numpad:     "LK",
		ImageURL:   strPtr("/lk.png"),
		Element:    &RawElementFields{},
	}

	got := Normalize(raw)
	require.NotNil(t, got)
	assert.Equal(t, "Light Kick", got.Name)
	assert.Equal(t, "LK", got.Numpad)
	// An empty nested image must not mask the top-level one.
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "/lk.png", *got.ImageURL)
}

func TestNormalizeIDCrossPopulation(t *testing.T) {
	t.Run("id fills elementId", func(t *testing.T) {
		got := Normalize(&RawNotationElement{ID: "lp"})
		assert.Equal(t, "lp", got.ID)
		assert.Equal(t, "lp", got.ElementID)
	})

	t.Run("elementId fills id", func(t *testing.T) {
		got := Normalize(&RawNotationElement{ElementID: "lp"})
		assert.Equal(t, "lp", got.ID)
		assert.Equal(t, "lp", got.ElementID)
	})
}

func TestNormalizeNameAndSymbolFallBackToIdentifier(t *testing.T) {
	got := Normalize(&RawNotationElement{ID: "hk", CategoryID: "buttons"})
	assert.Equal(t, "hk", got.Name)
	assert.Equal(t, "hk", got.Symbol)
}

func TestNormalizeDefaults(t *testing.T) {
	got := Normalize(&RawNotationElement{})
	require.NotNil(t, got)
	assert.Equal(t, "Unknown", got.Name)
	assert.Equal(t, "unknown", got.CategoryID)
	assert.Equal(t, "", got.Symbol)
	assert.Equal(t, "", got.Numpad)
	assert.Equal(t, "", got.Display)
	assert.Equal(t, "", got.Description)
	assert.Nil(t, got.ImageURL)
}

func TestNormalizeIdempotent(t *testing.T) {
	first := Normalize(&RawNotationElement{
		ID:         "mp",
		CategoryID: "buttons",
		Name:       "Medium Punch",
		Symbol:     "MP",
	})

	second := Normalize(&RawNotationElement{
		ID:          first.ID,
		ElementID:   first.ElementID,
		CategoryID:  first.CategoryID,
		Name:        first.Name,
		Symbol:      first.Symbol,
		Numpad:      first.Numpad,
		ImageURL:    first.ImageURL,
		Display:     first.Display,
		Description: first.Description,
	})

	assert.Equal(t, first, second)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	raw := &RawNotationElement{ID: "lp", CategoryID: "buttons"}
	snapshot := *raw

	Normalize(raw)

	assert.Equal(t, snapshot, *raw)
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Buttons", CategoryName("buttons"))
	assert.Equal(t, "Motions", CategoryName("motions"))
	assert.Equal(t, "Custom-stuff", CategoryName("custom-stuff"))
	assert.Equal(t, "Éléments", CategoryName("éléments"))
	assert.Equal(t, "", CategoryName(""))
}
