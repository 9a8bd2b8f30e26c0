package stores

import (
	"testing"

	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentStoreGameRoundTrip(t *testing.T) {
	cs := NewContentStore()

	_, found := cs.GetGame("g1")
	assert.False(t, found)

	cs.SetGame(&content.GameNode{ID: "g1", Title: "Street Fighter 6", Slug: "street-fighter-6"})

	game, found := cs.GetGame("g1")
	require.True(t, found)
	assert.Equal(t, "Street Fighter 6", game.Title)

	id, found := cs.GetGameIDBySlug("street-fighter-6")
	require.True(t, found)
	assert.Equal(t, "g1", id)
}

func TestContentStoreComboRemove(t *testing.T) {
	cs := NewContentStore()
	cs.SetCombo(&content.ComboNode{ID: "c1", Name: "BnB"})

	_, found := cs.GetCombo("c1")
	require.True(t, found)

	cs.RemoveCombo("c1")

	_, found = cs.GetCombo("c1")
	assert.False(t, found)
}

func TestContentStoreNotationReferenceLifecycle(t *testing.T) {
	cs := NewContentStore()
	ref := notation.NotationReference{
		"buttons": {{ID: "lp", Name: "Light Punch"}},
	}

	_, found := cs.GetNotationReference("g1")
	assert.False(t, found)

	cs.SetNotationReference("g1", ref)
	cs.SetNotationReference("g2", ref)

	got, found := cs.GetNotationReference("g1")
	require.True(t, found)
	assert.Len(t, got["buttons"], 1)

	cs.InvalidateNotationReference("g1")
	_, found = cs.GetNotationReference("g1")
	assert.False(t, found)
	_, found = cs.GetNotationReference("g2")
	assert.True(t, found)

	cs.InvalidateAllNotationReferences()
	_, found = cs.GetNotationReference("g2")
	assert.False(t, found)
}

func TestContentStoreInvalidateContentCache(t *testing.T) {
	cs := NewContentStore()
	cs.SetGame(&content.GameNode{ID: "g1", Slug: "g1"})
	cs.SetCharacter(&content.CharacterNode{ID: "ch1"})
	cs.SetCombo(&content.ComboNode{ID: "c1"})
	cs.SetNotationReference("g1", notation.NotationReference{})

	cs.InvalidateContentCache()

	_, found := cs.GetGame("g1")
	assert.False(t, found)
	_, found = cs.GetCharacter("ch1")
	assert.False(t, found)
	_, found = cs.GetCombo("c1")
	assert.False(t, found)
	_, found = cs.GetNotationReference("g1")
	assert.False(t, found)
}
