package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReference() NotationReference {
	return NotationReference{
		"buttons": {
			{ID: "lp", Name: "Light Punch", Symbol: "LP"},
			{ID: "lp", Name: "Duplicate Light Punch", Symbol: "LP2"},
			{ID: "hp", Name: "Heavy Punch", Symbol: "HP"},
		},
		"motions": {
			{ID: "qcf", Name: "Quarter Circle Forward", Symbol: "236"},
		},
	}
}

func TestResolveElementHit(t *testing.T) {
	got := ResolveElement(testReference(), "buttons", "hp")
	require.NotNil(t, got)
	assert.Equal(t, "Heavy Punch", got.Name)
	assert.Equal(t, "buttons", got.CategoryID)
}

func TestResolveElementFirstWins(t *testing.T) {
	got := ResolveElement(testReference(), "buttons", "lp")
	require.NotNil(t, got)
	assert.Equal(t, "Light Punch", got.Name)
}

func TestResolveElementMisses(t *testing.T) {
	ref := testReference()

	assert.Nil(t, ResolveElement(ref, "buttons", "nope"))
	assert.Nil(t, ResolveElement(ref, "nope", "lp"))
	assert.Nil(t, ResolveElement(nil, "buttons", "lp"))
}

func TestLookupRawDoesNotCopy(t *testing.T) {
	ref := testReference()

	got := LookupRaw(ref, "motions", "qcf")
	require.NotNil(t, got)
	assert.Same(t, &ref["motions"][0], got)
}
