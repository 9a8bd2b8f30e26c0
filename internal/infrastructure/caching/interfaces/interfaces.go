// Package interfaces defines the caching contracts consumed by repositories
// and services.
package interfaces

import (
	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
)

// ContentCache is the cache surface for content nodes and notation reference
// data.
type ContentCache interface {
	GetGame(id string) (*content.GameNode, bool)
	SetGame(node *content.GameNode)
	GetGameIDBySlug(slug string) (string, bool)

	GetCharacter(id string) (*content.CharacterNode, bool)
	SetCharacter(node *content.CharacterNode)

	GetCombo(id string) (*content.ComboNode, bool)
	SetCombo(node *content.ComboNode)
	RemoveCombo(id string)

	GetNotationReference(gameID string) (notation.NotationReference, bool)
	SetNotationReference(gameID string, ref notation.NotationReference)
	InvalidateNotationReference(gameID string)
	InvalidateAllNotationReferences()

	InvalidateContentCache()
}
