// Package content defines the application's core content-related domain entities.
package content

import (
	"time"

	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
)

type GameNode struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	NodeType    string  `json:"nodeType"`
	Slug        string  `json:"slug"`
	Developer   string  `json:"developer,omitempty"`
	ReleaseYear int     `json:"releaseYear,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

type CharacterNode struct {
	ID          string  `json:"id"`
	GameID      string  `json:"gameId"`
	Name        string  `json:"name"`
	NodeType    string  `json:"nodeType"`
	Slug        string  `json:"slug"`
	Archetype   *string `json:"archetype,omitempty"`
	Description string  `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

type ComboNode struct {
	ID          string                        `json:"id"`
	GameID      string                        `json:"gameId"`
	CharacterID string                        `json:"characterId"`
	NodeType    string                        `json:"nodeType"`
	Name        string                        `json:"name"`
	Damage      int                           `json:"damage"`
	Difficulty  string                        `json:"difficulty"`
	Tags        []string                      `json:"tags"`
	Notation    []notation.ComboNotationItem  `json:"notation"`
	Likes       []string                      `json:"likes"`
	Dislikes    []string                      `json:"dislikes"`
	CreatedBy   string                        `json:"createdBy"`
	Created     time.Time                     `json:"created"`
	Changed     *time.Time                    `json:"changed,omitempty"`
}

// Difficulty levels accepted on combo create/update.
var ComboDifficulties = []string{"easy", "medium", "hard"}

// IsValidDifficulty reports whether d is one of the known difficulty levels.
func IsValidDifficulty(d string) bool {
	for _, known := range ComboDifficulties {
		if d == known {
			return true
		}
	}
	return false
}
