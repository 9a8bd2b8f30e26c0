// Package repositories defines the repository interfaces for content entities.
// These repositories abstract the data persistence details, ensuring the core
// application is clean and decoupled from the database.
package repositories

import (
	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
	"github.com/ComboLab/combolab-go/internal/domain/user"
)

type GameRepository interface {
	FindByID(id string) (*content.GameNode, error)
	FindBySlug(slug string) (*content.GameNode, error)
	FindAll() ([]*content.GameNode, error)
	Store(game *content.GameNode) error
	Update(game *content.GameNode) error
	Delete(id string) error
}

type CharacterRepository interface {
	FindByID(id string) (*content.CharacterNode, error)
	FindByGameID(gameID string) ([]*content.CharacterNode, error)
	Store(character *content.CharacterNode) error
	Update(character *content.CharacterNode) error
	Delete(id string) error
}

type ComboRepository interface {
	FindByID(id string) (*content.ComboNode, error)
	FindByCharacterID(characterID string) ([]*content.ComboNode, error)
	Store(combo *content.ComboNode) error
	Update(combo *content.ComboNode) error
	Delete(id string) error
}

// NotationRepository is the external fetch collaborator for per-game notation
// reference data. Implementations must signal failure with an error; callers
// treat that as "no data available", never as a crash.
type NotationRepository interface {
	FetchGameNotation(gameID string) (notation.NotationReference, error)
	StoreGameNotation(gameID string, ref notation.NotationReference) error
}

type UserRepository interface {
	FindByID(id string) (*user.User, error)
	FindByEmail(email string) (*user.User, error)
	Store(u *user.User) error
	UpdateFavorites(userID string, favorites *user.Favorites) error
}
