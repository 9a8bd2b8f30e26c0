package services

import (
	"fmt"

	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/domain/repositories"
	"github.com/ComboLab/combolab-go/internal/infrastructure/security"
)

// CharacterService orchestrates character operations
type CharacterService struct {
	characterRepo repositories.CharacterRepository
	gameRepo      repositories.GameRepository
}

// NewCharacterService creates a new character application service
func NewCharacterService(characterRepo repositories.CharacterRepository, gameRepo repositories.GameRepository) *CharacterService {
	return &CharacterService{
		characterRepo: characterRepo,
		gameRepo:      gameRepo,
	}
}

// GetByID returns a character by ID (cache-first)
func (s *CharacterService) GetByID(id string) (*content.CharacterNode, error) {
	if id == "" {
		return nil, fmt.Errorf("character ID cannot be empty")
	}

	character, err := s.characterRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get character %s: %w", id, err)
	}
	return character, nil
}

// GetByGame returns the roster for a game
func (s *CharacterService) GetByGame(gameID string) ([]*content.CharacterNode, error) {
	if gameID == "" {
		return nil, fmt.Errorf("game ID cannot be empty")
	}

	characters, err := s.characterRepo.FindByGameID(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get characters for game %s: %w", gameID, err)
	}
	return characters, nil
}

// Create creates a new character under an existing game
func (s *CharacterService) Create(character *content.CharacterNode) error {
	if character == nil {
		return fmt.Errorf("character cannot be nil")
	}
	if character.Name == "" {
		return fmt.Errorf("character name cannot be empty")
	}
	if !slugPattern.MatchString(character.Slug) {
		return fmt.Errorf("invalid character slug: %s", character.Slug)
	}

	game, err := s.gameRepo.FindByID(character.GameID)
	if err != nil {
		return fmt.Errorf("failed to verify game %s: %w", character.GameID, err)
	}
	if game == nil {
		return fmt.Errorf("game %s not found", character.GameID)
	}

	if character.ID == "" {
		character.ID = security.GenerateULID()
	}
	character.NodeType = "Character"

	if err := s.characterRepo.Store(character); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	return nil
}

// Update updates an existing character
func (s *CharacterService) Update(character *content.CharacterNode) error {
	if character == nil {
		return fmt.Errorf("character cannot be nil")
	}
	if character.ID == "" {
		return fmt.Errorf("character ID cannot be empty")
	}

	if err := s.characterRepo.Update(character); err != nil {
		return fmt.Errorf("failed to update character %s: %w", character.ID, err)
	}
	return nil
}

// Delete removes a character
func (s *CharacterService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("character ID cannot be empty")
	}

	if err := s.characterRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete character %s: %w", id, err)
	}
	return nil
}
