package services

import (
	"fmt"
	"regexp"

	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/domain/repositories"
	"github.com/ComboLab/combolab-go/internal/infrastructure/security"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// GameService orchestrates game operations with cache-first repository pattern
type GameService struct {
	gameRepo repositories.GameRepository
}

// NewGameService creates a new game application service
func NewGameService(gameRepo repositories.GameRepository) *GameService {
	return &GameService{
		gameRepo: gameRepo,
	}
}

// GetAll returns all games (cache-first)
func (s *GameService) GetAll() ([]*content.GameNode, error) {
	games, err := s.gameRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get all games: %w", err)
	}
	return games, nil
}

// GetByID returns a game by ID (cache-first)
func (s *GameService) GetByID(id string) (*content.GameNode, error) {
	if id == "" {
		return nil, fmt.Errorf("game ID cannot be empty")
	}

	game, err := s.gameRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game %s: %w", id, err)
	}
	return game, nil
}

// GetBySlug returns a game by slug (cache-first)
func (s *GameService) GetBySlug(slug string) (*content.GameNode, error) {
	if slug == "" {
		return nil, fmt.Errorf("game slug cannot be empty")
	}

	game, err := s.gameRepo.FindBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by slug %s: %w", slug, err)
	}
	return game, nil
}

// Create creates a new game
func (s *GameService) Create(game *content.GameNode) error {
	if game == nil {
		return fmt.Errorf("game cannot be nil")
	}
	if game.Title == "" {
		return fmt.Errorf("game title cannot be empty")
	}
	if !slugPattern.MatchString(game.Slug) {
		return fmt.Errorf("invalid game slug: %s", game.Slug)
	}

	if game.ID == "" {
		game.ID = security.GenerateULID()
	}
	game.NodeType = "Game"

	if err := s.gameRepo.Store(game); err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// Update updates an existing game
func (s *GameService) Update(game *content.GameNode) error {
	if game == nil {
		return fmt.Errorf("game cannot be nil")
	}
	if game.ID == "" {
		return fmt.Errorf("game ID cannot be empty")
	}
	if !slugPattern.MatchString(game.Slug) {
		return fmt.Errorf("invalid game slug: %s", game.Slug)
	}

	if err := s.gameRepo.Update(game); err != nil {
		return fmt.Errorf("failed to update game %s: %w", game.ID, err)
	}
	return nil
}

// Delete removes a game
func (s *GameService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("game ID cannot be empty")
	}

	if err := s.gameRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete game %s: %w", id, err)
	}
	return nil
}
