package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
	"github.com/ComboLab/combolab-go/internal/domain/repositories"
	"github.com/ComboLab/combolab-go/internal/infrastructure/messaging"
	"github.com/ComboLab/combolab-go/internal/infrastructure/security"
)

// ExpandedCombo is a combo with its notation resolved for display.
type ExpandedCombo struct {
	*content.ComboNode
	ExpandedNotation []*notation.ExpandedNotationItem `json:"expandedNotation"`
}

// ComboService orchestrates combo operations, vote toggling, and the live
// combo feed.
type ComboService struct {
	comboRepo       repositories.ComboRepository
	characterRepo   repositories.CharacterRepository
	notationService *NotationService
	broadcaster     *messaging.SSEBroadcaster
}

// NewComboService creates a new combo application service
func NewComboService(comboRepo repositories.ComboRepository, characterRepo repositories.CharacterRepository, notationService *NotationService, broadcaster *messaging.SSEBroadcaster) *ComboService {
	return &ComboService{
		comboRepo:       comboRepo,
		characterRepo:   characterRepo,
		notationService: notationService,
		broadcaster:     broadcaster,
	}
}

// GetByID returns a combo by ID (cache-first)
func (s *ComboService) GetByID(id string) (*content.ComboNode, error) {
	if id == "" {
		return nil, fmt.Errorf("combo ID cannot be empty")
	}

	combo, err := s.comboRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get combo %s: %w", id, err)
	}
	return combo, nil
}

// GetByCharacter returns all combos for a character, optionally sorted by
// "likes" (net votes, descending) or "recent" (newest first).
func (s *ComboService) GetByCharacter(characterID, sortBy string) ([]*content.ComboNode, error) {
	if characterID == "" {
		return nil, fmt.Errorf("character ID cannot be empty")
	}

	combos, err := s.comboRepo.FindByCharacterID(characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get combos for character %s: %w", characterID, err)
	}

	switch sortBy {
	case "":
	case "likes":
		sort.SliceStable(combos, func(i, j int) bool {
			return len(combos[i].Likes)-len(combos[i].Dislikes) > len(combos[j].Likes)-len(combos[j].Dislikes)
		})
	case "recent":
		sort.SliceStable(combos, func(i, j int) bool {
			return combos[i].Created.After(combos[j].Created)
		})
	default:
		return nil, fmt.Errorf("invalid sort: %s", sortBy)
	}

	return combos, nil
}

// GetExpanded returns a combo with its notation resolved against the game's
// reference data. Expansion never fails; a reference outage degrades to bare
// normalized items.
func (s *ComboService) GetExpanded(id string) (*ExpandedCombo, error) {
	combo, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if combo == nil {
		return nil, nil
	}

	return &ExpandedCombo{
		ComboNode:        combo,
		ExpandedNotation: s.notationService.ExpandComboNotation(combo.GameID, combo.Notation),
	}, nil
}

// Create creates a new combo under an existing character
func (s *ComboService) Create(combo *content.ComboNode, createdBy string) error {
	if combo == nil {
		return fmt.Errorf("combo cannot be nil")
	}
	if combo.Name == "" {
		return fmt.Errorf("combo name cannot be empty")
	}
	if !content.IsValidDifficulty(combo.Difficulty) {
		return fmt.Errorf("invalid combo difficulty: %s", combo.Difficulty)
	}

	character, err := s.characterRepo.FindByID(combo.CharacterID)
	if err != nil {
		return fmt.Errorf("failed to verify character %s: %w", combo.CharacterID, err)
	}
	if character == nil {
		return fmt.Errorf("character %s not found", combo.CharacterID)
	}

	if combo.ID == "" {
		combo.ID = security.GenerateULID()
	}
	combo.NodeType = "Combo"
	combo.GameID = character.GameID
	combo.CreatedBy = createdBy
	combo.Created = time.Now().UTC()
	combo.Changed = nil
	combo.Likes = []string{}
	combo.Dislikes = []string{}
	if combo.Tags == nil {
		combo.Tags = []string{}
	}
	if combo.Notation == nil {
		combo.Notation = []notation.ComboNotationItem{}
	}

	if err := s.comboRepo.Store(combo); err != nil {
		return fmt.Errorf("failed to create combo: %w", err)
	}

	s.broadcaster.BroadcastComboEvent(combo.GameID, "combo_created", combo.ID)
	return nil
}

// Update updates an existing combo. Only the author may update it.
func (s *ComboService) Update(combo *content.ComboNode, userID string) error {
	if combo == nil {
		return fmt.Errorf("combo cannot be nil")
	}
	if combo.ID == "" {
		return fmt.Errorf("combo ID cannot be empty")
	}
	if !content.IsValidDifficulty(combo.Difficulty) {
		return fmt.Errorf("invalid combo difficulty: %s", combo.Difficulty)
	}

	existing, err := s.comboRepo.FindByID(combo.ID)
	if err != nil {
		return fmt.Errorf("failed to get combo %s: %w", combo.ID, err)
	}
	if existing == nil {
		return fmt.Errorf("combo %s not found", combo.ID)
	}
	if existing.CreatedBy != userID {
		return fmt.Errorf("combo %s does not belong to user", combo.ID)
	}

	combo.GameID = existing.GameID
	combo.CharacterID = existing.CharacterID
	combo.CreatedBy = existing.CreatedBy
	combo.Created = existing.Created
	combo.Likes = existing.Likes
	combo.Dislikes = existing.Dislikes
	now := time.Now().UTC()
	combo.Changed = &now

	if err := s.comboRepo.Update(combo); err != nil {
		return fmt.Errorf("failed to update combo %s: %w", combo.ID, err)
	}

	s.broadcaster.BroadcastComboEvent(combo.GameID, "combo_updated", combo.ID)
	return nil
}

// Delete removes a combo. Only the author may delete it.
func (s *ComboService) Delete(id, userID string) error {
	existing, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("combo %s not found", id)
	}
	if existing.CreatedBy != userID {
		return fmt.Errorf("combo %s does not belong to user", id)
	}

	if err := s.comboRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete combo %s: %w", id, err)
	}

	s.broadcaster.BroadcastComboEvent(existing.GameID, "combo_deleted", id)
	return nil
}

// ToggleLike records or withdraws a like. Liking clears any standing dislike
// from the same user.
func (s *ComboService) ToggleLike(comboID, userID string) (*content.ComboNode, error) {
	return s.toggleVote(comboID, userID, true)
}

// ToggleDislike records or withdraws a dislike. Disliking clears any standing
// like from the same user.
func (s *ComboService) ToggleDislike(comboID, userID string) (*content.ComboNode, error) {
	return s.toggleVote(comboID, userID, false)
}

func (s *ComboService) toggleVote(comboID, userID string, like bool) (*content.ComboNode, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID cannot be empty")
	}

	existing, err := s.GetByID(comboID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("combo %s not found", comboID)
	}

	// The loaded node may be the cache-resident copy shared with concurrent
	// readers. Work on a copy with fresh vote slices; only a successful Update
	// publishes the new state.
	combo := *existing
	combo.Likes = append([]string{}, existing.Likes...)
	combo.Dislikes = append([]string{}, existing.Dislikes...)

	if like {
		combo.Likes = toggleUserID(combo.Likes, userID)
		combo.Dislikes = removeUserID(combo.Dislikes, userID)
	} else {
		combo.Dislikes = toggleUserID(combo.Dislikes, userID)
		combo.Likes = removeUserID(combo.Likes, userID)
	}

	now := time.Now().UTC()
	combo.Changed = &now

	if err := s.comboRepo.Update(&combo); err != nil {
		return nil, fmt.Errorf("failed to update combo votes: %w", err)
	}

	s.broadcaster.BroadcastComboEvent(combo.GameID, "combo_updated", combo.ID)
	return &combo, nil
}

func toggleUserID(ids []string, userID string) []string {
	for i, id := range ids {
		if id == userID {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, userID)
}

func removeUserID(ids []string, userID string) []string {
	for i, id := range ids {
		if id == userID {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
