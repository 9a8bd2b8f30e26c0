// Package services provides application-level services that orchestrate
// business logic and coordinate between repositories and domain entities.
package services

import (
	"fmt"

	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
	"github.com/ComboLab/combolab-go/internal/domain/repositories"
	"github.com/ComboLab/combolab-go/internal/infrastructure/caching/interfaces"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
)

// NotationService orchestrates notation reference data and combo expansion.
// Expansion never fails: any error on the reference path degrades to bare
// normalization so a combo always renders.
type NotationService struct {
	notationRepo repositories.NotationRepository
	cache        interfaces.ContentCache
	logger       *logging.ChanneledLogger
}

// NewNotationService creates a new notation application service
func NewNotationService(notationRepo repositories.NotationRepository, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *NotationService {
	return &NotationService{
		notationRepo: notationRepo,
		cache:        cache,
		logger:       logger,
	}
}

// GetReferenceData returns the notation reference for a game, fetching it at
// most once per cache lifetime. Failed fetches are never cached, so the next
// call retries.
func (s *NotationService) GetReferenceData(gameID string) (notation.NotationReference, error) {
	if gameID == "" {
		return nil, fmt.Errorf("game ID cannot be empty")
	}

	if ref, found := s.cache.GetNotationReference(gameID); found {
		s.logger.LogCacheOperation("get", "notation:"+gameID, true)
		return ref, nil
	}
	s.logger.LogCacheOperation("get", "notation:"+gameID, false)

	ref, err := s.notationRepo.FetchGameNotation(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notation reference for game %s: %w", gameID, err)
	}

	s.cache.SetNotationReference(gameID, ref)
	return ref, nil
}

// ExpandComboNotation resolves a combo's compact notation into fully
// displayable elements. The result always has the same length and order as
// the input. Reference failures and lookup misses degrade to synthesized
// placeholders rather than errors.
func (s *NotationService) ExpandComboNotation(gameID string, items []notation.ComboNotationItem) (result []*notation.ExpandedNotationItem) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Notation().Error("Panic recovered in combo expansion", "error", r, "gameId", gameID)
			result = notation.ExpandBare(items)
		}
	}()

	// Without a game there is no reference data to resolve against; the
	// contract for a missing game id is an empty sequence, not a degraded one.
	if gameID == "" {
		return []*notation.ExpandedNotationItem{}
	}

	if len(items) == 0 {
		return []*notation.ExpandedNotationItem{}
	}

	ref, err := s.GetReferenceData(gameID)
	if err != nil {
		s.logger.Notation().Warn("Expanding without reference data", "error", err.Error(), "gameId", gameID)
		return notation.ExpandBare(items)
	}

	expanded, misses := notation.Expand(ref, items)
	for _, miss := range misses {
		s.logger.Notation().Warn("Notation lookup miss",
			"gameId", gameID,
			"index", miss.Index,
			"categoryId", miss.CategoryID,
			"elementId", miss.ElementID,
			"reason", string(miss.Reason))
	}
	return expanded
}

// GetNotationElement resolves a single element from a game's reference data,
// labeled with its category name. A fetch failure or a lookup miss yields nil
// after logging, never an error.
func (s *NotationService) GetNotationElement(gameID, categoryID, elementID string) *notation.ExpandedNotationItem {
	ref, err := s.GetReferenceData(gameID)
	if err != nil {
		s.logger.Notation().Warn("Element lookup without reference data",
			"error", err.Error(),
			"gameId", gameID,
			"categoryId", categoryID,
			"elementId", elementID)
		return nil
	}

	element := notation.ResolveElement(ref, categoryID, elementID)
	if element == nil {
		return nil
	}

	return &notation.ExpandedNotationItem{
		NotationElement: *element,
		CategoryName:    notation.CategoryName(categoryID),
	}
}

// UpdateGameNotation replaces a game's stored reference data and drops the
// cached copy so the next read sees the new data.
func (s *NotationService) UpdateGameNotation(gameID string, ref notation.NotationReference) error {
	if gameID == "" {
		return fmt.Errorf("game ID cannot be empty")
	}
	if ref == nil {
		return fmt.Errorf("notation reference cannot be nil")
	}

	if err := s.notationRepo.StoreGameNotation(gameID, ref); err != nil {
		return fmt.Errorf("failed to store notation reference for game %s: %w", gameID, err)
	}

	s.cache.InvalidateNotationReference(gameID)
	s.logger.Notation().Info("Notation reference updated", "gameId", gameID, "categories", len(ref))
	return nil
}

// ClearCache drops cached reference data for one game, or for all games when
// gameID is empty.
func (s *NotationService) ClearCache(gameID string) {
	if gameID == "" {
		s.cache.InvalidateAllNotationReferences()
		s.logger.Cache().Info("All notation references invalidated")
		return
	}
	s.cache.InvalidateNotationReference(gameID)
	s.logger.Cache().Info("Notation reference invalidated", "gameId", gameID)
}
