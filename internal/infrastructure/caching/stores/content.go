// Package stores provides concrete cache store implementations
package stores

import (
	"time"

	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
	"github.com/ComboLab/combolab-go/internal/infrastructure/caching/types"
	"github.com/ComboLab/combolab-go/pkg/config"
)

// ContentStore implements content caching operations over a single
// ContentCache instance.
type ContentStore struct {
	cache *types.ContentCache
}

// NewContentStore creates a new content cache store
func NewContentStore() *ContentStore {
	return &ContentStore{
		cache: &types.ContentCache{
			Games:        make(map[string]*content.GameNode),
			Characters:   make(map[string]*content.CharacterNode),
			Combos:       make(map[string]*content.ComboNode),
			NotationRefs: make(map[string]*types.NotationRefEntry),
			GameSlugToID: make(map[string]string),
			LastUpdated:  time.Now().UTC(),
		},
	}
}

// fresh reports whether a timestamp is within the content TTL.
func fresh(lastUpdated time.Time) bool {
	return time.Since(lastUpdated) <= config.ContentCacheTTL
}

// GetGame retrieves a game by ID
func (cs *ContentStore) GetGame(id string) (*content.GameNode, bool) {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()

	if !fresh(cs.cache.LastUpdated) {
		return nil, false
	}

	node, exists := cs.cache.Games[id]
	return node, exists
}

// SetGame stores a game
func (cs *ContentStore) SetGame(node *content.GameNode) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()

	cs.cache.Games[node.ID] = node
	cs.cache.GameSlugToID[node.Slug] = node.ID
	cs.cache.LastUpdated = time.Now().UTC()
}

// GetGameIDBySlug resolves a game slug to its id
func (cs *ContentStore) GetGameIDBySlug(slug string) (string, bool) {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()

	if !fresh(cs.cache.LastUpdated) {
		return "", false
	}

	id, exists := cs.cache.GameSlugToID[slug]
	return id, exists
}

// GetCharacter retrieves a character by ID
func (cs *ContentStore) GetCharacter(id string) (*content.CharacterNode, bool) {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()

	if !fresh(cs.cache.LastUpdated) {
		return nil, false
	}

	node, exists := cs.cache.Characters[id]
	return node, exists
}

// SetCharacter stores a character
func (cs *ContentStore) SetCharacter(node *content.CharacterNode) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()

	cs.cache.Characters[node.ID] = node
	cs.cache.LastUpdated = time.Now().UTC()
}

// GetCombo retrieves a combo by ID
func (cs *ContentStore) GetCombo(id string) (*content.ComboNode, bool) {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()

	if !fresh(cs.cache.LastUpdated) {
		return nil, false
	}

	node, exists := cs.cache.Combos[id]
	return node, exists
}

// SetCombo stores a combo
func (cs *ContentStore) SetCombo(node *content.ComboNode) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()

	cs.cache.Combos[node.ID] = node
	cs.cache.LastUpdated = time.Now().UTC()
}

// RemoveCombo drops a single combo from the cache
func (cs *ContentStore) RemoveCombo(id string) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()

	delete(cs.cache.Combos, id)
	cs.cache.LastUpdated = time.Now().UTC()
}

// =============================================================================
// Notation Reference Operations
// =============================================================================

// GetNotationReference retrieves cached notation reference data for a game
func (cs *ContentStore) GetNotationReference(gameID string) (notation.NotationReference, bool) {
	cs.cache.Mu.RLock()
	defer cs.cache.Mu.RUnlock()

	entry, exists := cs.cache.NotationRefs[gameID]
	if !exists {
		return nil, false
	}

	if !fresh(entry.LastUpdated) {
		return nil, false
	}

	return entry.Ref, true
}

// SetNotationReference stores notation reference data for a game. Only
// successful fetches should be stored; failures must not poison the cache.
func (cs *ContentStore) SetNotationReference(gameID string, ref notation.NotationReference) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()

	cs.cache.NotationRefs[gameID] = &types.NotationRefEntry{
		Ref:         ref,
		LastUpdated: time.Now().UTC(),
	}
}

// InvalidateNotationReference drops the cached reference data for one game
func (cs *ContentStore) InvalidateNotationReference(gameID string) {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()

	delete(cs.cache.NotationRefs, gameID)
}

// InvalidateAllNotationReferences drops all cached reference data
func (cs *ContentStore) InvalidateAllNotationReferences() {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()

	cs.cache.NotationRefs = make(map[string]*types.NotationRefEntry)
}

// =============================================================================
// Cache Management Operations
// =============================================================================

// InvalidateContentCache clears all cached content
func (cs *ContentStore) InvalidateContentCache() {
	cs.cache.Mu.Lock()
	defer cs.cache.Mu.Unlock()

	cs.cache.Games = make(map[string]*content.GameNode)
	cs.cache.Characters = make(map[string]*content.CharacterNode)
	cs.cache.Combos = make(map[string]*content.ComboNode)
	cs.cache.NotationRefs = make(map[string]*types.NotationRefEntry)
	cs.cache.GameSlugToID = make(map[string]string)

	cs.cache.LastUpdated = time.Now().UTC()
}
