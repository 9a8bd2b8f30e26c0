// Package types defines the in-memory cache structures.
package types

import (
	"sync"
	"time"

	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
)

// ContentCache holds all cached content nodes plus the per-game notation
// reference data. A single RWMutex guards the whole structure; reads vastly
// outnumber writes.
type ContentCache struct {
	Mu sync.RWMutex

	Games      map[string]*content.GameNode
	Characters map[string]*content.CharacterNode
	Combos     map[string]*content.ComboNode

	// NotationRefs memoizes reference data keyed by game id. Entries are
	// only written on successful fetches; failures are never cached.
	NotationRefs map[string]*NotationRefEntry

	GameSlugToID map[string]string

	LastUpdated time.Time
}

// NotationRefEntry is one cached notation reference with its own freshness
// timestamp, so a single game's reference data can expire or be invalidated
// without disturbing the rest of the content cache.
type NotationRefEntry struct {
	Ref         notation.NotationReference
	LastUpdated time.Time
}
