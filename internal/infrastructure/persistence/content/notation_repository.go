package content

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/ComboLab/combolab-go/pkg/config"
)

// NotationRepository loads and stores per-game notation reference data. It
// deliberately does not touch the content cache; the notation service owns
// reference-data caching so invalidation stays in one place.
type NotationRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewNotationRepository(db *sql.DB, logger *logging.ChanneledLogger) *NotationRepository {
	return &NotationRepository{
		db:     db,
		logger: logger,
	}
}

// FetchGameNotation loads the complete notation reference for a game, keyed
// by category id with elements in stored order.
func (r *NotationRepository) FetchGameNotation(gameID string) (notation.NotationReference, error) {
	query := `SELECT category_id, elements FROM game_notation WHERE game_id = ? ORDER BY position`

	start := time.Now()
	r.logger.Database().Debug("Loading notation reference from database", "gameId", gameID)

	rows, err := r.db.Query(query, gameID)
	if err != nil {
		r.logger.Database().Error("Failed to query notation reference", "error", err.Error(), "gameId", gameID)
		return nil, fmt.Errorf("failed to query notation reference: %w", err)
	}
	defer rows.Close()

	ref := notation.NotationReference{}
	for rows.Next() {
		var categoryID, elementsStr string
		if err := rows.Scan(&categoryID, &elementsStr); err != nil {
			return nil, fmt.Errorf("failed to scan notation category: %w", err)
		}

		var elements []notation.RawNotationElement
		if err := json.Unmarshal([]byte(elementsStr), &elements); err != nil {
			r.logger.Database().Error("Failed to parse notation elements", "error", err.Error(), "gameId", gameID, "categoryId", categoryID)
			return nil, fmt.Errorf("failed to parse notation elements for category %s: %w", categoryID, err)
		}
		ref[categoryID] = elements
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notation reference: %w", err)
	}

	r.logger.Database().Info("Loaded notation reference from database", "gameId", gameID, "categories", len(ref), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return ref, nil
}

// StoreGameNotation replaces the full notation reference for a game inside a
// single transaction.
func (r *NotationRepository) StoreGameNotation(gameID string, ref notation.NotationReference) error {
	start := time.Now()
	r.logger.Database().Debug("Storing notation reference", "gameId", gameID, "categories", len(ref))

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin notation transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM game_notation WHERE game_id = ?`, gameID); err != nil {
		r.logger.Database().Error("Notation reference delete failed", "error", err.Error(), "gameId", gameID)
		return fmt.Errorf("failed to clear notation reference: %w", err)
	}

	query := `INSERT INTO game_notation (game_id, category_id, elements, position) VALUES (?, ?, ?, ?)`
	position := 0
	for categoryID, elements := range ref {
		elementsJSON, err := json.Marshal(elements)
		if err != nil {
			return fmt.Errorf("failed to encode notation elements for category %s: %w", categoryID, err)
		}
		if _, err := tx.Exec(query, gameID, categoryID, string(elementsJSON), position); err != nil {
			r.logger.Database().Error("Notation reference insert failed", "error", err.Error(), "gameId", gameID, "categoryId", categoryID)
			return fmt.Errorf("failed to insert notation category %s: %w", categoryID, err)
		}
		position++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit notation reference: %w", err)
	}

	r.logger.Database().Info("Notation reference stored", "gameId", gameID, "duration", time.Since(start))
	return nil
}
