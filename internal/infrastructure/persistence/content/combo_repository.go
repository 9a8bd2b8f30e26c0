package content

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
	"github.com/ComboLab/combolab-go/internal/infrastructure/caching/interfaces"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/ComboLab/combolab-go/pkg/config"
)

type ComboRepository struct {
	db     *sql.DB
	cache  interfaces.ContentCache
	logger *logging.ChanneledLogger
}

func NewComboRepository(db *sql.DB, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *ComboRepository {
	return &ComboRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *ComboRepository) FindByID(id string) (*content.ComboNode, error) {
	if combo, found := r.cache.GetCombo(id); found {
		return combo, nil
	}

	combo, err := r.loadFromDB(id)
	if err != nil {
		return nil, err
	}
	if combo == nil {
		return nil, nil
	}

	r.cache.SetCombo(combo)
	return combo, nil
}

func (r *ComboRepository) FindByCharacterID(characterID string) ([]*content.ComboNode, error) {
	query := `SELECT id, game_id, character_id, name, damage, difficulty, tags, notation,
              likes, dislikes, created_by, created, changed
              FROM combos WHERE character_id = ? ORDER BY created DESC`

	start := time.Now()
	r.logger.Database().Debug("Loading combos from database", "characterId", characterID)

	rows, err := r.db.Query(query, characterID)
	if err != nil {
		r.logger.Database().Error("Failed to query combos", "error", err.Error(), "characterId", characterID)
		return nil, fmt.Errorf("failed to query combos: %w", err)
	}
	defer rows.Close()

	combos := []*content.ComboNode{}
	for rows.Next() {
		combo, err := scanCombo(rows)
		if err != nil {
			return nil, err
		}
		r.cache.SetCombo(combo)
		combos = append(combos, combo)
	}

	r.logger.Database().Info("Loaded combos from database", "characterId", characterID, "count", len(combos), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return combos, rows.Err()
}

func (r *ComboRepository) Store(combo *content.ComboNode) error {
	tagsJSON, _ := json.Marshal(combo.Tags)
	notationJSON, _ := json.Marshal(combo.Notation)
	likesJSON, _ := json.Marshal(combo.Likes)
	dislikesJSON, _ := json.Marshal(combo.Dislikes)

	query := `INSERT INTO combos (id, game_id, character_id, name, damage, difficulty, tags,
              notation, likes, dislikes, created_by, created, changed)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing combo insert", "id", combo.ID)

	_, err := r.db.Exec(query, combo.ID, combo.GameID, combo.CharacterID, combo.Name,
		combo.Damage, combo.Difficulty, string(tagsJSON), string(notationJSON),
		string(likesJSON), string(dislikesJSON), combo.CreatedBy, combo.Created, combo.Changed)
	if err != nil {
		r.logger.Database().Error("Combo insert failed", "error", err.Error(), "id", combo.ID)
		return fmt.Errorf("failed to insert combo: %w", err)
	}

	r.logger.Database().Info("Combo insert completed", "id", combo.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	r.cache.SetCombo(combo)
	return nil
}

func (r *ComboRepository) Update(combo *content.ComboNode) error {
	tagsJSON, _ := json.Marshal(combo.Tags)
	notationJSON, _ := json.Marshal(combo.Notation)
	likesJSON, _ := json.Marshal(combo.Likes)
	dislikesJSON, _ := json.Marshal(combo.Dislikes)

	query := `UPDATE combos SET name = ?, damage = ?, difficulty = ?, tags = ?, notation = ?,
              likes = ?, dislikes = ?, changed = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing combo update", "id", combo.ID)

	_, err := r.db.Exec(query, combo.Name, combo.Damage, combo.Difficulty, string(tagsJSON),
		string(notationJSON), string(likesJSON), string(dislikesJSON), combo.Changed, combo.ID)
	if err != nil {
		r.logger.Database().Error("Combo update failed", "error", err.Error(), "id", combo.ID)
		return fmt.Errorf("failed to update combo: %w", err)
	}

	r.logger.Database().Info("Combo update completed", "id", combo.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	r.cache.SetCombo(combo)
	return nil
}

func (r *ComboRepository) Delete(id string) error {
	query := `DELETE FROM combos WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing combo delete", "id", id)

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Database().Error("Combo delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete combo: %w", err)
	}

	r.logger.Database().Info("Combo delete completed", "id", id, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	r.cache.RemoveCombo(id)
	return nil
}

func (r *ComboRepository) loadFromDB(id string) (*content.ComboNode, error) {
	query := `SELECT id, game_id, character_id, name, damage, difficulty, tags, notation,
              likes, dislikes, created_by, created, changed
              FROM combos WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading combo from database", "id", id)

	row := r.db.QueryRow(query, id)

	combo, err := scanCombo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan combo", "error", err.Error(), "id", id)
		return nil, err
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return combo, nil
}

func scanCombo(row rowScanner) (*content.ComboNode, error) {
	var combo content.ComboNode
	var tagsStr, notationStr, likesStr, dislikesStr string
	var changed sql.NullTime

	err := row.Scan(&combo.ID, &combo.GameID, &combo.CharacterID, &combo.Name,
		&combo.Damage, &combo.Difficulty, &tagsStr, &notationStr,
		&likesStr, &dislikesStr, &combo.CreatedBy, &combo.Created, &changed)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan combo: %w", err)
	}

	combo.NodeType = "Combo"
	if err := json.Unmarshal([]byte(tagsStr), &combo.Tags); err != nil {
		return nil, fmt.Errorf("failed to parse combo tags: %w", err)
	}
	if err := json.Unmarshal([]byte(notationStr), &combo.Notation); err != nil {
		return nil, fmt.Errorf("failed to parse combo notation: %w", err)
	}
	if err := json.Unmarshal([]byte(likesStr), &combo.Likes); err != nil {
		return nil, fmt.Errorf("failed to parse combo likes: %w", err)
	}
	if err := json.Unmarshal([]byte(dislikesStr), &combo.Dislikes); err != nil {
		return nil, fmt.Errorf("failed to parse combo dislikes: %w", err)
	}
	if combo.Tags == nil {
		combo.Tags = []string{}
	}
	if combo.Notation == nil {
		combo.Notation = []notation.ComboNotationItem{}
	}
	if combo.Likes == nil {
		combo.Likes = []string{}
	}
	if combo.Dislikes == nil {
		combo.Dislikes = []string{}
	}
	if changed.Valid {
		combo.Changed = &changed.Time
	}
	return &combo, nil
}
