package content

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/infrastructure/caching/interfaces"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/ComboLab/combolab-go/pkg/config"
)

type CharacterRepository struct {
	db     *sql.DB
	cache  interfaces.ContentCache
	logger *logging.ChanneledLogger
}

func NewCharacterRepository(db *sql.DB, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *CharacterRepository {
	return &CharacterRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *CharacterRepository) FindByID(id string) (*content.CharacterNode, error) {
	if character, found := r.cache.GetCharacter(id); found {
		return character, nil
	}

	character, err := r.loadFromDB(id)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, nil
	}

	r.cache.SetCharacter(character)
	return character, nil
}

func (r *CharacterRepository) FindByGameID(gameID string) ([]*content.CharacterNode, error) {
	query := `SELECT id, game_id, name, slug, archetype, description, image_url
              FROM characters WHERE game_id = ? ORDER BY name`

	start := time.Now()
	r.logger.Database().Debug("Loading characters from database", "gameId", gameID)

	rows, err := r.db.Query(query, gameID)
	if err != nil {
		r.logger.Database().Error("Failed to query characters", "error", err.Error(), "gameId", gameID)
		return nil, fmt.Errorf("failed to query characters: %w", err)
	}
	defer rows.Close()

	characters := []*content.CharacterNode{}
	for rows.Next() {
		character, err := scanCharacter(rows)
		if err != nil {
			return nil, err
		}
		r.cache.SetCharacter(character)
		characters = append(characters, character)
	}

	r.logger.Database().Info("Loaded characters from database", "gameId", gameID, "count", len(characters), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return characters, rows.Err()
}

func (r *CharacterRepository) Store(character *content.CharacterNode) error {
	query := `INSERT INTO characters (id, game_id, name, slug, archetype, description, image_url)
              VALUES (?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing character insert", "id", character.ID)

	_, err := r.db.Exec(query, character.ID, character.GameID, character.Name,
		character.Slug, character.Archetype, character.Description, character.ImageURL)
	if err != nil {
		r.logger.Database().Error("Character insert failed", "error", err.Error(), "id", character.ID)
		return fmt.Errorf("failed to insert character: %w", err)
	}

	r.logger.Database().Info("Character insert completed", "id", character.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	r.cache.SetCharacter(character)
	return nil
}

func (r *CharacterRepository) Update(character *content.CharacterNode) error {
	query := `UPDATE characters SET game_id = ?, name = ?, slug = ?, archetype = ?,
              description = ?, image_url = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing character update", "id", character.ID)

	_, err := r.db.Exec(query, character.GameID, character.Name, character.Slug,
		character.Archetype, character.Description, character.ImageURL, character.ID)
	if err != nil {
		r.logger.Database().Error("Character update failed", "error", err.Error(), "id", character.ID)
		return fmt.Errorf("failed to update character: %w", err)
	}

	r.logger.Database().Info("Character update completed", "id", character.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	r.cache.SetCharacter(character)
	return nil
}

func (r *CharacterRepository) Delete(id string) error {
	query := `DELETE FROM characters WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing character delete", "id", id)

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Database().Error("Character delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete character: %w", err)
	}

	r.logger.Database().Info("Character delete completed", "id", id, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	r.cache.InvalidateContentCache()
	return nil
}

func (r *CharacterRepository) loadFromDB(id string) (*content.CharacterNode, error) {
	query := `SELECT id, game_id, name, slug, archetype, description, image_url
              FROM characters WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading character from database", "id", id)

	row := r.db.QueryRow(query, id)

	character, err := scanCharacter(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan character", "error", err.Error(), "id", id)
		return nil, err
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return character, nil
}

func scanCharacter(row rowScanner) (*content.CharacterNode, error) {
	var character content.CharacterNode
	var archetype sql.NullString
	var description sql.NullString
	var imageURL sql.NullString

	err := row.Scan(&character.ID, &character.GameID, &character.Name,
		&character.Slug, &archetype, &description, &imageURL)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan character: %w", err)
	}

	character.NodeType = "Character"
	if archetype.Valid {
		character.Archetype = &archetype.String
	}
	if description.Valid {
		character.Description = description.String
	}
	if imageURL.Valid {
		character.ImageURL = &imageURL.String
	}
	return &character, nil
}
