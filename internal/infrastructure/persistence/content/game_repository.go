// Package content provides the content repositories
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

type GameRepository struct {
	db     *sql.DB
	cache  interfaces.ContentCache
	logger *logging.ChanneledLogger
}

func NewGameRepository(db *sql.DB, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *GameRepository {
	return &GameRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *GameRepository) FindByID(id string) (*content.GameNode, error) {
	if game, found := r.cache.GetGame(id); found {
		return game, nil
	}

	game, err := r.loadFromDB(id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, nil
	}

	r.cache.SetGame(game)
	return game, nil
}

func (r *GameRepository) FindBySlug(slug string) (*content.GameNode, error) {
	if id, found := r.cache.GetGameIDBySlug(slug); found {
		return r.FindByID(id)
	}

	id, err := r.getIDBySlugFromDB(slug)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}

	return r.FindByID(id)
}

func (r *GameRepository) FindAll() ([]*content.GameNode, error) {
	query := `SELECT id, title, slug, developer, release_year, image_url FROM games ORDER BY title`

	start := time.Now()
	r.logger.Database().Debug("Loading all games from database")

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query games", "error", err.Error())
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	games := []*content.GameNode{}
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		r.cache.SetGame(game)
		games = append(games, game)
	}

	r.logger.Database().Info("Loaded games from database", "count", len(games), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return games, rows.Err()
}

func (r *GameRepository) Store(game *content.GameNode) error {
	query := `INSERT INTO games (id, title, slug, developer, release_year, image_url)
              VALUES (?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing game insert", "id", game.ID)

	_, err := r.db.Exec(query, game.ID, game.Title, game.Slug,
		game.Developer, game.ReleaseYear, game.ImageURL)
	if err != nil {
		r.logger.Database().Error("Game insert failed", "error", err.Error(), "id", game.ID)
		return fmt.Errorf("failed to insert game: %w", err)
	}

	r.logger.Database().Info("Game insert completed", "id", game.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	r.cache.SetGame(game)
	return nil
}

func (r *GameRepository) Update(game *content.GameNode) error {
	query := `UPDATE games SET title = ?, slug = ?, developer = ?, release_year = ?, image_url = ?
              WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing game update", "id", game.ID)

	_, err := r.db.Exec(query, game.Title, game.Slug, game.Developer,
		game.ReleaseYear, game.ImageURL, game.ID)
	if err != nil {
		r.logger.Database().Error("Game update failed", "error", err.Error(), "id", game.ID)
		return fmt.Errorf("failed to update game: %w", err)
	}

	r.logger.Database().Info("Game update completed", "id", game.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	r.cache.SetGame(game)
	return nil
}

func (r *GameRepository) Delete(id string) error {
	query := `DELETE FROM games WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing game delete", "id", id)

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Database().Error("Game delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete game: %w", err)
	}

	r.logger.Database().Info("Game delete completed", "id", id, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	r.cache.InvalidateContentCache()
	return nil
}

func (r *GameRepository) loadFromDB(id string) (*content.GameNode, error) {
	query := `SELECT id, title, slug, developer, release_year, image_url FROM games WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading game from database", "id", id)

	row := r.db.QueryRow(query, id)

	game, err := scanGame(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan game", "error", err.Error(), "id", id)
		return nil, err
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return game, nil
}

func (r *GameRepository) getIDBySlugFromDB(slug string) (string, error) {
	query := `SELECT id FROM games WHERE slug = ?`

	var id string
	err := r.db.QueryRow(query, slug).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve game slug: %w", err)
	}
	return id, nil
}

// rowScanner lets scanGame serve both QueryRow and Rows iteration.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*content.GameNode, error) {
	var game content.GameNode
	var developer sql.NullString
	var releaseYear sql.NullInt64
	var imageURL sql.NullString

	err := row.Scan(&game.ID, &game.Title, &game.Slug, &developer, &releaseYear, &imageURL)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan game: %w", err)
	}

	game.NodeType = "Game"
	if developer.Valid {
		game.Developer = developer.String
	}
	if releaseYear.Valid {
		game.ReleaseYear = int(releaseYear.Int64)
	}
	if imageURL.Valid {
		game.ImageURL = &imageURL.String
	}
	return &game, nil
}
