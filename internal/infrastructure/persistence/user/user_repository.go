// Package user provides the account repository
package user

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ComboLab/combolab-go/internal/domain/user"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/ComboLab/combolab-go/pkg/config"
)

type Repository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewRepository(db *sql.DB, logger *logging.ChanneledLogger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) FindByID(id string) (*user.User, error) {
	query := `SELECT id, email, username, password_hash, favorite_characters, favorite_combos, created
              FROM users WHERE id = ?`
	return r.scanOne(query, id)
}

func (r *Repository) FindByEmail(email string) (*user.User, error) {
	query := `SELECT id, email, username, password_hash, favorite_characters, favorite_combos, created
              FROM users WHERE email = ?`
	return r.scanOne(query, email)
}

func (r *Repository) Store(u *user.User) error {
	charactersJSON, _ := json.Marshal(u.Favorites.Characters)
	combosJSON, _ := json.Marshal(u.Favorites.Combos)

	query := `INSERT INTO users (id, email, username, password_hash, favorite_characters, favorite_combos, created)
              VALUES (?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing user insert", "id", u.ID)

	_, err := r.db.Exec(query, u.ID, u.Email, u.Username, u.PasswordHash,
		string(charactersJSON), string(combosJSON), u.Created)
	if err != nil {
		r.logger.Database().Error("User insert failed", "error", err.Error(), "id", u.ID)
		return fmt.Errorf("failed to insert user: %w", err)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *Repository) UpdateFavorites(userID string, favorites *user.Favorites) error {
	charactersJSON, _ := json.Marshal(favorites.Characters)
	combosJSON, _ := json.Marshal(favorites.Combos)

	query := `UPDATE users SET favorite_characters = ?, favorite_combos = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing favorites update", "id", userID)

	_, err := r.db.Exec(query, string(charactersJSON), string(combosJSON), userID)
	if err != nil {
		r.logger.Database().Error("Favorites update failed", "error", err.Error(), "id", userID)
		return fmt.Errorf("failed to update favorites: %w", err)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *Repository) scanOne(query string, arg any) (*user.User, error) {
	row := r.db.QueryRow(query, arg)

	var u user.User
	var charactersStr, combosStr string

	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &charactersStr, &combosStr, &u.Created)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	if err := json.Unmarshal([]byte(charactersStr), &u.Favorites.Characters); err != nil {
		return nil, fmt.Errorf("failed to parse favorite characters: %w", err)
	}
	if err := json.Unmarshal([]byte(combosStr), &u.Favorites.Combos); err != nil {
		return nil, fmt.Errorf("failed to parse favorite combos: %w", err)
	}
	if u.Favorites.Characters == nil {
		u.Favorites.Characters = []string{}
	}
	if u.Favorites.Combos == nil {
		u.Favorites.Combos = []string{}
	}
	return &u, nil
}
