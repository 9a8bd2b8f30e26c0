package database

import (
	"database/sql"
	"fmt"

	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
	"github.com/ComboLab/combolab-go/internal/domain/repositories"
	"github.com/ComboLab/combolab-go/internal/infrastructure/security"
)

// SeedInitialContent populates an empty database with a starter game, roster,
// and notation reference so the API is usable out of the box. It is
// idempotent: existing content is left untouched.
func SeedInitialContent(db *sql.DB, notationRepo repositories.NotationRepository) error {
	var existing string
	err := db.QueryRow(`SELECT id FROM games WHERE slug = ?`, "street-fighter-6").Scan(&existing)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check seed state: %w", err)
	}

	gameID := security.GenerateULID()
	_, err = db.Exec(`INSERT INTO games (id, title, slug, developer, release_year) VALUES (?, ?, ?, ?, ?)`,
		gameID, "Street Fighter 6", "street-fighter-6", "Capcom", 2023)
	if err != nil {
		return fmt.Errorf("failed to seed game: %w", err)
	}

	characters := []struct {
		name, slug, archetype string
	}{
		{"Ryu", "ryu", "shoto"},
		{"Chun-Li", "chun-li", "footsies"},
		{"Zangief", "zangief", "grappler"},
	}
	for _, c := range characters {
		_, err = db.Exec(`INSERT INTO characters (id, game_id, name, slug, archetype) VALUES (?, ?, ?, ?, ?)`,
			security.GenerateULID(), gameID, c.name, c.slug, c.archetype)
		if err != nil {
			return fmt.Errorf("failed to seed character %s: %w", c.name, err)
		}
	}

	if err := notationRepo.StoreGameNotation(gameID, defaultNotationReference()); err != nil {
		return fmt.Errorf("failed to seed notation reference: %w", err)
	}

	return nil
}

func defaultNotationReference() notation.NotationReference {
	return notation.NotationReference{
		"buttons": {
			{ID: "lp", Name: "Light Punch", Symbol: "LP", Numpad: "LP"},
			{ID: "mp", Name: "Medium Punch", Symbol: "MP", Numpad: "MP"},
			{ID: "hp", Name: "Heavy Punch", Symbol: "HP", Numpad: "HP"},
			{ID: "lk", Name: "Light Kick", Symbol: "LK", Numpad: "LK"},
			{ID: "mk", Name: "Medium Kick", Symbol: "MK", Numpad: "MK"},
			{ID: "hk", Name: "Heavy Kick", Symbol: "HK", Numpad: "HK"},
		},
		"directions": {
			{ID: "f", Name: "Forward", Symbol: "→", Numpad: "6"},
			{ID: "b", Name: "Back", Symbol: "←", Numpad: "4"},
			{ID: "d", Name: "Down", Symbol: "↓", Numpad: "2"},
			{ID: "u", Name: "Up", Symbol: "↑", Numpad: "8"},
		},
		"motions": {
			{ID: "qcf", Name: "Quarter Circle Forward", Symbol: "↓↘→", Numpad: "236"},
			{ID: "qcb", Name: "Quarter Circle Back", Symbol: "↓↙←", Numpad: "214"},
			{ID: "dp", Name: "Dragon Punch", Symbol: "→↓↘", Numpad: "623"},
			{ID: "spd", Name: "Full Circle", Symbol: "360", Numpad: "360"},
		},
		"connectors": {
			{ID: "link", Name: "Link", Symbol: ","},
			{ID: "cancel", Name: "Cancel", Symbol: "xx"},
			{ID: "target", Name: "Target Combo", Symbol: ">"},
		},
		"modifiers": {
			{ID: "j", Name: "Jumping", Symbol: "j."},
			{ID: "cr", Name: "Crouching", Symbol: "cr."},
			{ID: "st", Name: "Standing", Symbol: "st."},
		},
	}
}
