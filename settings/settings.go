// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package settings

import (
	"database/sql"
	"fmt"
)

// Settings is the ambient app configuration: persisted flags and the
// selected institution. Loaded once at session start and written back
// only on explicit user action; the core data stores never read it
// implicitly.
type Settings struct {
	DarkMode            bool   `json:"dark_mode"`
	InstitutionSelected bool   `json:"institution_selected"`
	SchoolName          string `json:"school_name"`
	FraternityName      string `json:"fraternity_name"`
}

const (
	keyDarkMode            = "dark_mode"
	keyInstitutionSelected = "institution_selected"
	keySchoolName          = "school_name"
	keyFraternityName      = "fraternity_name"
)

// Load reads the persisted settings. Missing keys fall back to zero
// values, so a fresh database yields defaults.
func Load(db *sql.DB) (Settings, error) {
	rows, err := db.Query("SELECT key, value FROM setting")
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	defer rows.Close()

	var s Settings
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, fmt.Errorf("failed to scan setting: %w", err)
		}
		switch key {
		case keyDarkMode:
			s.DarkMode = value == "true"
		case keyInstitutionSelected:
			s.InstitutionSelected = value == "true"
		case keySchoolName:
			s.SchoolName = value
		case keyFraternityName:
			s.FraternityName = value
		}
	}
	return s, rows.Err()
}

// Save writes the settings back, overwriting any prior values.
func Save(db *sql.DB, s Settings) error {
	pairs := map[string]string{
		keyDarkMode:            boolString(s.DarkMode),
		keyInstitutionSelected: boolString(s.InstitutionSelected),
		keySchoolName:          s.SchoolName,
		keyFraternityName:      s.FraternityName,
	}

	for key, value := range pairs {
		_, err := db.Exec(`
			INSERT INTO setting (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = $2
		`, key, value)
		if err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
