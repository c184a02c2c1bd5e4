package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

type PreferencesRepo struct {
	db *sql.DB
}

func NewPreferencesRepo(db *sql.DB) *PreferencesRepo {
	return &PreferencesRepo{db: db}
}

// GetPreferences returns the stored set or core.DefaultPreferences when the
// user has never saved one.
func (r *PreferencesRepo) GetPreferences(ctx context.Context, userID string) (core.PreferenceSet, error) {
	query := `SELECT style, clothing_types, color_palette FROM preferences WHERE user_id = ?`

	var style, types, colors string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&style, &types, &colors)
	if errors.Is(err, sql.ErrNoRows) {
		return core.DefaultPreferences(), nil
	}
	if err != nil {
		return core.PreferenceSet{}, fmt.Errorf("failed to query preferences: %w", err)
	}

	var prefs core.PreferenceSet
	for _, f := range []struct {
		raw string
		dst *[]string
	}{
		{style, &prefs.Style},
		{types, &prefs.ClothingTypes},
		{colors, &prefs.ColorPalette},
	} {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return core.PreferenceSet{}, fmt.Errorf("failed to decode preferences: %w", err)
		}
	}
	return prefs, nil
}

func (r *PreferencesRepo) SavePreferences(ctx context.Context, userID string, prefs core.PreferenceSet) error {
	style, err := encodeList(prefs.Style)
	if err != nil {
		return err
	}
	types, err := encodeList(prefs.ClothingTypes)
	if err != nil {
		return err
	}
	colors, err := encodeList(prefs.ColorPalette)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO preferences (user_id, style, clothing_types, color_palette, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			style = excluded.style,
			clothing_types = excluded.clothing_types,
			color_palette = excluded.color_palette,
			updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, userID, style, types, colors); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode preferences: %w", err)
	}
	return string(b), nil
}
