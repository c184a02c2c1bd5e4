package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type FavoritesRepo struct {
	db *sql.DB
}

func NewFavoritesRepo(db *sql.DB) *FavoritesRepo {
	return &FavoritesRepo{db: db}
}

// ListFavorites returns cities in the order they were added.
func (r *FavoritesRepo) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT city FROM favorites WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	cities := []string{}
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

// ToggleFavorite adds the city when absent and removes it otherwise.
// Cities compare case-insensitively. It reports whether the city is now a
// favorite.
func (r *FavoritesRepo) ToggleFavorite(ctx context.Context, userID, city string) (bool, error) {
	city = strings.TrimSpace(city)
	key := strings.ToLower(city)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = ? AND city_key = ?`, userID, key)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	added := removed == 0
	if added {
		_, err = tx.ExecContext(ctx, `INSERT INTO favorites (user_id, city_key, city) VALUES (?, ?, ?)`, userID, key, city)
		if err != nil {
			return false, fmt.Errorf("failed to add favorite: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return added, nil
}

func (r *FavoritesRepo) RemoveFavorite(ctx context.Context, userID, city string) error {
	key := strings.ToLower(strings.TrimSpace(city))
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = ? AND city_key = ?`, userID, key); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
