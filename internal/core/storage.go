package core

import "context"

type MessagesRepository interface {
	AddMessage(ctx context.Context, sessionID string, msg Message) error
	GetMessages(ctx context.Context, sessionID string, limit int) ([]Message, error)
}

type PreferencesRepository interface {
	GetPreferences(ctx context.Context, userID string) (PreferenceSet, error)
	SavePreferences(ctx context.Context, userID string, prefs PreferenceSet) error
}

type FavoritesRepository interface {
	ListFavorites(ctx context.Context, userID string) ([]string, error)
	ToggleFavorite(ctx context.Context, userID, city string) (bool, error)
}
