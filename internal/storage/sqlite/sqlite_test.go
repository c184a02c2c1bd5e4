package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

func newTestDB(t *testing.T) (context.Context, *sql.DB) {
	t.Helper()
	ctx, cleanup := log.NewContextWithLogger(context.Background(), false)
	t.Cleanup(cleanup)

	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return ctx, db
}

func TestNewDB_MigrationsIdempotent(t *testing.T) {
	ctx, cleanup := log.NewContextWithLogger(context.Background(), false)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := NewDB(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = NewDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()
}

func TestPreferencesRepo(t *testing.T) {
	ctx, db := newTestDB(t)
	repo := NewPreferencesRepo(db)

	prefs, err := repo.GetPreferences(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, core.DefaultPreferences(), prefs)

	want := core.PreferenceSet{
		Style:         []string{"Formal"},
		ClothingTypes: []string{"Coats", "Boots"},
		ColorPalette:  []string{"Earth"},
	}
	require.NoError(t, repo.SavePreferences(ctx, "alice", want))

	got, err := repo.GetPreferences(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// overwrite
	want.Style = []string{"Sporty", "Casual"}
	require.NoError(t, repo.SavePreferences(ctx, "alice", want))
	got, err = repo.GetPreferences(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sporty", "Casual"}, got.Style)

	// other users unaffected
	other, err := repo.GetPreferences(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, core.DefaultPreferences(), other)
}

func TestPreferencesRepo_NilListsStoredEmpty(t *testing.T) {
	ctx, db := newTestDB(t)
	repo := NewPreferencesRepo(db)

	require.NoError(t, repo.SavePreferences(ctx, "u", core.PreferenceSet{Style: []string{"Casual"}}))
	got, err := repo.GetPreferences(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.ClothingTypes)
	assert.Equal(t, []string{}, got.ColorPalette)
}

func TestFavoritesRepo_Toggle(t *testing.T) {
	ctx, db := newTestDB(t)
	repo := NewFavoritesRepo(db)

	list, err := repo.ListFavorites(ctx, "u")
	require.NoError(t, err)
	assert.Empty(t, list)

	added, err := repo.ToggleFavorite(ctx, "u", "Seattle")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.ToggleFavorite(ctx, "u", " Denver ")
	require.NoError(t, err)
	assert.True(t, added)

	list, err = repo.ListFavorites(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, []string{"Seattle", "Denver"}, list)

	added, err = repo.ToggleFavorite(ctx, "u", "SEATTLE")
	require.NoError(t, err)
	assert.False(t, added)

	list, err = repo.ListFavorites(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, []string{"Denver"}, list)
}

func TestFavoritesRepo_Remove(t *testing.T) {
	ctx, db := newTestDB(t)
	repo := NewFavoritesRepo(db)

	_, err := repo.ToggleFavorite(ctx, "u", "Miami")
	require.NoError(t, err)
	require.NoError(t, repo.RemoveFavorite(ctx, "u", "miami"))
	require.NoError(t, repo.RemoveFavorite(ctx, "u", "nowhere"))

	list, err := repo.ListFavorites(ctx, "u")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMessagesRepo(t *testing.T) {
	ctx, db := newTestDB(t)
	repo := NewMessagesRepo(db)

	msgs := []core.Message{
		{Role: core.RoleUser, Content: "What should I wear?"},
		{
			Role: core.RoleAssistant,
			ToolCalls: []core.ToolCall{{
				ID:       "call_1",
				Type:     "function",
				Function: core.FunctionCall{Name: "get_weather", Arguments: `{"city":"Seattle"}`},
			}},
		},
		{Role: core.RoleTool, Content: `{"temperature":50}`, ToolCallID: "call_1"},
		{Role: core.RoleAssistant, Content: "Bring a jacket."},
	}
	for _, m := range msgs {
		require.NoError(t, repo.AddMessage(ctx, "s1", m))
	}
	require.NoError(t, repo.AddMessage(ctx, "s2", core.Message{Role: core.RoleUser, Content: "other"}))

	got, err := repo.GetMessages(ctx, "s1", 10)
	require.NoError(t, err)
	assert.Equal(t, msgs, got)

	last, err := repo.GetMessages(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, "call_1", last[0].ToolCallID)
	assert.Equal(t, "Bring a jacket.", last[1].Content)
}
