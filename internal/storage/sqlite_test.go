package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "runs.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)

	frames := []byte{0, 1, 8, 8, 9, 0, 4}
	id, err := store.SaveRun(Run{
		GameID:     "stroids",
		Seed:       42,
		TickRate:   60,
		ConfigYAML: []byte("field:\n  width: 1024\n"),
		Frames:     frames,
		FinalScore: 150,
		FinalLevel: 2,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	got, err := store.LoadRun(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "stroids", got.GameID)
	assert.Equal(t, int64(42), got.Seed)
	assert.Equal(t, 60, got.TickRate)
	assert.Equal(t, frames, got.Frames)
	assert.Equal(t, len(frames), got.Ticks)
	assert.Equal(t, int64(150), got.FinalScore)
	assert.Equal(t, 2, got.FinalLevel)
	assert.Equal(t, "field:\n  width: 1024\n", string(got.ConfigYAML))
	assert.False(t, got.CreatedAt.IsZero())
}

func TestLoadRunByPrefix(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "stroids", TickRate: 60})
	require.NoError(t, err)

	got, err := store.LoadRun(id.String()[:8])
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestLoadRunErrors(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadRun(uuid.New().String())
	assert.ErrorIs(t, err, ErrRunNotFound)

	a := uuid.MustParse("aaaaaaaa-0000-4000-8000-000000000001")
	b := uuid.MustParse("aaaaaaaa-0000-4000-8000-000000000002")
	_, err = store.SaveRun(Run{ID: a, GameID: "stroids"})
	require.NoError(t, err)
	_, err = store.SaveRun(Run{ID: b, GameID: "stroids"})
	require.NoError(t, err)

	_, err = store.LoadRun("aaaaaaaa")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	got, err := store.LoadRun(b.String())
	require.NoError(t, err)
	assert.Equal(t, b, got.ID)
}

func TestLoadRunRejectsWildcards(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "stroids", TickRate: 60})
	require.NoError(t, err)

	for _, pattern := range []string{"%", "_", id.String()[:4] + "%", "", "zz"} {
		_, err := store.LoadRun(pattern)
		assert.ErrorIs(t, err, ErrInvalidID, "pattern %q", pattern)
	}

	got, err := store.LoadRun(strings.ToUpper(id.String()[:8]))
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestSaveRunDuplicateID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.New()

	_, err := store.SaveRun(Run{ID: id, GameID: "stroids"})
	require.NoError(t, err)
	_, err = store.SaveRun(Run{ID: id, GameID: "stroids"})
	assert.Error(t, err)
}

func TestListRuns(t *testing.T) {
	store := openTestStore(t)

	var ids []uuid.UUID
	for i, game := range []string{"stroids", "stroids_classic", "stroids"} {
		id, err := store.SaveRun(Run{GameID: game, Seed: int64(i), Frames: make([]byte, 10*(i+1))})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	all, err := store.ListRuns("", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest first
	assert.Equal(t, ids[2], all[0].ID)
	assert.Equal(t, 30, all[0].Ticks)
	assert.Nil(t, all[0].Frames, "listing should not load frames")

	polar, err := store.ListRuns("stroids", 10)
	require.NoError(t, err)
	assert.Len(t, polar, 2)

	limited, err := store.ListRuns("", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "stroids"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteRun(id))
	_, err = store.LoadRun(id.String())
	assert.ErrorIs(t, err, ErrRunNotFound)

	assert.ErrorIs(t, store.DeleteRun(id), ErrRunNotFound)
}
