package stroids

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/storage"
)

func TestRunStorageRoundTrip(t *testing.T) {
	cfg := config.DefaultStroidsConfig()
	cfg.Generator.NumAsteroids = 6
	g := NewWithConfig(IDClassic, cfg)
	g.Reset(runtimeFor(7))
	require.NoError(t, g.Err())
	for i := 0; i < 600; i++ {
		g.Step(scriptedFrame(i))
	}

	run, err := g.Recording().ToRun(int64(g.State().Score), g.State().Level)
	require.NoError(t, err)

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	id, err := store.SaveRun(run)
	require.NoError(t, err)
	loaded, err := store.LoadRun(id.String())
	require.NoError(t, err)

	rec, err := RecordingFromRun(*loaded)
	require.NoError(t, err)
	assert.Equal(t, IDClassic, rec.GameID)
	assert.Equal(t, 6, rec.Config.Generator.NumAsteroids)
	assert.Len(t, rec.Frames, 600)

	out, err := Replay(rec, nil)
	require.NoError(t, err)
	assert.Equal(t, loaded.FinalScore, out.Score)
	assert.Equal(t, loaded.FinalLevel, out.Level)
}

func TestRecordingFromRunBadConfig(t *testing.T) {
	_, err := RecordingFromRun(storage.Run{GameID: IDPolar, ConfigYAML: []byte("field: [")})
	assert.Error(t, err)
}
