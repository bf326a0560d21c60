package stroids

import (
	"fmt"

	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/storage"
)

// ToRun converts a recording and its final state into a storable run.
func (r Recording) ToRun(finalScore int64, finalLevel int) (storage.Run, error) {
	data, err := config.Marshal(r.Config)
	if err != nil {
		return storage.Run{}, err
	}
	return storage.Run{
		GameID:     r.GameID,
		Seed:       r.Seed,
		TickRate:   r.TickRate,
		ConfigYAML: data,
		Frames:     r.Frames,
		Ticks:      len(r.Frames),
		FinalScore: finalScore,
		FinalLevel: finalLevel,
	}, nil
}

// RecordingFromRun rebuilds a recording from a stored run.
func RecordingFromRun(run storage.Run) (Recording, error) {
	cfg, err := config.Parse(run.ConfigYAML)
	if err != nil {
		return Recording{}, fmt.Errorf("stroids: run %s has unreadable config: %w", run.ID, err)
	}
	return Recording{
		GameID:   run.GameID,
		Seed:     run.Seed,
		TickRate: run.TickRate,
		Config:   cfg,
		Frames:   run.Frames,
	}, nil
}
