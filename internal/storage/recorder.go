package storage

import (
	"context"

	"github.com/vovakirdan/leva-autoplay/internal/api"
	"github.com/vovakirdan/leva-autoplay/internal/gacha"
)

// RunRecorder implements gacha.Recorder for one run.
// This adapter lets the roller save rewards without depending on storage.
type RunRecorder struct {
	store *Store
	runID string
}

// Recorder returns a recorder that tags rewards with runID.
func (s *Store) Recorder(runID string) *RunRecorder {
	return &RunRecorder{store: s, runID: runID}
}

// RecordReward implements gacha.Recorder.
func (r *RunRecorder) RecordReward(_ context.Context, g api.GachaData) error {
	_, err := r.store.SaveReward(Reward{
		RunID:    r.runID,
		RecordID: g.RecordID,
		Name:     g.Name,
		Pic:      g.Pic,
		IsCode:   g.IsCode != 0,
	})
	return err
}

// Ensure RunRecorder implements gacha.Recorder
var _ gacha.Recorder = (*RunRecorder)(nil)
