package service

import (
	"context"
	"fmt"
	"sync"

	apperrors "studio-console/internal/errors"
	"studio-console/internal/logger"
	"studio-console/internal/models"
	"studio-console/internal/volume"
)

// VolumeService tracks fader state for audio sources. The engine's reported
// level always wins over local state.
type VolumeService struct {
	engine SceneEngine
	sink   ViewSink

	mu     sync.RWMutex
	levels map[string]models.VolumeState
}

// NewVolumeService creates an empty volume tracker
func NewVolumeService(engine SceneEngine, sink ViewSink) *VolumeService {
	return &VolumeService{
		engine: engine,
		sink:   sink,
		levels: make(map[string]models.VolumeState),
	}
}

func stateFor(source string, db float64) models.VolumeState {
	return models.VolumeState{
		Source:   source,
		DB:       db,
		Position: volume.ToSliderPosition(db),
		Muted:    volume.IsMuted(db),
		Label:    volume.Label(db),
	}
}

// Get returns the last known state of source
func (s *VolumeService) Get(source string) (models.VolumeState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.levels[source]
	return st, ok
}

// Reset forgets every level
func (s *VolumeService) Reset() {
	s.mu.Lock()
	s.levels = make(map[string]models.VolumeState)
	s.mu.Unlock()
}

func (s *VolumeService) store(st models.VolumeState) {
	s.mu.Lock()
	s.levels[st.Source] = st
	s.mu.Unlock()
	s.sink.Publish(models.ViewUpdate{Type: models.ViewVolume, Source: st.Source, Volume: &st})
}

// restore puts previous back only while the entry still holds expected, so a
// level reported in the meantime is kept.
func (s *VolumeService) restore(expected, previous models.VolumeState) bool {
	s.mu.Lock()
	if current, ok := s.levels[expected.Source]; !ok || current != expected {
		s.mu.Unlock()
		return false
	}
	s.levels[previous.Source] = previous
	s.mu.Unlock()
	s.sink.Publish(models.ViewUpdate{Type: models.ViewVolume, Source: previous.Source, Volume: &previous})
	return true
}

// SetPosition moves the fader of source. The new level is shown at once and
// reverted if the engine rejects it.
func (s *VolumeService) SetPosition(ctx context.Context, source string, position float64) (models.VolumeState, error) {
	if position < 0 || position > volume.MaxPosition {
		return models.VolumeState{}, apperrors.NewValidationError("position", "must be between 0 and 100")
	}

	log := logger.WithContext(ctx).WithField("source", source)

	previous, known := s.Get(source)
	if !known {
		previous = stateFor(source, volume.DefaultDecibels)
	}

	next := stateFor(source, volume.ToDecibels(position))
	next.Position = position
	s.store(next)

	if err := s.engine.SetInputVolume(ctx, source, next.DB); err != nil {
		if s.restore(next, previous) {
			log.Warnf("Volume change rejected, reverting to %s: %v", previous.Label, err)
			return previous, fmt.Errorf("set volume %s: %w", source, err)
		}
		current, _ := s.Get(source)
		log.Warnf("Volume change rejected, keeping reported %s: %v", current.Label, err)
		return current, fmt.Errorf("set volume %s: %w", source, err)
	}

	log.Debugf("Volume set to %s", next.Label)
	return next, nil
}

// Refresh reads the engine's level for source
func (s *VolumeService) Refresh(ctx context.Context, source string) (models.VolumeState, error) {
	db, err := s.engine.GetInputVolume(ctx, source)
	if err != nil {
		logger.WithContext(ctx).WithField("source", source).Warnf("Reading volume failed: %v", err)
		return models.VolumeState{}, fmt.Errorf("get volume %s: %w", source, err)
	}
	st := stateFor(source, db)
	s.store(st)
	return st, nil
}

// ApplyExternal records a level reported by the engine
func (s *VolumeService) ApplyExternal(source string, db float64) models.VolumeState {
	st := stateFor(source, db)
	s.store(st)
	return st
}
