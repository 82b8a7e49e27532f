package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"studio-console/internal/config"
	apperrors "studio-console/internal/errors"
	"studio-console/internal/logger"
	"studio-console/internal/models"
)

// TimerSleeper waits on the wall clock
type TimerSleeper struct{}

func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SwitchSequencer puts one main source on air at a time
type SwitchSequencer struct {
	engine   SceneEngine
	registry *SceneRegistry
	layout   *config.SceneLayout
	mics     *MicrophonePolicy
	sink     ViewSink
	sleeper  Sleeper
	delay    time.Duration

	inFlight atomic.Bool

	mu          sync.RWMutex
	onAirScene  string
	onAirSource string
}

var _ SwitchSequencerInterface = (*SwitchSequencer)(nil)

// NewSwitchSequencer creates a sequencer; delay is the settle time between
// showing the target and re-stacking it.
func NewSwitchSequencer(engine SceneEngine, registry *SceneRegistry, layout *config.SceneLayout, sink ViewSink, sleeper Sleeper, delay time.Duration) *SwitchSequencer {
	if sleeper == nil {
		sleeper = TimerSleeper{}
	}
	return &SwitchSequencer{
		engine:   engine,
		registry: registry,
		layout:   layout,
		mics:     NewMicrophonePolicy(engine, layout),
		sink:     sink,
		sleeper:  sleeper,
		delay:    delay,
	}
}

// OnAir returns the main source last put on air
func (s *SwitchSequencer) OnAir() (scene, source string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onAirScene, s.onAirSource
}

// Reset forgets the on-air marker
func (s *SwitchSequencer) Reset() {
	s.mu.Lock()
	s.onAirScene, s.onAirSource = "", ""
	s.mu.Unlock()
}

func (s *SwitchSequencer) setOnAir(scene, source string) {
	s.mu.Lock()
	s.onAirScene, s.onAirSource = scene, source
	s.mu.Unlock()
	s.sink.Publish(models.ViewUpdate{Type: models.ViewOnAir, Scene: scene, Source: source, OnAir: source})
}

// ObserveVisibility keeps the on-air marker in step with changes made by
// other clients. While a switch runs only Switch moves the marker, so the
// echo of a half-finished switch cannot mark its target as on air.
func (s *SwitchSequencer) ObserveVisibility(scene, source string, visible bool) {
	if !s.layout.IsMainScene(scene) || s.inFlight.Load() {
		return
	}
	current, currentSource := s.OnAir()
	switch {
	case visible && (current != scene || currentSource != source):
		s.setOnAir(scene, source)
	case !visible && current == scene && currentSource == source:
		s.setOnAir("", "")
	}
}

// Switch puts source of the main scene on air, turning every other main
// source off. Steps run strictly in order; a failure of an awaited step
// aborts without rolling back what already happened.
func (s *SwitchSequencer) Switch(ctx context.Context, scene, source string) error {
	if !s.layout.IsMainScene(scene) {
		return apperrors.NewValidationError("scene", fmt.Sprintf("%s is not a main scene", scene))
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"scene":  scene,
		"source": source,
	})

	onAirScene, onAirSource := s.OnAir()
	if onAirScene == scene && onAirSource == source {
		log.Debug("Source already on air")
		return nil
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		log.Warn("Switch refused, another switch is running")
		return apperrors.ErrSwitchInProgress
	}
	defer s.inFlight.Store(false)

	fail := func(step string, err error) error {
		log.WithField("step", step).Errorf("Switch aborted: %v", err)
		return fmt.Errorf("switch %s/%s: %s: %w", scene, source, step, err)
	}

	if onAirScene != scene {
		if err := s.engine.SendToOverlay(ctx, map[string]interface{}{"action": "show_transition"}); err != nil {
			log.Warnf("Transition cue failed: %v", err)
		}
	}

	if err := s.engine.SetCurrentScene(ctx, s.layout.ProgramScene); err != nil {
		return fail("set_current_scene", err)
	}
	log.Debug("Program scene selected")

	if err := s.engine.ToggleSource(ctx, scene, source, true); err != nil {
		return fail("toggle_source", err)
	}
	log.Debug("Target shown")

	if err := s.sleeper.Sleep(ctx, s.delay); err != nil {
		return fail("settle", err)
	}

	if err := s.engine.SetSourceIndex(ctx, scene, source, true); err != nil {
		return fail("set_source_index", err)
	}
	if err := s.engine.SetSourceIndex(ctx, s.layout.ScreenScene, scene, true); err != nil {
		return fail("set_source_index screen", err)
	}
	log.Debug("Target raised")

	hidden := s.disableSiblings(ctx, scene, source)

	if err := s.mics.Apply(ctx, scene); err != nil {
		log.Warnf("Microphone policy failed: %v", err)
	}

	if s.registry.SetVisible(scene, source, true) {
		s.publishVisibility(scene, source, true)
	}
	for _, sibling := range hidden {
		if s.registry.SetVisible(sibling.Scene, sibling.Name, false) {
			s.publishVisibility(sibling.Scene, sibling.Name, false)
		}
	}
	s.setOnAir(scene, source)

	log.Infof("Source on air, %d other sources turned off", len(hidden))
	return nil
}

// disableSiblings turns off every other visible main source concurrently
// and returns the ones the engine confirmed.
func (s *SwitchSequencer) disableSiblings(ctx context.Context, scene, source string) []models.Source {
	var siblings []models.Source
	for _, src := range s.registry.VisibleIn(s.layout.MainScenes...) {
		if src.Scene == scene && src.Name == source {
			continue
		}
		siblings = append(siblings, src)
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		hidden []models.Source
	)
	for _, sibling := range siblings {
		wg.Add(1)
		go func(src models.Source) {
			defer wg.Done()
			if err := s.engine.ToggleSource(ctx, src.Scene, src.Name, false); err != nil {
				logger.WithContext(ctx).WithFields(map[string]interface{}{
					"scene":  src.Scene,
					"source": src.Name,
				}).Warnf("Turning off sibling failed: %v", err)
				return
			}
			mu.Lock()
			hidden = append(hidden, src)
			mu.Unlock()
		}(sibling)
	}
	wg.Wait()
	return hidden
}

// Toggle flips one source independently of the others
func (s *SwitchSequencer) Toggle(ctx context.Context, scene, source string, visible bool) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"scene":   scene,
		"source":  source,
		"visible": visible,
	})

	if err := s.engine.ToggleSource(ctx, scene, source, visible); err != nil {
		log.Errorf("Toggle failed: %v", err)
		return fmt.Errorf("toggle %s/%s: %w", scene, source, err)
	}

	if s.registry.SetVisible(scene, source, visible) {
		s.publishVisibility(scene, source, visible)
	}
	s.ObserveVisibility(scene, source, visible)
	return nil
}

func (s *SwitchSequencer) publishVisibility(scene, source string, visible bool) {
	v := visible
	s.sink.Publish(models.ViewUpdate{Type: models.ViewSource, Scene: scene, Source: source, Visible: &v})
}
