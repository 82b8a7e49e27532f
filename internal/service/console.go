package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"studio-console/internal/config"
	apperrors "studio-console/internal/errors"
	"studio-console/internal/logger"
	"studio-console/internal/models"

	"github.com/go-playground/validator/v10"
)

// Console is the application context of one control position: the selected
// episode and every piece of state derived from it.
type Console struct {
	api    AssignmentAPI
	engine SceneEngine
	layout *config.SceneLayout
	sink   ViewSink

	cache      *AssignmentCache
	registry   *SceneRegistry
	sequencer  *SwitchSequencer
	volumes    *VolumeService
	workflow   *AssignmentWorkflow
	reconciler *Reconciler

	mu        sync.RWMutex
	episodeID int64
}

var _ ConsoleInterface = (*Console)(nil)

// ConsoleOptions tunes timing; zero values use the studio defaults
type ConsoleOptions struct {
	SwitchDelay time.Duration
	Sleeper     Sleeper
}

// NewConsole wires the console's components
func NewConsole(api AssignmentAPI, engine SceneEngine, layout *config.SceneLayout, sink ViewSink, validate *validator.Validate, opts ConsoleOptions) *Console {
	c := &Console{
		api:    api,
		engine: engine,
		layout: layout,
		sink:   sink,
	}
	c.cache = NewAssignmentCache(api, validate)
	c.registry = NewSceneRegistry(engine)
	c.sequencer = NewSwitchSequencer(engine, c.registry, layout, sink, opts.Sleeper, opts.SwitchDelay)
	c.volumes = NewVolumeService(engine, sink)
	c.workflow = NewAssignmentWorkflow(api, c.cache)
	c.reconciler = NewReconciler(c, c.cache, c.registry, c.sequencer, c.volumes, sink)
	return c
}

func (c *Console) Cache() *AssignmentCache { return c.cache }
func (c *Console) Registry() *SceneRegistry { return c.registry }
func (c *Console) Sequencer() *SwitchSequencer { return c.sequencer }
func (c *Console) Volumes() *VolumeService { return c.volumes }
func (c *Console) Workflow() *AssignmentWorkflow { return c.workflow }
func (c *Console) Reconciler() *Reconciler { return c.reconciler }
func (c *Console) Layout() *config.SceneLayout { return c.layout }

// EpisodeID returns the selected episode, 0 when none
func (c *Console) EpisodeID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.episodeID
}

// Init selects an episode (0 asks the backend for the current one), then
// loads assignments and every configured scene. A failed assignment load
// keeps the episode selected and the scenes loaded; its error is returned so
// the caller can retry through RefreshAssignments.
func (c *Console) Init(ctx context.Context, episodeID int64) error {
	log := logger.WithContext(ctx)

	if episodeID == 0 {
		episode, err := c.api.GetCurrentEpisode(ctx)
		if err != nil {
			log.Errorf("Resolving current episode failed: %v", err)
			return fmt.Errorf("resolve current episode: %w", err)
		}
		episodeID = episode.ID
	}

	c.mu.Lock()
	c.episodeID = episodeID
	c.mu.Unlock()

	c.workflow.Close()
	c.cache.Reset(episodeID)
	c.registry.Reset()
	c.sequencer.Reset()
	c.sink.Publish(models.ViewUpdate{Type: models.ViewReset})

	ctx = logger.WithEpisode(ctx, episodeID)
	log = logger.WithContext(ctx)
	log.Info("Episode selected")

	refreshErr := c.cache.RefreshAll(ctx)
	if refreshErr != nil {
		log.Warnf("Episode selected without assignments: %v", refreshErr)
	}
	c.loadScenes(ctx)
	return refreshErr
}

// Resync reads assignments and scenes again after the realtime channel
// (re)connects, since pushes sent while it was down are lost. With no episode
// selected it runs Init with fallbackEpisode instead.
func (c *Console) Resync(ctx context.Context, fallbackEpisode int64) error {
	episodeID := c.EpisodeID()
	if episodeID == 0 {
		return c.Init(ctx, fallbackEpisode)
	}

	ctx = logger.WithEpisode(ctx, episodeID)
	log := logger.WithContext(ctx)
	log.Info("Resynchronizing episode state")

	refreshErr := c.cache.RefreshAll(ctx)
	if refreshErr != nil {
		log.Warnf("Assignments not resynchronized: %v", refreshErr)
	}
	c.sequencer.Reset()
	c.loadScenes(ctx)
	c.sink.Publish(models.ViewUpdate{Type: models.ViewReset})
	return refreshErr
}

// loadScenes reads every configured scene; the on-air marker follows
// whatever main source is visible afterwards.
func (c *Console) loadScenes(ctx context.Context) {
	log := logger.WithContext(ctx)
	for _, scene := range c.layout.AllScenes() {
		if _, err := c.registry.LoadScene(ctx, scene); err != nil {
			log.Warnf("Scene %s not loaded: %v", scene, err)
		}
	}

	if visible := c.registry.VisibleIn(c.layout.MainScenes...); len(visible) > 0 {
		c.sequencer.ObserveVisibility(visible[0].Scene, visible[0].Name, true)
	}
}

// Teardown leaves the episode and drops derived state
func (c *Console) Teardown() {
	c.mu.Lock()
	c.episodeID = 0
	c.mu.Unlock()

	c.workflow.Close()
	c.cache.Reset(0)
	c.registry.Reset()
	c.sequencer.Reset()
	c.volumes.Reset()
	c.sink.Publish(models.ViewUpdate{Type: models.ViewReset})
}

func (c *Console) Sources(scene string) ([]models.Source, error) {
	return c.registry.Sources(scene)
}

func (c *Console) LoadScene(ctx context.Context, scene string) ([]models.Source, error) {
	return c.registry.LoadScene(ctx, scene)
}

func (c *Console) SaveOrder(ctx context.Context, scene string) error {
	return c.registry.SaveOrder(ctx, scene)
}

func (c *Console) HasUnsavedOrder(scene string) bool {
	return c.registry.HasUnsavedOrder(scene)
}

func (c *Console) Switch(ctx context.Context, scene, source string) error {
	return c.sequencer.Switch(ctx, scene, source)
}

func (c *Console) Toggle(ctx context.Context, scene, source string, visible bool) error {
	return c.sequencer.Toggle(ctx, scene, source, visible)
}

func (c *Console) OnAir() (scene, source string) {
	return c.sequencer.OnAir()
}

func (c *Console) Assignments() map[string]models.Assignment {
	return c.cache.Snapshot()
}

func (c *Console) RefreshAssignments(ctx context.Context) error {
	return c.cache.RefreshAll(ctx)
}

// Assign binds source directly, without a dialog
func (c *Console) Assign(ctx context.Context, source string, ref models.EntityRef) (*models.Assignment, error) {
	a, err := c.cache.RequestAssign(ctx, source, ref, c.assignmentLabel(ctx, source, ref))
	if err != nil {
		return nil, err
	}
	c.publishAssignment(*a)
	return a, nil
}

// assignmentLabel finds the display name of the entity ref points at: the
// current entry's label when source already holds it, otherwise the name in
// the source's candidate list. Empty when neither is known.
func (c *Console) assignmentLabel(ctx context.Context, source string, ref models.EntityRef) string {
	if ref.IsClear() {
		return ""
	}
	if current, ok := c.cache.Get(source); ok && current.Holds(ref) && current.Label != "" {
		return current.Label
	}
	episodeID := c.EpisodeID()
	if episodeID == 0 || source == "" {
		return ""
	}
	// refused locally anyway
	if holder, held := c.cache.HolderOf(ref); held && holder != source {
		return ""
	}

	var (
		candidates []models.Candidate
		err        error
	)
	switch ref.Kind {
	case models.KindCamera:
		candidates, err = c.api.CameraTypes(ctx, episodeID, source)
	case models.KindPerson:
		candidates, err = c.api.MicrophonePeople(ctx, episodeID, source)
	case models.KindMedia:
		candidates, err = c.api.MediaList(ctx, episodeID, source)
	case models.KindGroup:
		candidates, err = c.api.GroupsList(ctx, episodeID, source)
	default:
		return ""
	}
	if err != nil {
		logger.WithContext(ctx).WithField("source", source).Warnf("Label lookup failed: %v", err)
		return ""
	}

	for _, cand := range candidates {
		if cand.ID != *ref.ID {
			continue
		}
		if ref.Kind == models.KindPerson && cand.PersonType != ref.PersonType {
			continue
		}
		return cand.Name
	}
	return ""
}

// AutoAssign lets the backend fill empty media and playlist sources and
// records what it reports.
func (c *Console) AutoAssign(ctx context.Context) (map[string]models.Assignment, error) {
	episodeID := c.EpisodeID()
	if episodeID == 0 {
		return nil, apperrors.ErrNoEpisode
	}
	ctx = logger.WithEpisode(ctx, episodeID)
	log := logger.WithContext(ctx)

	out := make(map[string]models.Assignment)

	media, err := c.api.AutoAssignMedia(ctx, episodeID)
	if err != nil {
		log.Errorf("Media auto-assignment failed: %v", err)
		return nil, fmt.Errorf("auto-assign media: %w", err)
	}
	for source, res := range media {
		if !res.Assigned {
			continue
		}
		out[source] = models.Assignment{Source: source, Kind: models.KindMedia, EntityID: res.MediaID, Label: res.Title, AssignedBy: "auto"}
	}

	groups, err := c.api.AutoAssignGroups(ctx, episodeID)
	if err != nil {
		log.Warnf("Playlist auto-assignment failed: %v", err)
	}
	for source, res := range groups {
		if !res.Assigned {
			continue
		}
		out[source] = models.Assignment{Source: source, Kind: models.KindGroup, EntityID: res.GroupID, Label: res.Name, AssignedBy: "auto"}
	}

	if c.EpisodeID() != episodeID {
		return out, nil
	}
	for _, a := range out {
		c.cache.Put(a)
		c.publishAssignment(a)
	}
	log.Infof("Auto-assigned %d sources", len(out))
	return out, nil
}

func (c *Console) OpenWorkflow(ctx context.Context, source string, kind models.EntityKind) (*WorkflowView, error) {
	return c.workflow.Open(ctx, source, kind)
}

func (c *Console) ChooseInWorkflow(ctx context.Context, ref models.EntityRef) (*models.Assignment, error) {
	a, err := c.workflow.Choose(ctx, ref)
	if err != nil {
		return nil, err
	}
	c.publishAssignment(*a)
	return a, nil
}

func (c *Console) CloseWorkflow() {
	c.workflow.Close()
}

func (c *Console) Volume(source string) (models.VolumeState, bool) {
	return c.volumes.Get(source)
}

func (c *Console) SetVolume(ctx context.Context, source string, position float64) (models.VolumeState, error) {
	if !c.isAudioSource(source) {
		return models.VolumeState{}, apperrors.ErrNotAudioSource
	}
	return c.volumes.SetPosition(ctx, source, position)
}

func (c *Console) RefreshVolume(ctx context.Context, source string) (models.VolumeState, error) {
	if !c.isAudioSource(source) {
		return models.VolumeState{}, apperrors.ErrNotAudioSource
	}
	return c.volumes.Refresh(ctx, source)
}

func (c *Console) isAudioSource(source string) bool {
	for _, scene := range c.layout.AudioScenes {
		if c.registry.Contains(scene, source) {
			return true
		}
	}
	return false
}

func (c *Console) publishAssignment(a models.Assignment) {
	c.sink.Publish(models.ViewUpdate{
		Type:     models.ViewAssignment,
		Source:   a.Source,
		Label:    a.DisplayLabel(),
		Disabled: a.Disabled,
	})
}
