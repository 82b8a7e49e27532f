package service

import (
	"context"
	"fmt"
	"sync"

	apperrors "studio-console/internal/errors"
	"studio-console/internal/logger"
	"studio-console/internal/models"
)

// SceneRegistry keeps the ordered source list of every loaded scene
type SceneRegistry struct {
	engine SceneEngine

	mu       sync.RWMutex
	scenes   map[string][]models.Source
	unsaved  map[string]bool
	visIndex map[string]map[string]int
}

// NewSceneRegistry creates an empty registry
func NewSceneRegistry(engine SceneEngine) *SceneRegistry {
	r := &SceneRegistry{engine: engine}
	r.Reset()
	return r
}

// Reset forgets every scene
func (r *SceneRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scenes = make(map[string][]models.Source)
	r.unsaved = make(map[string]bool)
	r.visIndex = make(map[string]map[string]int)
}

// LoadScene syncs the stored order into the engine, then fetches the scene
// and replaces its list in one step. A failed sync does not stop the fetch;
// a failed fetch leaves the previous list in place.
func (r *SceneRegistry) LoadScene(ctx context.Context, scene string) ([]models.Source, error) {
	log := logger.WithContext(ctx).WithField("scene", scene)

	if err := r.engine.SyncSourceOrder(ctx, scene); err != nil {
		log.Warnf("Source order sync failed: %v", err)
	}

	reply, err := r.engine.GetSources(ctx, scene)
	if err != nil {
		log.Errorf("Loading scene failed: %v", err)
		return nil, fmt.Errorf("load scene %s: %w", scene, err)
	}

	sources := make([]models.Source, 0, len(reply.Sources))
	index := make(map[string]int, len(reply.Sources))
	for _, item := range reply.Sources {
		index[item.SourceName] = len(sources)
		sources = append(sources, item.ToSource(scene))
	}

	r.mu.Lock()
	r.scenes[scene] = sources
	r.visIndex[scene] = index
	r.unsaved[scene] = reply.HasChanges
	r.mu.Unlock()

	log.Debugf("Loaded %d sources", len(sources))
	return presented(sources), nil
}

// SaveOrder persists the engine's current order of scene
func (r *SceneRegistry) SaveOrder(ctx context.Context, scene string) error {
	if err := r.engine.SaveSourceOrder(ctx, scene); err != nil {
		logger.WithContext(ctx).WithField("scene", scene).Errorf("Saving source order failed: %v", err)
		return fmt.Errorf("save order %s: %w", scene, err)
	}

	r.mu.Lock()
	r.unsaved[scene] = false
	r.mu.Unlock()
	return nil
}

// HasUnsavedOrder reports whether the last load found sources the stored order lacks
func (r *SceneRegistry) HasUnsavedOrder(scene string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.unsaved[scene]
}

// Sources returns scene's sources in presentation order: the engine lists
// bottom-most first, operators see top-most first.
func (r *SceneRegistry) Sources(scene string) ([]models.Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sources, ok := r.scenes[scene]
	if !ok {
		return nil, apperrors.ErrSceneNotFound
	}
	return presented(sources), nil
}

func presented(sources []models.Source) []models.Source {
	out := make([]models.Source, len(sources))
	for i, s := range sources {
		out[len(sources)-1-i] = s
	}
	return out
}

// Scenes lists the loaded scenes
func (r *SceneRegistry) Scenes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.scenes))
	for scene := range r.scenes {
		out = append(out, scene)
	}
	return out
}

// SetVisible records a visibility change. Returns false when the source is
// unknown or already in that state.
func (r *SceneRegistry) SetVisible(scene, source string, visible bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.visIndex[scene][source]
	if !ok {
		return false
	}
	if r.scenes[scene][i].Visible == visible {
		return false
	}
	r.scenes[scene][i].Visible = visible
	return true
}

// IsVisible reports the last known visibility of source in scene
func (r *SceneRegistry) IsVisible(scene, source string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.visIndex[scene][source]
	return ok && r.scenes[scene][i].Visible
}

// Contains reports whether scene lists source
func (r *SceneRegistry) Contains(scene, source string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.visIndex[scene][source]
	return ok
}

// VisibleIn returns every visible source across scenes
func (r *SceneRegistry) VisibleIn(scenes ...string) []models.Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Source
	for _, scene := range scenes {
		for _, s := range r.scenes[scene] {
			if s.Visible {
				out = append(out, s)
			}
		}
	}
	return out
}
