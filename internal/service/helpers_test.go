package service_test

import (
	"sync"

	"studio-console/internal/models"
)

// recordingSink collects published view updates
type recordingSink struct {
	mu      sync.Mutex
	updates []models.ViewUpdate
}

func (s *recordingSink) Publish(update models.ViewUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, update)
}

func (s *recordingSink) ofType(t string) []models.ViewUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ViewUpdate
	for _, u := range s.updates {
		if u.Type == t {
			out = append(out, u)
		}
	}
	return out
}

func int64Ptr(v int64) *int64 {
	return &v
}

func sceneSources(hasChanges bool, items ...models.SceneItem) *models.SceneSources {
	return &models.SceneSources{Sources: items, HasChanges: hasChanges}
}

func item(index int, name string, visible bool) models.SceneItem {
	return models.SceneItem{
		SceneItemID:      float64(index + 1),
		SceneItemIndex:   float64(index),
		SceneItemEnabled: visible,
		SourceName:       name,
	}
}
