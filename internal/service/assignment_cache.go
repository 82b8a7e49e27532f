package service

import (
	"context"
	"fmt"
	"sync"

	apperrors "studio-console/internal/errors"
	"studio-console/internal/logger"
	"studio-console/internal/models"

	"github.com/go-playground/validator/v10"
)

// AssignmentCache mirrors the backend's source assignments for one episode.
// Entries are keyed by source name, which the scene engine keeps unique.
type AssignmentCache struct {
	api       AssignmentAPI
	validator *validator.Validate

	mu        sync.RWMutex
	episodeID int64
	entries   map[string]models.Assignment
}

// NewAssignmentCache creates an empty cache with no episode context
func NewAssignmentCache(api AssignmentAPI, validator *validator.Validate) *AssignmentCache {
	return &AssignmentCache{
		api:       api,
		validator: validator,
		entries:   make(map[string]models.Assignment),
	}
}

// Reset drops every entry and scopes the cache to episodeID (0 clears the context)
func (c *AssignmentCache) Reset(episodeID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.episodeID = episodeID
	c.entries = make(map[string]models.Assignment)
}

// EpisodeID returns the episode the cache is scoped to
func (c *AssignmentCache) EpisodeID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.episodeID
}

// RefreshAll replaces the whole mapping with the backend snapshot. On
// failure the previous mapping is kept.
func (c *AssignmentCache) RefreshAll(ctx context.Context) error {
	episodeID := c.EpisodeID()
	if episodeID == 0 {
		return apperrors.ErrNoEpisode
	}
	ctx = logger.WithEpisode(ctx, episodeID)
	log := logger.WithContext(ctx)

	records, err := c.api.GetAssignments(ctx, episodeID)
	if err != nil {
		log.Warnf("Assignment refresh failed, keeping previous state: %v", err)
		return fmt.Errorf("refresh assignments: %w", err)
	}

	entries := make(map[string]models.Assignment, len(records))
	for source, record := range records {
		entries[source] = record.ToAssignment(source)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.episodeID != episodeID {
		// context switched while the request was in flight
		log.Infof("Discarding snapshot for stale episode")
		return nil
	}
	c.entries = entries
	log.Infof("Loaded %d source assignments", len(entries))
	return nil
}

// ApplyBroadcast applies a push for the current episode. Events for another
// episode are ignored. Returns whether the cache changed.
func (c *AssignmentCache) ApplyBroadcast(evt models.AssignmentEvent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.episodeID == 0 {
		return false
	}
	if evt.EpisodeID != 0 && evt.EpisodeID != c.episodeID {
		return false
	}

	source := evt.Assignment.Source
	if source == "" {
		return false
	}

	prev, existed := c.entries[source]
	if existed && assignmentEqual(prev, evt.Assignment) {
		return false
	}
	c.entries[source] = evt.Assignment
	return true
}

func assignmentEqual(a, b models.Assignment) bool {
	if a.Kind != b.Kind || a.Label != b.Label || a.Disabled != b.Disabled || a.PersonType != b.PersonType {
		return false
	}
	if (a.EntityID == nil) != (b.EntityID == nil) {
		return false
	}
	return a.EntityID == nil || *a.EntityID == *b.EntityID
}

// Get returns the entry for source
func (c *AssignmentCache) Get(source string) (models.Assignment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.entries[source]
	return a, ok
}

// Label is the text a control for source should show
func (c *AssignmentCache) Label(source string) string {
	if a, ok := c.Get(source); ok {
		return a.DisplayLabel()
	}
	return source
}

// Snapshot returns a copy of every entry
func (c *AssignmentCache) Snapshot() map[string]models.Assignment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]models.Assignment, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}

// HolderOf returns the source currently holding the exclusive entity ref
func (c *AssignmentCache) HolderOf(ref models.EntityRef) (string, bool) {
	if !ref.Exclusive() {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for source, a := range c.entries {
		if a.Holds(ref) {
			return source, true
		}
	}
	return "", false
}

// Put stores an entry directly; used for results the backend reports
// without a broadcast (auto-assignment).
func (c *AssignmentCache) Put(a models.Assignment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[a.Source] = a
}

// RequestAssign binds source to ref. Exclusive entities held by another
// source are refused locally; nothing changes unless the backend accepts.
func (c *AssignmentCache) RequestAssign(ctx context.Context, source string, ref models.EntityRef, label string) (*models.Assignment, error) {
	episodeID := c.EpisodeID()
	if episodeID == 0 {
		return nil, apperrors.ErrNoEpisode
	}
	if source == "" {
		return nil, apperrors.ErrNoSourceSelected
	}
	if err := c.validator.Struct(ref); err != nil {
		return nil, apperrors.NewValidationError("entity", err.Error())
	}
	if ref.IsClear() && (ref.Kind == models.KindMedia || ref.Kind == models.KindGroup) {
		return nil, apperrors.NewValidationError("id", fmt.Sprintf("%s requires an id", ref.Kind))
	}

	ctx = logger.WithEpisode(ctx, episodeID)
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"source": source,
		"entity": ref.String(),
	})

	if holder, held := c.HolderOf(ref); held && holder != source {
		log.Infof("Refusing assignment, entity held by %s", holder)
		return nil, apperrors.NewConflictError(ref.String(), holder)
	}

	if err := c.api.Assign(ctx, episodeID, source, ref); err != nil {
		if apperrors.IsConflict(err) {
			holder := apperrors.ConflictHolder(err)
			log.Infof("Backend refused assignment, entity held by %q", holder)
			return nil, apperrors.NewConflictError(ref.String(), holder)
		}
		log.Errorf("Assignment failed: %v", err)
		return nil, fmt.Errorf("assign %s: %w", source, err)
	}

	a := models.Assignment{
		Source:     source,
		Kind:       ref.Kind,
		EntityID:   ref.ID,
		PersonType: ref.PersonType,
		Label:      label,
		AssignedBy: "manual",
	}
	if ref.Kind == models.KindCamera && ref.IsClear() {
		a.Disabled = true
		a.Label = ""
	}
	if ref.Kind == models.KindPerson && ref.IsClear() {
		a.PersonType = ""
		a.Label = ""
	}

	c.mu.Lock()
	if c.episodeID == episodeID {
		c.entries[source] = a
	}
	c.mu.Unlock()

	log.Infof("Assigned %s", a.DisplayLabel())
	return &a, nil
}
