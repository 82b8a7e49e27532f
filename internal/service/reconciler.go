package service

import (
	"context"

	"studio-console/internal/logger"
	"studio-console/internal/models"
)

// Reconciler applies realtime pushes to local state in arrival order
type Reconciler struct {
	episodes  EpisodeContext
	cache     *AssignmentCache
	registry  *SceneRegistry
	sequencer *SwitchSequencer
	volumes   *VolumeService
	sink      ViewSink
}

// NewReconciler wires the reconciler to the state it maintains
func NewReconciler(episodes EpisodeContext, cache *AssignmentCache, registry *SceneRegistry, sequencer *SwitchSequencer, volumes *VolumeService, sink ViewSink) *Reconciler {
	return &Reconciler{
		episodes:  episodes,
		cache:     cache,
		registry:  registry,
		sequencer: sequencer,
		volumes:   volumes,
		sink:      sink,
	}
}

// Run consumes events until the channel closes or ctx is done
func (r *Reconciler) Run(ctx context.Context, events <-chan models.Event) {
	log := logger.WithContext(ctx)
	log.Info("Reconciler started")
	defer log.Info("Reconciler stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			r.Apply(evt)
		}
	}
}

// Apply handles one event and reports whether local state changed
func (r *Reconciler) Apply(evt models.Event) bool {
	log := logger.New().WithField("event", evt.EventKind())

	switch e := evt.(type) {
	case models.SourceChangedEvent:
		changed := r.registry.SetVisible(e.Scene, e.Source, e.Visible)
		if changed {
			v := e.Visible
			r.sink.Publish(models.ViewUpdate{Type: models.ViewSource, Scene: e.Scene, Source: e.Source, Visible: &v})
		}
		r.sequencer.ObserveVisibility(e.Scene, e.Source, e.Visible)
		return changed

	case models.AssignmentEvent:
		current := r.episodes.EpisodeID()
		if current == 0 {
			log.Debug("No episode selected, assignment push dropped")
			return false
		}
		if e.EpisodeID != 0 && e.EpisodeID != current {
			log.WithField("event_episode", e.EpisodeID).Debug("Assignment push for another episode dropped")
			return false
		}
		if !r.cache.ApplyBroadcast(e) {
			return false
		}
		r.sink.Publish(models.ViewUpdate{
			Type:     models.ViewAssignment,
			Source:   e.Assignment.Source,
			Label:    e.Assignment.DisplayLabel(),
			Disabled: e.Assignment.Disabled,
		})
		return true

	case models.VolumeChangedEvent:
		previous, known := r.volumes.Get(e.Source)
		st := r.volumes.ApplyExternal(e.Source, e.VolumeDB)
		return !known || previous.DB != st.DB
	}

	log.Debug("Unhandled event")
	return false
}
