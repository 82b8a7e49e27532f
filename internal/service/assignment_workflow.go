package service

import (
	"context"
	"fmt"
	"sync"

	apperrors "studio-console/internal/errors"
	"studio-console/internal/logger"
	"studio-console/internal/models"
)

// WorkflowView is the open assignment dialog: one target source and the
// entities it may be bound to.
type WorkflowView struct {
	Source     string             `json:"source_name"`
	Kind       models.EntityKind  `json:"kind"`
	Current    models.Assignment  `json:"current"`
	Candidates []models.Candidate `json:"candidates"`
}

func (v *WorkflowView) find(id int64) (models.Candidate, bool) {
	for _, c := range v.Candidates {
		if c.ID == id {
			return c, true
		}
	}
	return models.Candidate{}, false
}

// AssignmentWorkflow drives one assignment dialog at a time
type AssignmentWorkflow struct {
	api   AssignmentAPI
	cache *AssignmentCache

	mu     sync.Mutex
	target *WorkflowView
}

// NewAssignmentWorkflow creates a closed workflow
func NewAssignmentWorkflow(api AssignmentAPI, cache *AssignmentCache) *AssignmentWorkflow {
	return &AssignmentWorkflow{api: api, cache: cache}
}

// Open targets source and loads the candidates of kind
func (w *AssignmentWorkflow) Open(ctx context.Context, source string, kind models.EntityKind) (*WorkflowView, error) {
	episodeID := w.cache.EpisodeID()
	if episodeID == 0 {
		return nil, apperrors.ErrNoEpisode
	}
	if source == "" {
		return nil, apperrors.ErrNoSourceSelected
	}

	ctx = logger.WithEpisode(ctx, episodeID)
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"source": source,
		"kind":   kind,
	})

	var (
		candidates []models.Candidate
		err        error
	)
	switch kind {
	case models.KindCamera:
		candidates, err = w.api.CameraTypes(ctx, episodeID, source)
	case models.KindPerson:
		candidates, err = w.api.MicrophonePeople(ctx, episodeID, source)
	case models.KindMedia:
		candidates, err = w.api.MediaList(ctx, episodeID, source)
	case models.KindGroup:
		candidates, err = w.api.GroupsList(ctx, episodeID, source)
	default:
		return nil, apperrors.ErrUnknownKind
	}
	if err != nil {
		log.Errorf("Loading candidates failed: %v", err)
		return nil, fmt.Errorf("load %s candidates: %w", kind, err)
	}

	// pushes may be fresher than the list the backend rendered
	for i, c := range candidates {
		if holder, held := w.cache.HolderOf(c.Ref()); held {
			if holder == source {
				candidates[i].IsCurrent = true
			} else if !c.IsAssigned {
				candidates[i].IsAssigned = true
				candidates[i].AssignedTo = holder
			}
		}
	}

	current, _ := w.cache.Get(source)
	view := &WorkflowView{Source: source, Kind: kind, Current: current, Candidates: candidates}

	w.mu.Lock()
	w.target = view
	w.mu.Unlock()

	log.Debugf("Workflow opened with %d candidates", len(candidates))
	return view, nil
}

// Target returns the open dialog, or nil
func (w *AssignmentWorkflow) Target() *WorkflowView {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.target
}

// Choose binds the target source to ref. On conflict the dialog stays open
// so another entity can be picked.
func (w *AssignmentWorkflow) Choose(ctx context.Context, ref models.EntityRef) (*models.Assignment, error) {
	view := w.Target()
	if view == nil {
		return nil, apperrors.ErrNoSourceSelected
	}
	if ref.Kind != view.Kind {
		return nil, apperrors.NewValidationError("kind", fmt.Sprintf("dialog assigns %s, got %s", view.Kind, ref.Kind))
	}

	label := ""
	if ref.ID != nil {
		candidate, ok := view.find(*ref.ID)
		if !ok {
			return nil, apperrors.NewNotFoundError("candidate")
		}
		if !candidate.Selectable() {
			return nil, apperrors.NewConflictError(ref.String(), candidate.AssignedTo)
		}
		if ref.Kind == models.KindPerson && ref.PersonType == "" {
			ref.PersonType = candidate.PersonType
		}
		label = candidate.Name
	}

	a, err := w.cache.RequestAssign(ctx, view.Source, ref, label)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	if w.target == view {
		w.target = nil
	}
	w.mu.Unlock()
	return a, nil
}

// Close dismisses the dialog without touching the episode context
func (w *AssignmentWorkflow) Close() {
	w.mu.Lock()
	w.target = nil
	w.mu.Unlock()
}
