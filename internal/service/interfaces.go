package service

import (
	"context"
	"time"

	"studio-console/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SceneEngine is the command surface of the realtime channel
type SceneEngine interface {
	GetSources(ctx context.Context, scene string) (*models.SceneSources, error)
	SyncSourceOrder(ctx context.Context, scene string) error
	SaveSourceOrder(ctx context.Context, scene string) error
	ToggleSource(ctx context.Context, scene, source string, visible bool) error
	SetCurrentScene(ctx context.Context, scene string) error
	SetSourceIndex(ctx context.Context, scene, source string, toTop bool) error
	MuteAllMicrophones(ctx context.Context) error
	RestoreMicrophones(ctx context.Context) error
	SetInputVolume(ctx context.Context, source string, db float64) error
	GetInputVolume(ctx context.Context, source string) (float64, error)
	SendToOverlay(ctx context.Context, msg map[string]interface{}) error
}

// AssignmentAPI is the production backend's REST surface for assignments
type AssignmentAPI interface {
	GetCurrentEpisode(ctx context.Context) (*models.Episode, error)
	GetAssignments(ctx context.Context, episodeID int64) (map[string]models.AssignmentRecord, error)
	Assign(ctx context.Context, episodeID int64, source string, ref models.EntityRef) error
	CameraTypes(ctx context.Context, episodeID int64, source string) ([]models.Candidate, error)
	MicrophonePeople(ctx context.Context, episodeID int64, source string) ([]models.Candidate, error)
	MediaList(ctx context.Context, episodeID int64, source string) ([]models.Candidate, error)
	GroupsList(ctx context.Context, episodeID int64, source string) ([]models.Candidate, error)
	AutoAssignMedia(ctx context.Context, episodeID int64) (map[string]models.AutoAssignResult, error)
	AutoAssignGroups(ctx context.Context, episodeID int64) (map[string]models.AutoAssignResult, error)
}

// ViewSink receives every change of the console's view
type ViewSink interface {
	Publish(update models.ViewUpdate)
}

// Sleeper waits between switch steps
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// EpisodeContext exposes the currently selected episode
type EpisodeContext interface {
	EpisodeID() int64
}

// SwitchSequencerInterface puts a main source on air
type SwitchSequencerInterface interface {
	Switch(ctx context.Context, scene, source string) error
	Toggle(ctx context.Context, scene, source string, visible bool) error
	OnAir() (scene, source string)
}

// ConsoleInterface is the operator-facing surface used by the HTTP handlers
type ConsoleInterface interface {
	Init(ctx context.Context, episodeID int64) error
	Teardown()
	EpisodeID() int64
	Sources(scene string) ([]models.Source, error)
	LoadScene(ctx context.Context, scene string) ([]models.Source, error)
	SaveOrder(ctx context.Context, scene string) error
	HasUnsavedOrder(scene string) bool
	Switch(ctx context.Context, scene, source string) error
	Toggle(ctx context.Context, scene, source string, visible bool) error
	OnAir() (scene, source string)
	Assignments() map[string]models.Assignment
	RefreshAssignments(ctx context.Context) error
	Assign(ctx context.Context, source string, ref models.EntityRef) (*models.Assignment, error)
	AutoAssign(ctx context.Context) (map[string]models.Assignment, error)
	OpenWorkflow(ctx context.Context, source string, kind models.EntityKind) (*WorkflowView, error)
	ChooseInWorkflow(ctx context.Context, ref models.EntityRef) (*models.Assignment, error)
	CloseWorkflow()
	Volume(source string) (models.VolumeState, bool)
	SetVolume(ctx context.Context, source string, position float64) (models.VolumeState, error)
	RefreshVolume(ctx context.Context, source string) (models.VolumeState, error)
}
