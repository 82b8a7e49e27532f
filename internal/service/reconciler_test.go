package service_test

import (
	"context"
	"testing"
	"time"

	"studio-console/internal/config"
	"studio-console/internal/mocks"
	"studio-console/internal/models"
	"studio-console/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReconcilerTestSuite defines the test suite for Reconciler
type ReconcilerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockEngine   *mocks.MockSceneEngine
	mockAPI      *mocks.MockAssignmentAPI
	mockEpisodes *mocks.MockEpisodeContext
	sink         *recordingSink
	cache        *service.AssignmentCache
	registry     *service.SceneRegistry
	sequencer    *service.SwitchSequencer
	volumes      *service.VolumeService
	reconciler   *service.Reconciler
}

func (suite *ReconcilerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEngine = mocks.NewMockSceneEngine(suite.ctrl)
	suite.mockAPI = mocks.NewMockAssignmentAPI(suite.ctrl)
	suite.mockEpisodes = mocks.NewMockEpisodeContext(suite.ctrl)
	suite.sink = &recordingSink{}

	suite.cache = service.NewAssignmentCache(suite.mockAPI, validator.New())
	suite.registry = service.NewSceneRegistry(suite.mockEngine)
	suite.sequencer = service.NewSwitchSequencer(suite.mockEngine, suite.registry, config.DefaultSceneLayout(), suite.sink, nil, 0)
	suite.volumes = service.NewVolumeService(suite.mockEngine, suite.sink)
	suite.reconciler = service.NewReconciler(suite.mockEpisodes, suite.cache, suite.registry, suite.sequencer, suite.volumes, suite.sink)
}

func (suite *ReconcilerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReconcilerTestSuite) mediaEvent(episodeID int64, source string, mediaID int64, title string) models.AssignmentEvent {
	return models.AssignmentEvent{
		Kind:      models.EventMediaAssigned,
		EpisodeID: episodeID,
		Assignment: models.Assignment{
			Source: source, Kind: models.KindMedia, EntityID: int64Ptr(mediaID), Label: title,
		},
	}
}

func (suite *ReconcilerTestSuite) TestAssignmentForCurrentEpisode() {
	suite.cache.Reset(7)
	suite.mockEpisodes.EXPECT().EpisodeID().Return(int64(7)).AnyTimes()

	suite.True(suite.reconciler.Apply(suite.mediaEvent(7, "Media1", 3, "Intro")))

	suite.Equal("Intro", suite.cache.Label("Media1"))
	updates := suite.sink.ofType(models.ViewAssignment)
	suite.Require().Len(updates, 1)
	suite.Equal("Intro", updates[0].Label)
}

func (suite *ReconcilerTestSuite) TestAssignmentForOtherEpisodeDropped() {
	suite.cache.Reset(7)
	suite.mockEpisodes.EXPECT().EpisodeID().Return(int64(7)).AnyTimes()

	suite.False(suite.reconciler.Apply(suite.mediaEvent(8, "Media1", 3, "Intro")))

	suite.Empty(suite.cache.Snapshot())
	suite.Empty(suite.sink.ofType(models.ViewAssignment))
}

func (suite *ReconcilerTestSuite) TestAssignmentWithoutEpisodeDropped() {
	suite.mockEpisodes.EXPECT().EpisodeID().Return(int64(0)).AnyTimes()

	suite.False(suite.reconciler.Apply(suite.mediaEvent(7, "Media1", 3, "Intro")))
	suite.Empty(suite.cache.Snapshot())
}

func (suite *ReconcilerTestSuite) TestDuplicateAssignmentPublishesOnce() {
	suite.cache.Reset(7)
	suite.mockEpisodes.EXPECT().EpisodeID().Return(int64(7)).AnyTimes()
	evt := suite.mediaEvent(7, "Media1", 3, "Intro")

	suite.True(suite.reconciler.Apply(evt))
	suite.False(suite.reconciler.Apply(evt))
	suite.Len(suite.sink.ofType(models.ViewAssignment), 1)
}

func (suite *ReconcilerTestSuite) TestSourceChangedUpdatesRegistryAndMarker() {
	suite.mockEngine.EXPECT().SyncSourceOrder(gomock.Any(), "KAMERY").Return(nil)
	suite.mockEngine.EXPECT().GetSources(gomock.Any(), "KAMERY").Return(sceneSources(false, item(0, "Cam1", false)), nil)
	_, err := suite.registry.LoadScene(context.Background(), "KAMERY")
	suite.Require().NoError(err)

	changed := suite.reconciler.Apply(models.SourceChangedEvent{Scene: "KAMERY", Source: "Cam1", Visible: true})

	suite.True(changed)
	suite.True(suite.registry.IsVisible("KAMERY", "Cam1"))
	_, source := suite.sequencer.OnAir()
	suite.Equal("Cam1", source)

	suite.False(suite.reconciler.Apply(models.SourceChangedEvent{Scene: "KAMERY", Source: "Cam1", Visible: true}))
}

func (suite *ReconcilerTestSuite) TestVolumeChangedIsAuthoritative() {
	suite.True(suite.reconciler.Apply(models.VolumeChangedEvent{Source: "Mic1", VolumeDB: -20}))

	st, ok := suite.volumes.Get("Mic1")
	suite.True(ok)
	suite.Equal(-20.0, st.DB)
	suite.False(suite.reconciler.Apply(models.VolumeChangedEvent{Source: "Mic1", VolumeDB: -20}))
}

func (suite *ReconcilerTestSuite) TestRunAppliesInArrivalOrder() {
	suite.cache.Reset(7)
	suite.mockEpisodes.EXPECT().EpisodeID().Return(int64(7)).AnyTimes()

	events := make(chan models.Event, 2)
	events <- suite.mediaEvent(7, "Media1", 3, "Intro")
	events <- suite.mediaEvent(7, "Media1", 4, "Outro")
	close(events)

	done := make(chan struct{})
	go func() {
		suite.reconciler.Run(context.Background(), events)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		suite.FailNow("reconciler did not stop after channel close")
	}
	suite.Equal("Outro", suite.cache.Label("Media1"))
}

func TestReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}
