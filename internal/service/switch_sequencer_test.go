package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"studio-console/internal/config"
	apperrors "studio-console/internal/errors"
	"studio-console/internal/mocks"
	"studio-console/internal/models"
	"studio-console/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const switchDelay = 600 * time.Millisecond

var showTransition = map[string]interface{}{"action": "show_transition"}

// SwitchSequencerTestSuite defines the test suite for SwitchSequencer
type SwitchSequencerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockEngine  *mocks.MockSceneEngine
	mockSleeper *mocks.MockSleeper
	sink        *recordingSink
	registry    *service.SceneRegistry
	sequencer   *service.SwitchSequencer
	ctx         context.Context
}

func (suite *SwitchSequencerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEngine = mocks.NewMockSceneEngine(suite.ctrl)
	suite.mockSleeper = mocks.NewMockSleeper(suite.ctrl)
	suite.sink = &recordingSink{}
	suite.registry = service.NewSceneRegistry(suite.mockEngine)
	suite.sequencer = service.NewSwitchSequencer(suite.mockEngine, suite.registry, config.DefaultSceneLayout(), suite.sink, suite.mockSleeper, switchDelay)
	suite.ctx = context.Background()
}

func (suite *SwitchSequencerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SwitchSequencerTestSuite) load(scene string, items ...models.SceneItem) {
	suite.mockEngine.EXPECT().SyncSourceOrder(gomock.Any(), scene).Return(nil)
	suite.mockEngine.EXPECT().GetSources(gomock.Any(), scene).Return(sceneSources(false, items...), nil)
	_, err := suite.registry.LoadScene(suite.ctx, scene)
	suite.Require().NoError(err)
}

func (suite *SwitchSequencerTestSuite) TestSwitchRunsStepsInOrder() {
	suite.load("KAMERY", item(0, "Cam1", false), item(1, "Cam2", false))
	suite.load("MEDIA", item(0, "Media1", true))

	gomock.InOrder(
		suite.mockEngine.EXPECT().SendToOverlay(gomock.Any(), showTransition).Return(nil),
		suite.mockEngine.EXPECT().SetCurrentScene(gomock.Any(), "STREAM").Return(nil),
		suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "KAMERY", "Cam1", true).Return(nil),
		suite.mockSleeper.EXPECT().Sleep(gomock.Any(), switchDelay).Return(nil),
		suite.mockEngine.EXPECT().SetSourceIndex(gomock.Any(), "KAMERY", "Cam1", true).Return(nil),
		suite.mockEngine.EXPECT().SetSourceIndex(gomock.Any(), "SCREEN", "KAMERY", true).Return(nil),
		suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "MEDIA", "Media1", false).Return(nil),
		suite.mockEngine.EXPECT().RestoreMicrophones(gomock.Any()).Return(nil),
	)

	err := suite.sequencer.Switch(suite.ctx, "KAMERY", "Cam1")

	suite.Require().NoError(err)
	scene, source := suite.sequencer.OnAir()
	suite.Equal("KAMERY", scene)
	suite.Equal("Cam1", source)
	suite.True(suite.registry.IsVisible("KAMERY", "Cam1"))
	suite.False(suite.registry.IsVisible("MEDIA", "Media1"))
	suite.NotEmpty(suite.sink.ofType(models.ViewOnAir))
}

func (suite *SwitchSequencerTestSuite) TestSwitchAlreadyOnAirIsNoop() {
	suite.load("KAMERY", item(0, "Cam1", true))
	suite.sequencer.ObserveVisibility("KAMERY", "Cam1", true)

	err := suite.sequencer.Switch(suite.ctx, "KAMERY", "Cam1")

	suite.NoError(err)
}

func (suite *SwitchSequencerTestSuite) TestRetryAfterFailedRaiseRunsFullSequence() {
	suite.load("KAMERY", item(0, "Cam1", true))
	suite.load("MEDIA", item(0, "Media1", false))
	suite.sequencer.ObserveVisibility("KAMERY", "Cam1", true)
	reconciler := service.NewReconciler(mocks.NewMockEpisodeContext(suite.ctrl), nil, suite.registry, suite.sequencer, nil, suite.sink)

	gomock.InOrder(
		suite.mockEngine.EXPECT().SendToOverlay(gomock.Any(), showTransition).Return(nil),
		suite.mockEngine.EXPECT().SetCurrentScene(gomock.Any(), "STREAM").Return(nil),
		suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "MEDIA", "Media1", true).DoAndReturn(
			func(ctx context.Context, scene, source string, visible bool) error {
				// the engine echoes the change before the call returns
				reconciler.Apply(models.SourceChangedEvent{Scene: scene, Source: source, Visible: visible})
				return nil
			}),
		suite.mockSleeper.EXPECT().Sleep(gomock.Any(), switchDelay).Return(nil),
		suite.mockEngine.EXPECT().SetSourceIndex(gomock.Any(), "MEDIA", "Media1", true).Return(errors.New("engine busy")),
	)

	err := suite.sequencer.Switch(suite.ctx, "MEDIA", "Media1")

	suite.Require().Error(err)
	suite.Contains(err.Error(), "set_source_index")
	scene, source := suite.sequencer.OnAir()
	suite.Equal("KAMERY", scene)
	suite.Equal("Cam1", source)

	gomock.InOrder(
		suite.mockEngine.EXPECT().SendToOverlay(gomock.Any(), showTransition).Return(nil),
		suite.mockEngine.EXPECT().SetCurrentScene(gomock.Any(), "STREAM").Return(nil),
		suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "MEDIA", "Media1", true).Return(nil),
		suite.mockSleeper.EXPECT().Sleep(gomock.Any(), switchDelay).Return(nil),
		suite.mockEngine.EXPECT().SetSourceIndex(gomock.Any(), "MEDIA", "Media1", true).Return(nil),
		suite.mockEngine.EXPECT().SetSourceIndex(gomock.Any(), "SCREEN", "MEDIA", true).Return(nil),
		suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "KAMERY", "Cam1", false).Return(nil),
	)

	suite.Require().NoError(suite.sequencer.Switch(suite.ctx, "MEDIA", "Media1"))

	scene, source = suite.sequencer.OnAir()
	suite.Equal("MEDIA", scene)
	suite.Equal("Media1", source)
	suite.False(suite.registry.IsVisible("KAMERY", "Cam1"))
	suite.True(suite.registry.IsVisible("MEDIA", "Media1"))
}

func (suite *SwitchSequencerTestSuite) TestSwitchWithinSceneSkipsTransitionCue() {
	suite.load("KAMERY", item(0, "Cam1", true), item(1, "Cam2", false))
	suite.sequencer.ObserveVisibility("KAMERY", "Cam1", true)

	suite.mockEngine.EXPECT().SendToOverlay(gomock.Any(), gomock.Any()).Times(0)
	gomock.InOrder(
		suite.mockEngine.EXPECT().SetCurrentScene(gomock.Any(), "STREAM").Return(nil),
		suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "KAMERY", "Cam2", true).Return(nil),
		suite.mockSleeper.EXPECT().Sleep(gomock.Any(), switchDelay).Return(nil),
		suite.mockEngine.EXPECT().SetSourceIndex(gomock.Any(), "KAMERY", "Cam2", true).Return(nil),
		suite.mockEngine.EXPECT().SetSourceIndex(gomock.Any(), "SCREEN", "KAMERY", true).Return(nil),
		suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "KAMERY", "Cam1", false).Return(nil),
		suite.mockEngine.EXPECT().RestoreMicrophones(gomock.Any()).Return(nil),
	)

	suite.NoError(suite.sequencer.Switch(suite.ctx, "KAMERY", "Cam2"))
}

func (suite *SwitchSequencerTestSuite) TestSwitchAbortsWhenToggleFails() {
	suite.load("REPORTAZE", item(0, "Rep1", false))

	gomock.InOrder(
		suite.mockEngine.EXPECT().SendToOverlay(gomock.Any(), showTransition).Return(nil),
		suite.mockEngine.EXPECT().SetCurrentScene(gomock.Any(), "STREAM").Return(nil),
		suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "REPORTAZE", "Rep1", true).Return(apperrors.ErrRequestTimeout),
	)
	suite.mockSleeper.EXPECT().Sleep(gomock.Any(), gomock.Any()).Times(0)
	suite.mockEngine.EXPECT().SetSourceIndex(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	suite.mockEngine.EXPECT().MuteAllMicrophones(gomock.Any()).Times(0)

	err := suite.sequencer.Switch(suite.ctx, "REPORTAZE", "Rep1")

	suite.ErrorIs(err, apperrors.ErrRequestTimeout)
	scene, _ := suite.sequencer.OnAir()
	suite.Empty(scene)
}

func (suite *SwitchSequencerTestSuite) TestSwitchAbortsWhenProgramSceneFails() {
	suite.load("MEDIA", item(0, "Media1", false))

	suite.mockEngine.EXPECT().SendToOverlay(gomock.Any(), showTransition).Return(nil)
	suite.mockEngine.EXPECT().SetCurrentScene(gomock.Any(), "STREAM").Return(errors.New("engine offline"))

	err := suite.sequencer.Switch(suite.ctx, "MEDIA", "Media1")

	suite.Error(err)
	suite.Contains(err.Error(), "set_current_scene")
}

func (suite *SwitchSequencerTestSuite) TestSwitchToleratesSiblingAndMicrophoneFailures() {
	suite.load("KAMERY", item(0, "Cam1", true))
	suite.load("MEDIA", item(0, "Media1", true))
	suite.load("REPORTAZE", item(0, "Rep1", false))

	suite.mockEngine.EXPECT().SendToOverlay(gomock.Any(), showTransition).Return(errors.New("overlay offline"))
	suite.mockEngine.EXPECT().SetCurrentScene(gomock.Any(), "STREAM").Return(nil)
	suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "REPORTAZE", "Rep1", true).Return(nil)
	suite.mockSleeper.EXPECT().Sleep(gomock.Any(), switchDelay).Return(nil)
	suite.mockEngine.EXPECT().SetSourceIndex(gomock.Any(), "REPORTAZE", "Rep1", true).Return(nil)
	suite.mockEngine.EXPECT().SetSourceIndex(gomock.Any(), "SCREEN", "REPORTAZE", true).Return(nil)
	suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "KAMERY", "Cam1", false).Return(errors.New("rejected"))
	suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "MEDIA", "Media1", false).Return(nil)
	suite.mockEngine.EXPECT().MuteAllMicrophones(gomock.Any()).Return(errors.New("mixer busy"))

	err := suite.sequencer.Switch(suite.ctx, "REPORTAZE", "Rep1")

	suite.NoError(err)
	suite.True(suite.registry.IsVisible("KAMERY", "Cam1"))
	suite.False(suite.registry.IsVisible("MEDIA", "Media1"))
	scene, source := suite.sequencer.OnAir()
	suite.Equal("REPORTAZE", scene)
	suite.Equal("Rep1", source)
}

func (suite *SwitchSequencerTestSuite) TestSwitchMediaHasNoMicrophonePolicy() {
	suite.load("MEDIA", item(0, "Media1", false))

	suite.mockEngine.EXPECT().SendToOverlay(gomock.Any(), showTransition).Return(nil)
	suite.mockEngine.EXPECT().SetCurrentScene(gomock.Any(), "STREAM").Return(nil)
	suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "MEDIA", "Media1", true).Return(nil)
	suite.mockSleeper.EXPECT().Sleep(gomock.Any(), switchDelay).Return(nil)
	suite.mockEngine.EXPECT().SetSourceIndex(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(nil).Times(2)
	suite.mockEngine.EXPECT().MuteAllMicrophones(gomock.Any()).Times(0)
	suite.mockEngine.EXPECT().RestoreMicrophones(gomock.Any()).Times(0)

	suite.NoError(suite.sequencer.Switch(suite.ctx, "MEDIA", "Media1"))
}

func (suite *SwitchSequencerTestSuite) TestSwitchRejectsNonMainScene() {
	err := suite.sequencer.Switch(suite.ctx, "MUZYKA", "Track1")
	suite.True(apperrors.IsValidation(err))
}

func (suite *SwitchSequencerTestSuite) TestConcurrentSwitchIsRefused() {
	suite.load("KAMERY", item(0, "Cam1", false), item(1, "Cam2", false))

	entered := make(chan struct{})
	release := make(chan struct{})

	suite.mockEngine.EXPECT().SendToOverlay(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockEngine.EXPECT().SetCurrentScene(gomock.Any(), "STREAM").Return(nil)
	suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "KAMERY", "Cam1", true).Return(nil)
	suite.mockSleeper.EXPECT().Sleep(gomock.Any(), switchDelay).DoAndReturn(func(ctx context.Context, d time.Duration) error {
		close(entered)
		<-release
		return nil
	})
	suite.mockEngine.EXPECT().SetSourceIndex(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(nil).Times(2)
	suite.mockEngine.EXPECT().RestoreMicrophones(gomock.Any()).Return(nil)

	var (
		wg       sync.WaitGroup
		firstErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstErr = suite.sequencer.Switch(suite.ctx, "KAMERY", "Cam1")
	}()

	<-entered
	err := suite.sequencer.Switch(suite.ctx, "KAMERY", "Cam2")
	close(release)
	wg.Wait()

	suite.ErrorIs(err, apperrors.ErrSwitchInProgress)
	suite.NoError(firstErr)
}

func (suite *SwitchSequencerTestSuite) TestToggleUpdatesRegistryAndMarker() {
	suite.load("KAMERY", item(0, "Cam1", false))
	suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "KAMERY", "Cam1", true).Return(nil)

	suite.NoError(suite.sequencer.Toggle(suite.ctx, "KAMERY", "Cam1", true))

	suite.True(suite.registry.IsVisible("KAMERY", "Cam1"))
	_, source := suite.sequencer.OnAir()
	suite.Equal("Cam1", source)
	suite.Len(suite.sink.ofType(models.ViewSource), 1)
}

func (suite *SwitchSequencerTestSuite) TestToggleFailureChangesNothing() {
	suite.load("MIKROFONY", item(0, "Mic1", false))
	suite.mockEngine.EXPECT().ToggleSource(gomock.Any(), "MIKROFONY", "Mic1", true).Return(errors.New("rejected"))

	suite.Error(suite.sequencer.Toggle(suite.ctx, "MIKROFONY", "Mic1", true))
	suite.False(suite.registry.IsVisible("MIKROFONY", "Mic1"))
	suite.Empty(suite.sink.ofType(models.ViewSource))
}

func TestSwitchSequencerTestSuite(t *testing.T) {
	suite.Run(t, new(SwitchSequencerTestSuite))
}
