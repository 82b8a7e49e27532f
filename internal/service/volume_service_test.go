package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "studio-console/internal/errors"
	"studio-console/internal/mocks"
	"studio-console/internal/models"
	"studio-console/internal/service"
	"studio-console/internal/volume"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// VolumeServiceTestSuite defines the test suite for VolumeService
type VolumeServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockEngine *mocks.MockSceneEngine
	sink       *recordingSink
	volumes    *service.VolumeService
	ctx        context.Context
}

func (suite *VolumeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEngine = mocks.NewMockSceneEngine(suite.ctrl)
	suite.sink = &recordingSink{}
	suite.volumes = service.NewVolumeService(suite.mockEngine, suite.sink)
	suite.ctx = context.Background()
}

func (suite *VolumeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VolumeServiceTestSuite) TestSetPositionSendsDecibels() {
	suite.mockEngine.EXPECT().SetInputVolume(gomock.Any(), "Mic1", 0.0).Return(nil)

	st, err := suite.volumes.SetPosition(suite.ctx, "Mic1", 100)

	suite.NoError(err)
	suite.Equal(0.0, st.DB)
	suite.Equal(100.0, st.Position)
	suite.Equal("0.0dB", st.Label)
}

func (suite *VolumeServiceTestSuite) TestSetPositionRevertsOnFailure() {
	suite.volumes.ApplyExternal("Mic1", -20)
	suite.mockEngine.EXPECT().SetInputVolume(gomock.Any(), "Mic1", gomock.Any()).Return(errors.New("rejected"))

	st, err := suite.volumes.SetPosition(suite.ctx, "Mic1", 90)

	suite.Error(err)
	suite.Equal(-20.0, st.DB)
	current, _ := suite.volumes.Get("Mic1")
	suite.Equal(-20.0, current.DB)

	// optimistic value, then the revert
	updates := suite.sink.ofType(models.ViewVolume)
	suite.Require().Len(updates, 3)
	suite.Equal(-20.0, updates[2].Volume.DB)
}

func (suite *VolumeServiceTestSuite) TestFailedSetKeepsLevelReportedMeanwhile() {
	suite.volumes.ApplyExternal("Mic1", -20)
	suite.mockEngine.EXPECT().SetInputVolume(gomock.Any(), "Mic1", gomock.Any()).DoAndReturn(
		func(ctx context.Context, source string, db float64) error {
			suite.volumes.ApplyExternal(source, -6)
			return errors.New("rejected")
		})

	st, err := suite.volumes.SetPosition(suite.ctx, "Mic1", 90)

	suite.Error(err)
	suite.Equal(-6.0, st.DB)
	current, _ := suite.volumes.Get("Mic1")
	suite.Equal(-6.0, current.DB)

	updates := suite.sink.ofType(models.ViewVolume)
	suite.Require().Len(updates, 3)
	suite.Equal(-6.0, updates[2].Volume.DB)
}

func (suite *VolumeServiceTestSuite) TestSetPositionRevertsToDefaultWhenUnknown() {
	suite.mockEngine.EXPECT().SetInputVolume(gomock.Any(), "Track1", gomock.Any()).Return(apperrors.ErrRequestTimeout)

	st, err := suite.volumes.SetPosition(suite.ctx, "Track1", 50)

	suite.ErrorIs(err, apperrors.ErrRequestTimeout)
	suite.Equal(volume.DefaultDecibels, st.DB)
}

func (suite *VolumeServiceTestSuite) TestSetPositionOutOfRange() {
	_, err := suite.volumes.SetPosition(suite.ctx, "Mic1", 120)
	suite.True(apperrors.IsValidation(err))

	_, err = suite.volumes.SetPosition(suite.ctx, "Mic1", -1)
	suite.True(apperrors.IsValidation(err))
}

func (suite *VolumeServiceTestSuite) TestRefresh() {
	suite.mockEngine.EXPECT().GetInputVolume(gomock.Any(), "Mic1").Return(-100.0, nil)

	st, err := suite.volumes.Refresh(suite.ctx, "Mic1")

	suite.NoError(err)
	suite.True(st.Muted)
	suite.Equal(0.0, st.Position)
	suite.Equal("-∞", st.Label)
}

func (suite *VolumeServiceTestSuite) TestRefreshFailureKeepsState() {
	suite.volumes.ApplyExternal("Mic1", -6)
	suite.mockEngine.EXPECT().GetInputVolume(gomock.Any(), "Mic1").Return(0.0, errors.New("rejected"))

	_, err := suite.volumes.Refresh(suite.ctx, "Mic1")

	suite.Error(err)
	st, _ := suite.volumes.Get("Mic1")
	suite.Equal(-6.0, st.DB)
}

func TestVolumeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VolumeServiceTestSuite))
}
