package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "studio-console/internal/errors"
	"studio-console/internal/mocks"
	"studio-console/internal/models"
	"studio-console/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssignmentCacheTestSuite defines the test suite for AssignmentCache
type AssignmentCacheTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockAPI *mocks.MockAssignmentAPI
	cache   *service.AssignmentCache
	ctx     context.Context
}

func (suite *AssignmentCacheTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAPI = mocks.NewMockAssignmentAPI(suite.ctrl)
	suite.cache = service.NewAssignmentCache(suite.mockAPI, validator.New())
	suite.ctx = context.Background()
}

func (suite *AssignmentCacheTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentCacheTestSuite) seed(episodeID int64, records map[string]models.AssignmentRecord) {
	suite.cache.Reset(episodeID)
	suite.mockAPI.EXPECT().GetAssignments(gomock.Any(), episodeID).Return(records, nil)
	suite.Require().NoError(suite.cache.RefreshAll(suite.ctx))
}

func (suite *AssignmentCacheTestSuite) TestRefreshAllReplacesMapping() {
	suite.seed(7, map[string]models.AssignmentRecord{
		"Media1": {Type: "media", ButtonText: "Intro", MediaID: int64Ptr(3)},
		"Cam1":   {Type: "camera", ButtonText: "Wide", CameraTypeID: int64Ptr(2)},
	})

	suite.mockAPI.EXPECT().GetAssignments(gomock.Any(), int64(7)).Return(map[string]models.AssignmentRecord{
		"Media2": {Type: "group", ButtonText: "Jingles", GroupID: int64Ptr(9)},
	}, nil)
	suite.Require().NoError(suite.cache.RefreshAll(suite.ctx))

	snapshot := suite.cache.Snapshot()
	suite.Len(snapshot, 1)
	suite.Equal("Jingles", snapshot["Media2"].Label)
	_, stale := suite.cache.Get("Media1")
	suite.False(stale)
}

func (suite *AssignmentCacheTestSuite) TestRefreshAllFailureKeepsState() {
	suite.seed(7, map[string]models.AssignmentRecord{
		"Media1": {Type: "media", ButtonText: "Intro", MediaID: int64Ptr(3)},
	})

	suite.mockAPI.EXPECT().GetAssignments(gomock.Any(), int64(7)).Return(nil, errors.New("backend down"))
	err := suite.cache.RefreshAll(suite.ctx)

	suite.Error(err)
	suite.Equal("Intro", suite.cache.Label("Media1"))
}

func (suite *AssignmentCacheTestSuite) TestRefreshAllWithoutEpisode() {
	err := suite.cache.RefreshAll(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrNoEpisode)
}

func (suite *AssignmentCacheTestSuite) TestRefreshAllDisabledCamera() {
	suite.seed(7, map[string]models.AssignmentRecord{
		"Cam2": {Type: "camera", IsDisabled: true, CameraTypeID: int64Ptr(4)},
	})

	a, ok := suite.cache.Get("Cam2")
	suite.True(ok)
	suite.True(a.Disabled)
	suite.Nil(a.EntityID)
	suite.Equal("Cam2", suite.cache.Label("Cam2"))
}

func (suite *AssignmentCacheTestSuite) TestApplyBroadcastIsIdempotent() {
	suite.cache.Reset(7)
	evt := models.AssignmentEvent{
		Kind:      models.EventMediaAssigned,
		EpisodeID: 7,
		Assignment: models.Assignment{
			Source: "Media1", Kind: models.KindMedia, EntityID: int64Ptr(3), Label: "Intro",
		},
	}

	suite.True(suite.cache.ApplyBroadcast(evt))
	first := suite.cache.Snapshot()
	suite.False(suite.cache.ApplyBroadcast(evt))
	suite.Equal(first, suite.cache.Snapshot())
}

func (suite *AssignmentCacheTestSuite) TestApplyBroadcastIgnoresOtherEpisode() {
	suite.cache.Reset(7)
	evt := models.AssignmentEvent{
		Kind:       models.EventMediaAssigned,
		EpisodeID:  8,
		Assignment: models.Assignment{Source: "Media1", Kind: models.KindMedia, EntityID: int64Ptr(3)},
	}

	suite.False(suite.cache.ApplyBroadcast(evt))
	suite.Empty(suite.cache.Snapshot())
}

func (suite *AssignmentCacheTestSuite) TestApplyBroadcastWithoutEpisode() {
	evt := models.AssignmentEvent{
		Kind:       models.EventMediaAssigned,
		Assignment: models.Assignment{Source: "Media1", Kind: models.KindMedia, EntityID: int64Ptr(3)},
	}

	suite.False(suite.cache.ApplyBroadcast(evt))
}

func (suite *AssignmentCacheTestSuite) TestRequestAssignLocalConflict() {
	suite.seed(7, map[string]models.AssignmentRecord{
		"Cam1": {Type: "camera", ButtonText: "Wide", CameraTypeID: int64Ptr(2)},
	})
	suite.mockAPI.EXPECT().Assign(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	a, err := suite.cache.RequestAssign(suite.ctx, "Cam2", models.CameraTypeRef(2), "Wide")

	suite.Nil(a)
	suite.True(apperrors.IsConflict(err))
	suite.Equal("Cam1", apperrors.ConflictHolder(err))
	_, exists := suite.cache.Get("Cam2")
	suite.False(exists)
}

func (suite *AssignmentCacheTestSuite) TestRequestAssignSameHolderAllowed() {
	suite.seed(7, map[string]models.AssignmentRecord{
		"Cam1": {Type: "camera", ButtonText: "Wide", CameraTypeID: int64Ptr(2)},
	})
	suite.mockAPI.EXPECT().Assign(gomock.Any(), int64(7), "Cam1", models.CameraTypeRef(2)).Return(nil)

	a, err := suite.cache.RequestAssign(suite.ctx, "Cam1", models.CameraTypeRef(2), "Wide")

	suite.NoError(err)
	suite.Equal("Wide", a.Label)
}

func (suite *AssignmentCacheTestSuite) TestRequestAssignBackendConflictLeavesCache() {
	suite.seed(7, nil)
	suite.mockAPI.EXPECT().
		Assign(gomock.Any(), int64(7), "Mic1", models.PersonRef(5, models.PersonStaff)).
		Return(apperrors.NewConflictError("person", "Mic3"))

	a, err := suite.cache.RequestAssign(suite.ctx, "Mic1", models.PersonRef(5, models.PersonStaff), "Anna Nowak")

	suite.Nil(a)
	suite.True(apperrors.IsConflict(err))
	suite.Equal("Mic3", apperrors.ConflictHolder(err))
	suite.Empty(suite.cache.Snapshot())
}

func (suite *AssignmentCacheTestSuite) TestRequestAssignDuplicateFileLeavesEntry() {
	suite.seed(7, map[string]models.AssignmentRecord{
		"Media1": {Type: "media", ButtonText: "Intro", MediaID: int64Ptr(3)},
	})
	ref := models.MediaRef(4)
	suite.mockAPI.EXPECT().Assign(gomock.Any(), int64(7), "Media1", ref).Return(apperrors.NewConflictError("media", ""))

	a, err := suite.cache.RequestAssign(suite.ctx, "Media1", ref, "Outro")

	suite.Nil(a)
	suite.True(apperrors.IsConflict(err))
	entry, ok := suite.cache.Get("Media1")
	suite.Require().True(ok)
	suite.Equal("Intro", entry.Label)
	suite.Equal(int64(3), *entry.EntityID)
}

func (suite *AssignmentCacheTestSuite) TestRequestAssignBackendFailure() {
	suite.seed(7, nil)
	suite.mockAPI.EXPECT().Assign(gomock.Any(), int64(7), "Media1", models.MediaRef(3)).
		Return(apperrors.NewBackendError("assign media", 500, "boom"))

	_, err := suite.cache.RequestAssign(suite.ctx, "Media1", models.MediaRef(3), "Intro")

	suite.True(apperrors.IsBackend(err))
	suite.Empty(suite.cache.Snapshot())
}

func (suite *AssignmentCacheTestSuite) TestRequestAssignPreconditions() {
	_, err := suite.cache.RequestAssign(suite.ctx, "Media1", models.MediaRef(3), "")
	suite.ErrorIs(err, apperrors.ErrNoEpisode)

	suite.cache.Reset(7)
	_, err = suite.cache.RequestAssign(suite.ctx, "", models.MediaRef(3), "")
	suite.ErrorIs(err, apperrors.ErrNoSourceSelected)

	_, err = suite.cache.RequestAssign(suite.ctx, "Media1", models.EntityRef{Kind: models.KindMedia}, "")
	suite.True(apperrors.IsValidation(err))

	_, err = suite.cache.RequestAssign(suite.ctx, "Media1", models.EntityRef{Kind: "lamp"}, "")
	suite.True(apperrors.IsValidation(err))
}

func (suite *AssignmentCacheTestSuite) TestRequestAssignDisableCamera() {
	suite.seed(7, map[string]models.AssignmentRecord{
		"Cam1": {Type: "camera", ButtonText: "Wide", CameraTypeID: int64Ptr(2)},
	})
	suite.mockAPI.EXPECT().Assign(gomock.Any(), int64(7), "Cam1", models.DisableCamera()).Return(nil)

	a, err := suite.cache.RequestAssign(suite.ctx, "Cam1", models.DisableCamera(), "")

	suite.Require().NoError(err)
	suite.True(a.Disabled)
	suite.Equal("Cam1", suite.cache.Label("Cam1"))

	// the freed camera type can now be taken elsewhere
	_, held := suite.cache.HolderOf(models.CameraTypeRef(2))
	suite.False(held)
}

func (suite *AssignmentCacheTestSuite) TestHolderOfPersonTypes() {
	suite.seed(7, map[string]models.AssignmentRecord{
		"Mic1": {Type: "staff", ButtonText: "Anna", StaffID: int64Ptr(5)},
	})

	holder, held := suite.cache.HolderOf(models.PersonRef(5, models.PersonStaff))
	suite.True(held)
	suite.Equal("Mic1", holder)

	_, held = suite.cache.HolderOf(models.PersonRef(5, models.PersonGuest))
	suite.False(held)
}

func TestAssignmentCacheTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentCacheTestSuite))
}
