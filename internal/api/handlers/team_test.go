package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Matias222/d-melo/internal/api/handlers"
	apperrors "github.com/Matias222/d-melo/internal/errors"
	"github.com/Matias222/d-melo/internal/database/models"
	"github.com/Matias222/d-melo/internal/mocks"
	"github.com/Matias222/d-melo/internal/service"
	"github.com/Matias222/d-melo/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)

	suite.handler = handlers.NewTeamHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	fenix := suite.httpSuite.Router.Group("/fenix", withHandle("octocat"))
	fenix.POST("/teams", suite.handler.CreateTeam)
	fenix.GET("/teams", suite.handler.ListTeams)
	fenix.GET("/teams/:id", suite.handler.GetTeam)
	fenix.POST("/teams/:id/members", suite.handler.AddMember)
	fenix.DELETE("/teams/:id/members/:handle", suite.handler.RemoveMember)
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests creating a team
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	expected := &service.TeamResponse{
		ID:    uuid.New(),
		Name:  "platform",
		Owner: service.UserResponse{Handle: "octocat"},
	}

	suite.mockService.EXPECT().
		Create("octocat", &service.CreateTeamRequest{Name: "platform", Description: "Platform team"}).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/fenix/teams", map[string]interface{}{
		"name":        "platform",
		"description": "Platform team",
	})

	var response service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "platform", response.Name)
	assert.Equal(suite.T(), "octocat", response.Owner.Handle)
}

// TestCreateTeamInvalidBody tests creating a team with malformed JSON
func (suite *TeamHandlerTestSuite) TestCreateTeamInvalidBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/fenix/teams", "not json")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateTeamValidationError tests creating a team with an empty name
func (suite *TeamHandlerTestSuite) TestCreateTeamValidationError() {
	suite.mockService.EXPECT().
		Create("octocat", gomock.Any()).
		Return(nil, &apperrors.ValidationError{Field: "Name", Message: "failed on the 'required' rule"}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/fenix/teams", map[string]interface{}{
		"name": "",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation error")
}

// TestCreateTeamUnknownActor tests creating a team for a handle without a user row
func (suite *TeamHandlerTestSuite) TestCreateTeamUnknownActor() {
	suite.mockService.EXPECT().
		Create("octocat", gomock.Any()).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/fenix/teams", map[string]interface{}{
		"name": "platform",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestListTeams tests listing the actor's teams
func (suite *TeamHandlerTestSuite) TestListTeams() {
	expected := []service.TeamResponse{
		{ID: uuid.New(), Name: "platform"},
		{ID: uuid.New(), Name: "frontend"},
	}

	suite.mockService.EXPECT().
		List("octocat").
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/teams", nil)

	var response []service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 2)
}

// TestGetTeam tests retrieving a team with its roster
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	teamID := uuid.New()
	expected := &service.TeamDetailResponse{
		TeamResponse: service.TeamResponse{ID: teamID, Name: "platform"},
		Members: []service.TeamMemberResponse{
			{ID: uuid.New(), User: service.UserResponse{Handle: "octocat"}, Role: models.TeamRoleOwner},
		},
	}

	suite.mockService.EXPECT().
		Get("octocat", teamID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/teams/"+teamID.String(), nil)

	var response service.TeamDetailResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Members, 1)
}

// TestGetTeamInvalidID tests retrieving a team with a malformed UUID
func (suite *TeamHandlerTestSuite) TestGetTeamInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/teams/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid team ID")
}

// TestGetTeamNotMember tests retrieving a team the actor does not belong to
func (suite *TeamHandlerTestSuite) TestGetTeamNotMember() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		Get("octocat", teamID).
		Return(nil, apperrors.ErrNotTeamMember).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/teams/"+teamID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not a member")
}

// TestGetTeamNotFound tests retrieving a non-existent team
func (suite *TeamHandlerTestSuite) TestGetTeamNotFound() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		Get("octocat", teamID).
		Return(nil, apperrors.ErrTeamNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/teams/"+teamID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

// TestAddMember tests adding a member to a team
func (suite *TeamHandlerTestSuite) TestAddMember() {
	teamID := uuid.New()
	expected := &service.TeamMemberResponse{
		ID:   uuid.New(),
		User: service.UserResponse{Handle: "hubber"},
		Role: models.TeamRoleMember,
	}

	suite.mockService.EXPECT().
		AddMember("octocat", teamID, &service.AddMemberRequest{Handle: "hubber", Role: models.TeamRoleMember}).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/fenix/teams/"+teamID.String()+"/members", map[string]interface{}{
		"github_handle": "hubber",
		"role":          "member",
	})

	var response service.TeamMemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "hubber", response.User.Handle)
	assert.Equal(suite.T(), models.TeamRoleMember, response.Role)
}

// TestAddMemberForbidden tests adding a member without manager rights
func (suite *TeamHandlerTestSuite) TestAddMemberForbidden() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		AddMember("octocat", teamID, gomock.Any()).
		Return(nil, apperrors.ErrNotTeamAdmin).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/fenix/teams/"+teamID.String()+"/members", map[string]interface{}{
		"github_handle": "hubber",
		"role":          "member",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "owners and admins")
}

// TestAddMemberDuplicate tests adding a handle that is already enrolled
func (suite *TeamHandlerTestSuite) TestAddMemberDuplicate() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		AddMember("octocat", teamID, gomock.Any()).
		Return(nil, apperrors.ErrMembershipExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/fenix/teams/"+teamID.String()+"/members", map[string]interface{}{
		"github_handle": "hubber",
		"role":          "member",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "membership already exists")
}

// TestAddMemberUnknownUser tests adding a handle that never authenticated
func (suite *TeamHandlerTestSuite) TestAddMemberUnknownUser() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		AddMember("octocat", teamID, gomock.Any()).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/fenix/teams/"+teamID.String()+"/members", map[string]interface{}{
		"github_handle": "ghost",
		"role":          "member",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestRemoveMember tests removing a member from a team
func (suite *TeamHandlerTestSuite) TestRemoveMember() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		RemoveMember("octocat", teamID, "hubber").
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/fenix/teams/"+teamID.String()+"/members/hubber", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestRemoveMemberInvalidTeamID tests removal with a malformed team UUID
func (suite *TeamHandlerTestSuite) TestRemoveMemberInvalidTeamID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/fenix/teams/not-a-uuid/members/hubber", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid team ID")
}

// TestRemoveOwnerForbidden tests that the team owner cannot be removed
func (suite *TeamHandlerTestSuite) TestRemoveOwnerForbidden() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		RemoveMember("octocat", teamID, "octocat").
		Return(apperrors.ErrCannotRemoveOwner).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/fenix/teams/"+teamID.String()+"/members/octocat", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "cannot remove team owner")
}

// TestRemoveMemberNotFound tests removing a handle that is not enrolled
func (suite *TeamHandlerTestSuite) TestRemoveMemberNotFound() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		RemoveMember("octocat", teamID, "ghost").
		Return(apperrors.ErrMembershipNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/fenix/teams/"+teamID.String()+"/members/ghost", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team membership not found")
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
