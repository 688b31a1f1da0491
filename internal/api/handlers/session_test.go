package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Matias222/d-melo/internal/api/handlers"
	apperrors "github.com/Matias222/d-melo/internal/errors"
	"github.com/Matias222/d-melo/internal/mocks"
	"github.com/Matias222/d-melo/internal/service"
	"github.com/Matias222/d-melo/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SessionHandlerTestSuite defines the test suite for SessionHandler
type SessionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSessionServiceInterface
	handler     *handlers.SessionHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SessionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSessionServiceInterface(suite.ctrl)

	suite.handler = handlers.NewSessionHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	fenix := suite.httpSuite.Router.Group("/fenix", withHandle("octocat"))
	fenix.POST("/sessions", suite.handler.CreateSession)
	fenix.GET("/sessions", suite.handler.ListSessions)
	fenix.GET("/sessions/by-repo", suite.handler.ListSessionsByRepo)
	fenix.GET("/sessions/:id", suite.handler.GetSession)
	fenix.PATCH("/sessions/:id", suite.handler.UpdateSession)
	fenix.DELETE("/sessions/:id", suite.handler.DeleteSession)
}

// TearDownTest cleans up after each test
func (suite *SessionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSession tests exporting a session
func (suite *SessionHandlerTestSuite) TestCreateSession() {
	expected := &service.SessionResponse{
		ID:            uuid.New(),
		Title:         "Debugging payment flow",
		AssistantType: "claude-code",
		Owner:         service.UserResponse{Handle: "octocat"},
		ReportURL:     "https://reports.example.com/abc.html",
	}

	suite.mockService.EXPECT().
		Create(gomock.Any(), "octocat", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, req *service.CreateSessionRequest) (*service.SessionResponse, error) {
			assert.Equal(suite.T(), "Debugging payment flow", req.Title)
			assert.Equal(suite.T(), "{\"messages\":[]}", req.SessionData)
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/fenix/sessions", map[string]interface{}{
		"title":        "Debugging payment flow",
		"session_data": "{\"messages\":[]}",
	})

	var response service.SessionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), expected.ID, response.ID)
	assert.Equal(suite.T(), "https://reports.example.com/abc.html", response.ReportURL)
}

// TestCreateSessionValidationError tests exporting without required fields
func (suite *SessionHandlerTestSuite) TestCreateSessionValidationError() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), "octocat", gomock.Any()).
		Return(nil, apperrors.ErrRepoRequired).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/fenix/sessions", map[string]interface{}{
		"title": "no body",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateSessionMissingTitle tests that a failed struct validation in the
// real service surfaces as 400, not 500
func (suite *SessionHandlerTestSuite) TestCreateSessionMissingTitle() {
	real := handlers.NewSessionHandler(service.NewSessionService(
		mocks.NewMockSessionRepositoryInterface(suite.ctrl),
		mocks.NewMockUserRepositoryInterface(suite.ctrl),
		nil,
		validator.New(),
	))
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.POST("/fenix/sessions", withHandle("octocat"), real.CreateSession)

	recorder := httpSuite.MakeRequest(http.MethodPost, "/fenix/sessions", map[string]interface{}{
		"session_data": "<html></html>",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation error")
}

// TestCreateSessionUnknownOwner tests exporting for a handle without a user row
func (suite *SessionHandlerTestSuite) TestCreateSessionUnknownOwner() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), "octocat", gomock.Any()).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/fenix/sessions", map[string]interface{}{
		"title":        "orphan",
		"session_data": "{}",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestListSessions tests listing the actor's sessions
func (suite *SessionHandlerTestSuite) TestListSessions() {
	expected := []service.SessionResponse{
		{ID: uuid.New(), Title: "one"},
		{ID: uuid.New(), Title: "two"},
	}

	suite.mockService.EXPECT().
		List("octocat", "").
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/sessions", nil)

	var response []service.SessionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 2)
}

// TestListSessionsWithFilter tests passing the assistant_type query filter through
func (suite *SessionHandlerTestSuite) TestListSessionsWithFilter() {
	suite.mockService.EXPECT().
		List("octocat", "claude-code").
		Return([]service.SessionResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/sessions?assistant_type=claude-code", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestListSessionsByRepo tests the repository-scoped discovery endpoint
func (suite *SessionHandlerTestSuite) TestListSessionsByRepo() {
	expected := []service.SessionResponse{
		{ID: uuid.New(), Title: "shared", Repo: "payments-service"},
	}

	suite.mockService.EXPECT().
		ListByRepo("octocat", "payments-service").
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/sessions/by-repo?repo=payments-service", nil)

	var response []service.SessionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "payments-service", response[0].Repo)
}

// TestListSessionsByRepoMissingRepo tests the endpoint without the repo parameter
func (suite *SessionHandlerTestSuite) TestListSessionsByRepoMissingRepo() {
	suite.mockService.EXPECT().
		ListByRepo("octocat", "").
		Return(nil, apperrors.ErrRepoRequired).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/sessions/by-repo", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "repo parameter is required")
}

// TestGetSession tests retrieving a session with its full body
func (suite *SessionHandlerTestSuite) TestGetSession() {
	sessionID := uuid.New()
	expected := &service.SessionDetailResponse{
		SessionResponse: service.SessionResponse{ID: sessionID, Title: "full"},
		SessionData:     "{\"messages\":[]}",
	}

	suite.mockService.EXPECT().
		Get("octocat", sessionID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/sessions/"+sessionID.String(), nil)

	var response service.SessionDetailResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "{\"messages\":[]}", response.SessionData)
}

// TestGetSessionInvalidID tests retrieval with a malformed UUID
func (suite *SessionHandlerTestSuite) TestGetSessionInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/sessions/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid session ID")
}

// TestGetSessionAccessDenied tests retrieving someone else's private session
func (suite *SessionHandlerTestSuite) TestGetSessionAccessDenied() {
	sessionID := uuid.New()

	suite.mockService.EXPECT().
		Get("octocat", sessionID).
		Return(nil, apperrors.ErrSessionAccessDenied).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/sessions/"+sessionID.String(), nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestGetSessionNotFound tests retrieving a non-existent session
func (suite *SessionHandlerTestSuite) TestGetSessionNotFound() {
	sessionID := uuid.New()

	suite.mockService.EXPECT().
		Get("octocat", sessionID).
		Return(nil, apperrors.ErrSessionNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fenix/sessions/"+sessionID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "session not found")
}

// TestUpdateSession tests a partial metadata update
func (suite *SessionHandlerTestSuite) TestUpdateSession() {
	sessionID := uuid.New()
	expected := &service.SessionResponse{ID: sessionID, Title: "renamed"}

	suite.mockService.EXPECT().
		Update("octocat", sessionID, gomock.Any()).
		DoAndReturn(func(_ string, _ uuid.UUID, req *service.UpdateSessionRequest) (*service.SessionResponse, error) {
			assert.NotNil(suite.T(), req.Title)
			assert.Equal(suite.T(), "renamed", *req.Title)
			assert.Nil(suite.T(), req.Description)
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/fenix/sessions/"+sessionID.String(), map[string]interface{}{
		"title": "renamed",
	})

	var response service.SessionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "renamed", response.Title)
}

// TestUpdateSessionNotOwner tests that non-owners cannot update
func (suite *SessionHandlerTestSuite) TestUpdateSessionNotOwner() {
	sessionID := uuid.New()

	suite.mockService.EXPECT().
		Update("octocat", sessionID, gomock.Any()).
		Return(nil, apperrors.ErrNotSessionOwner).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/fenix/sessions/"+sessionID.String(), map[string]interface{}{
		"title": "hijack",
	})

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestDeleteSession tests deleting an owned session
func (suite *SessionHandlerTestSuite) TestDeleteSession() {
	sessionID := uuid.New()

	suite.mockService.EXPECT().
		Delete("octocat", sessionID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/fenix/sessions/"+sessionID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteSessionNotOwner tests that non-owners cannot delete
func (suite *SessionHandlerTestSuite) TestDeleteSessionNotOwner() {
	sessionID := uuid.New()

	suite.mockService.EXPECT().
		Delete("octocat", sessionID).
		Return(apperrors.ErrNotSessionOwner).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/fenix/sessions/"+sessionID.String(), nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestSessionHandlerTestSuite runs the test suite
func TestSessionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}
