package service_test

import (
	"testing"
	"time"

	"github.com/Matias222/d-melo/internal/database/models"
	apperrors "github.com/Matias222/d-melo/internal/errors"
	"github.com/Matias222/d-melo/internal/mocks"
	"github.com/Matias222/d-melo/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	teamService        *service.TeamService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.teamService = service.NewTeamService(suite.mockTeamRepo, suite.mockMembershipRepo, suite.mockUserRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) testUser(handle string) *models.User {
	return &models.User{
		Handle:    handle,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

func (suite *TeamServiceTestSuite) testTeam(id uuid.UUID, owner string) *models.Team {
	return &models.Team{
		BaseModel:   models.BaseModel{ID: id, CreatedAt: time.Now()},
		Name:        "platform",
		OwnerHandle: owner,
		Owner:       *suite.testUser(owner),
	}
}

// TestCreateTeam tests creating a team
func (suite *TeamServiceTestSuite) TestCreateTeam() {
	req := &service.CreateTeamRequest{
		Name:        "platform",
		Description: "Platform engineering",
	}

	suite.mockUserRepo.EXPECT().
		GetByHandle("octocat").
		Return(suite.testUser("octocat"), nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		CreateWithOwner(gomock.Any()).
		DoAndReturn(func(team *models.Team) error {
			assert.Equal(suite.T(), "octocat", team.OwnerHandle)
			team.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.teamService.Create("octocat", req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), "octocat", response.Owner.Handle)
}

// TestCreateTeamValidationError tests creating a team with an empty name
func (suite *TeamServiceTestSuite) TestCreateTeamValidationError() {
	response, err := suite.teamService.Create("octocat", &service.CreateTeamRequest{Name: ""})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateTeamUnknownActor tests creating a team for an unregistered actor
func (suite *TeamServiceTestSuite) TestCreateTeamUnknownActor() {
	suite.mockUserRepo.EXPECT().
		GetByHandle("ghost").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.teamService.Create("ghost", &service.CreateTeamRequest{Name: "platform"})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestGetTeamAsMember tests that any member can view the roster
func (suite *TeamServiceTestSuite) TestGetTeamAsMember() {
	teamID := uuid.New()
	team := suite.testTeam(teamID, "octocat")
	team.Memberships = []models.TeamMembership{
		{ID: uuid.New(), TeamID: teamID, UserHandle: "octocat", Role: models.TeamRoleOwner, User: *suite.testUser("octocat")},
		{ID: uuid.New(), TeamID: teamID, UserHandle: "hubber", Role: models.TeamRoleMember, User: *suite.testUser("hubber")},
	}

	suite.mockTeamRepo.EXPECT().
		GetWithMembers(teamID).
		Return(team, nil).
		Times(1)

	response, err := suite.teamService.Get("hubber", teamID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Members, 2)
	assert.Equal(suite.T(), models.TeamRoleOwner, response.Members[0].Role)
}

// TestGetTeamNotMember tests that non-members cannot view the roster
func (suite *TeamServiceTestSuite) TestGetTeamNotMember() {
	teamID := uuid.New()
	team := suite.testTeam(teamID, "octocat")
	team.Memberships = []models.TeamMembership{
		{ID: uuid.New(), TeamID: teamID, UserHandle: "octocat", Role: models.TeamRoleOwner, User: *suite.testUser("octocat")},
	}

	suite.mockTeamRepo.EXPECT().
		GetWithMembers(teamID).
		Return(team, nil).
		Times(1)

	response, err := suite.teamService.Get("outsider", teamID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsForbidden(err))
}

// TestGetTeamNotFound tests viewing an unknown team
func (suite *TeamServiceTestSuite) TestGetTeamNotFound() {
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetWithMembers(teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.teamService.Get("octocat", teamID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestAddMember tests adding a member as the team owner
func (suite *TeamServiceTestSuite) TestAddMember() {
	teamID := uuid.New()
	req := &service.AddMemberRequest{Handle: "hubber", Role: models.TeamRoleAdmin}

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(suite.testTeam(teamID, "octocat"), nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "octocat").
		Return(&models.TeamMembership{TeamID: teamID, UserHandle: "octocat", Role: models.TeamRoleOwner}, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByHandle("hubber").
		Return(suite.testUser("hubber"), nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "hubber").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.TeamMembership) error {
			m.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.teamService.AddMember("octocat", teamID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TeamRoleAdmin, response.Role)
	assert.Equal(suite.T(), "hubber", response.User.Handle)
}

// TestAddMemberAsPlainMember tests that plain members cannot manage the roster
func (suite *TeamServiceTestSuite) TestAddMemberAsPlainMember() {
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(suite.testTeam(teamID, "octocat"), nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "monalisa").
		Return(&models.TeamMembership{TeamID: teamID, UserHandle: "monalisa", Role: models.TeamRoleMember}, nil).
		Times(1)

	response, err := suite.teamService.AddMember("monalisa", teamID, &service.AddMemberRequest{
		Handle: "hubber",
		Role:   models.TeamRoleMember,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsForbidden(err))
}

// TestAddMemberOwnerRoleRejected tests that the owner role cannot be granted
// through member management
func (suite *TeamServiceTestSuite) TestAddMemberOwnerRoleRejected() {
	teamID := uuid.New()

	response, err := suite.teamService.AddMember("octocat", teamID, &service.AddMemberRequest{
		Handle: "hubber",
		Role:   models.TeamRoleOwner,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestAddMemberDuplicate tests adding a user who already holds a membership
func (suite *TeamServiceTestSuite) TestAddMemberDuplicate() {
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(suite.testTeam(teamID, "octocat"), nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "octocat").
		Return(&models.TeamMembership{TeamID: teamID, UserHandle: "octocat", Role: models.TeamRoleOwner}, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByHandle("hubber").
		Return(suite.testUser("hubber"), nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "hubber").
		Return(&models.TeamMembership{TeamID: teamID, UserHandle: "hubber", Role: models.TeamRoleMember}, nil).
		Times(1)

	response, err := suite.teamService.AddMember("octocat", teamID, &service.AddMemberRequest{
		Handle: "hubber",
		Role:   models.TeamRoleMember,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestAddMemberDuplicateRace tests that losing the unique index race is
// surfaced as the same conflict as the sequential check
func (suite *TeamServiceTestSuite) TestAddMemberDuplicateRace() {
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(suite.testTeam(teamID, "octocat"), nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "octocat").
		Return(&models.TeamMembership{TeamID: teamID, UserHandle: "octocat", Role: models.TeamRoleOwner}, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByHandle("hubber").
		Return(suite.testUser("hubber"), nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "hubber").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		Create(gomock.Any()).
		Return(gorm.ErrDuplicatedKey).
		Times(1)

	response, err := suite.teamService.AddMember("octocat", teamID, &service.AddMemberRequest{
		Handle: "hubber",
		Role:   models.TeamRoleMember,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestAddMemberUnknownUser tests adding a user who has never authenticated
func (suite *TeamServiceTestSuite) TestAddMemberUnknownUser() {
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(suite.testTeam(teamID, "octocat"), nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "octocat").
		Return(&models.TeamMembership{TeamID: teamID, UserHandle: "octocat", Role: models.TeamRoleOwner}, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByHandle("ghost").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.teamService.AddMember("octocat", teamID, &service.AddMemberRequest{
		Handle: "ghost",
		Role:   models.TeamRoleMember,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestRemoveMember tests removing a plain member as an admin
func (suite *TeamServiceTestSuite) TestRemoveMember() {
	teamID := uuid.New()
	membershipID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(suite.testTeam(teamID, "octocat"), nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "hubber").
		Return(&models.TeamMembership{ID: uuid.New(), TeamID: teamID, UserHandle: "hubber", Role: models.TeamRoleAdmin}, nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "monalisa").
		Return(&models.TeamMembership{ID: membershipID, TeamID: teamID, UserHandle: "monalisa", Role: models.TeamRoleMember}, nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		Delete(membershipID).
		Return(nil).
		Times(1)

	err := suite.teamService.RemoveMember("hubber", teamID, "monalisa")

	assert.NoError(suite.T(), err)
}

// TestRemoveOwnerForbidden tests that the owner membership can never be
// removed, even by the owner themselves
func (suite *TeamServiceTestSuite) TestRemoveOwnerForbidden() {
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(suite.testTeam(teamID, "octocat"), nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "octocat").
		Return(&models.TeamMembership{ID: uuid.New(), TeamID: teamID, UserHandle: "octocat", Role: models.TeamRoleOwner}, nil).
		Times(2)

	err := suite.teamService.RemoveMember("octocat", teamID, "octocat")

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsForbidden(err))
	assert.Contains(suite.T(), err.Error(), "cannot remove team owner")
}

// TestRemoveMemberNotFound tests removing someone who is not on the roster
func (suite *TeamServiceTestSuite) TestRemoveMemberNotFound() {
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(suite.testTeam(teamID, "octocat"), nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "octocat").
		Return(&models.TeamMembership{ID: uuid.New(), TeamID: teamID, UserHandle: "octocat", Role: models.TeamRoleOwner}, nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByTeamAndUser(teamID, "outsider").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.teamService.RemoveMember("octocat", teamID, "outsider")

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
