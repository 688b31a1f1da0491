package repository

import (
	"errors"
	"testing"

	"github.com/Matias222/d-melo/internal/database/models"
	"github.com/Matias222/d-melo/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamSessionRepositoryTestSuite tests the TeamSessionRepository
type TeamSessionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamSessionRepository
	teamRepo      *TeamRepository
	sessionRepo   *SessionRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamSessionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamSessionRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.sessionRepo = NewSessionRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamSessionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamSessionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamSessionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamSessionRepositoryTestSuite) fixtures() (*models.Team, *models.Session) {
	suite.NoError(suite.userRepo.Create(suite.factories.User.WithHandle("octocat")))
	team := suite.factories.Team.WithOwner("octocat")
	suite.NoError(suite.teamRepo.CreateWithOwner(team))
	session := suite.factories.Session.WithOwner("octocat")
	suite.NoError(suite.sessionRepo.Create(session))
	return team, session
}

// TestCreate tests inserting a share row
func (suite *TeamSessionRepositoryTestSuite) TestCreate() {
	team, session := suite.fixtures()

	share := suite.factories.TeamSession.Create(team.ID, session.ID)
	err := suite.repo.Create(share)

	suite.NoError(err)
}

// TestCreateDuplicate tests the (team, session) unique index
func (suite *TeamSessionRepositoryTestSuite) TestCreateDuplicate() {
	team, session := suite.fixtures()

	first := suite.factories.TeamSession.Create(team.ID, session.ID)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.TeamSession.Create(team.ID, session.ID)
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

// TestGetByTeamAndSession tests looking up a share
func (suite *TeamSessionRepositoryTestSuite) TestGetByTeamAndSession() {
	team, session := suite.fixtures()

	share := suite.factories.TeamSession.Create(team.ID, session.ID)
	suite.NoError(suite.repo.Create(share))

	found, err := suite.repo.GetByTeamAndSession(team.ID, session.ID)

	suite.NoError(err)
	suite.Equal(share.ID, found.ID)
}

// TestListByTeam tests loading shares with nested session and owner detail
func (suite *TeamSessionRepositoryTestSuite) TestListByTeam() {
	team, session := suite.fixtures()

	share := suite.factories.TeamSession.Create(team.ID, session.ID)
	suite.NoError(suite.repo.Create(share))

	shares, err := suite.repo.ListByTeam(team.ID)

	suite.NoError(err)
	suite.Len(shares, 1)
	suite.Equal(session.Title, shares[0].Session.Title)
	suite.Equal("octocat", shares[0].Session.Owner.Handle)
}

// TestDelete tests removing a share without touching team or session
func (suite *TeamSessionRepositoryTestSuite) TestDelete() {
	team, session := suite.fixtures()

	share := suite.factories.TeamSession.Create(team.ID, session.ID)
	suite.NoError(suite.repo.Create(share))

	suite.NoError(suite.repo.Delete(share.ID))

	_, err := suite.repo.GetByTeamAndSession(team.ID, session.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))

	_, err = suite.sessionRepo.GetByID(session.ID)
	suite.NoError(err)
	_, err = suite.teamRepo.GetByID(team.ID)
	suite.NoError(err)
}

// TestTeamSessionRepositoryTestSuite runs the test suite
func TestTeamSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamSessionRepositoryTestSuite))
}
