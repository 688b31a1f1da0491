package service_test

import (
	"testing"
	"time"

	"github.com/Matias222/d-melo/internal/database/models"
	apperrors "github.com/Matias222/d-melo/internal/errors"
	"github.com/Matias222/d-melo/internal/mocks"
	"github.com/Matias222/d-melo/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockUserRepositoryInterface
	userService *service.UserService
	validator   *validator.Validate
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.userService = service.NewUserService(suite.mockRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestValidateOrCreateNewUser tests first-contact registration
func (suite *UserServiceTestSuite) TestValidateOrCreateNewUser() {
	req := &service.ValidateOrCreateRequest{
		Email:       "octocat@example.com",
		DisplayName: "The Octocat",
	}

	suite.mockRepo.EXPECT().
		GetByHandle("octocat").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.Equal(suite.T(), "octocat", user.Handle)
			assert.True(suite.T(), user.IsActive)
			return nil
		}).
		Times(1)

	response, err := suite.userService.ValidateOrCreate("octocat", req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "octocat", response.Handle)
	assert.Equal(suite.T(), req.Email, response.Email)
	assert.False(suite.T(), response.Existed)
}

// TestValidateOrCreateExistingUser tests that repeated calls resolve the
// existing record and report it as pre-existing
func (suite *UserServiceTestSuite) TestValidateOrCreateExistingUser() {
	existing := &models.User{
		Handle:      "octocat",
		Email:       "old@example.com",
		DisplayName: "The Octocat",
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	suite.mockRepo.EXPECT().
		GetByHandle("octocat").
		Return(existing, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.Equal(suite.T(), "new@example.com", user.Email)
			return nil
		}).
		Times(1)

	response, err := suite.userService.ValidateOrCreate("octocat", &service.ValidateOrCreateRequest{
		Email: "new@example.com",
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.Existed)
	assert.Equal(suite.T(), "new@example.com", response.Email)
}

// TestValidateOrCreateEmptyFieldsKept tests that empty request fields never
// null out stored profile data
func (suite *UserServiceTestSuite) TestValidateOrCreateEmptyFieldsKept() {
	existing := &models.User{
		Handle:      "octocat",
		Email:       "octocat@example.com",
		DisplayName: "The Octocat",
		IsActive:    true,
	}

	suite.mockRepo.EXPECT().
		GetByHandle("octocat").
		Return(existing, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.Equal(suite.T(), "octocat@example.com", user.Email)
			assert.Equal(suite.T(), "The Octocat", user.DisplayName)
			return nil
		}).
		Times(1)

	response, err := suite.userService.ValidateOrCreate("octocat", &service.ValidateOrCreateRequest{})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.Existed)
	assert.Equal(suite.T(), "octocat@example.com", response.Email)
}

// TestValidateOrCreateInsertRace tests that losing the insert race to a
// concurrent first authentication resolves as the existing-user path
func (suite *UserServiceTestSuite) TestValidateOrCreateInsertRace() {
	winner := &models.User{
		Handle:   "octocat",
		IsActive: true,
	}

	gomock.InOrder(
		suite.mockRepo.EXPECT().
			GetByHandle("octocat").
			Return(nil, gorm.ErrRecordNotFound),
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			Return(gorm.ErrDuplicatedKey),
		suite.mockRepo.EXPECT().
			GetByHandle("octocat").
			Return(winner, nil),
		suite.mockRepo.EXPECT().
			Update(gomock.Any()).
			Return(nil),
	)

	response, err := suite.userService.ValidateOrCreate("octocat", &service.ValidateOrCreateRequest{})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.Existed)
}

// TestValidateOrCreateInvalidEmail tests email validation
func (suite *UserServiceTestSuite) TestValidateOrCreateInvalidEmail() {
	response, err := suite.userService.ValidateOrCreate("octocat", &service.ValidateOrCreateRequest{
		Email: "not-an-email",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "Email")
}

// TestGetByHandle tests retrieving a user
func (suite *UserServiceTestSuite) TestGetByHandle() {
	user := &models.User{
		Handle:      "octocat",
		Email:       "octocat@example.com",
		DisplayName: "The Octocat",
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	suite.mockRepo.EXPECT().
		GetByHandle("octocat").
		Return(user, nil).
		Times(1)

	response, err := suite.userService.GetByHandle("octocat")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "octocat", response.Handle)
	assert.Equal(suite.T(), "octocat@example.com", response.Email)
}

// TestGetByHandleNotFound tests retrieving an unknown handle
func (suite *UserServiceTestSuite) TestGetByHandleNotFound() {
	suite.mockRepo.EXPECT().
		GetByHandle("ghost").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.userService.GetByHandle("ghost")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
