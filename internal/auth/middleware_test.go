package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Matias222/d-melo/internal/auth"
	"github.com/Matias222/d-melo/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// AuthMiddlewareTestSuite defines the test suite for the auth middleware
type AuthMiddlewareTestSuite struct {
	suite.Suite
	service *auth.AuthService
	router  *gin.Engine
}

// SetupTest sets up the test suite
func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.service = auth.NewAuthService(&auth.AuthConfig{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 60,
	})

	middleware := auth.NewAuthMiddleware(suite.service, "shared-key")

	suite.router = gin.New()
	suite.router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		handle, _ := auth.HandleFromContext(c)
		c.JSON(http.StatusOK, gin.H{"handle": handle})
	})
}

func (suite *AuthMiddlewareTestSuite) makeRequest(headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// TestSharedKeyAuth tests the service-to-service header pair
func (suite *AuthMiddlewareTestSuite) TestSharedKeyAuth() {
	recorder := suite.makeRequest(testutils.AuthHeaders("shared-key", "octocat"))

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "octocat")
}

// TestSharedKeyWrongKey tests rejection of a mismatched API key
func (suite *AuthMiddlewareTestSuite) TestSharedKeyWrongKey() {
	recorder := suite.makeRequest(testutils.AuthHeaders("wrong-key", "octocat"))

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestSharedKeyMissingHandle tests rejection when the handle header is absent
func (suite *AuthMiddlewareTestSuite) TestSharedKeyMissingHandle() {
	recorder := suite.makeRequest(map[string]string{
		auth.APIKeyHeader: "shared-key",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestSharedKeyNotConfigured tests that an empty configured key always rejects
func (suite *AuthMiddlewareTestSuite) TestSharedKeyNotConfigured() {
	middleware := auth.NewAuthMiddleware(suite.service, "")
	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(auth.APIKeyHeader, "anything")
	req.Header.Set(auth.HandleHeader, "octocat")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestNoCredentials tests rejection of a request without any auth headers
func (suite *AuthMiddlewareTestSuite) TestNoCredentials() {
	recorder := suite.makeRequest(nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestBearerJWT tests authentication with a freshly minted token
func (suite *AuthMiddlewareTestSuite) TestBearerJWT() {
	token, err := suite.service.GenerateJWT(&auth.UserProfile{Login: "monalisa"}, time.Hour)
	assert.NoError(suite.T(), err)

	recorder := suite.makeRequest(map[string]string{
		"Authorization": "Bearer " + token,
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "monalisa")
}

// TestBearerJWTExpired tests rejection of an expired token
func (suite *AuthMiddlewareTestSuite) TestBearerJWTExpired() {
	token, err := suite.service.GenerateJWT(&auth.UserProfile{Login: "monalisa"}, -time.Minute)
	assert.NoError(suite.T(), err)

	recorder := suite.makeRequest(map[string]string{
		"Authorization": "Bearer " + token,
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestBearerJWTGarbage tests rejection of an unparseable token
func (suite *AuthMiddlewareTestSuite) TestBearerJWTGarbage() {
	recorder := suite.makeRequest(map[string]string{
		"Authorization": "Bearer not-a-token",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestAuthorizationWithoutBearerPrefix tests rejection of a bare token value
func (suite *AuthMiddlewareTestSuite) TestAuthorizationWithoutBearerPrefix() {
	recorder := suite.makeRequest(map[string]string{
		"Authorization": "Basic dXNlcjpwYXNz",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestHandleFromContext tests handle extraction outside the request flow
func (suite *AuthMiddlewareTestSuite) TestHandleFromContext() {
	c, _ := testutils.CreateTestGinContext()

	handle, ok := auth.HandleFromContext(c)
	assert.False(suite.T(), ok)
	assert.Empty(suite.T(), handle)

	c.Set("handle", "")
	_, ok = auth.HandleFromContext(c)
	assert.False(suite.T(), ok)

	c.Set("handle", "octocat")
	handle, ok = auth.HandleFromContext(c)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "octocat", handle)
}

// TestAuthMiddlewareTestSuite runs the test suite
func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

// AuthServiceTestSuite defines the test suite for JWT issue and validation
type AuthServiceTestSuite struct {
	suite.Suite
	service *auth.AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.service = auth.NewAuthService(&auth.AuthConfig{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 60,
	})
}

// TestGenerateAndValidateJWT tests a token round-trip
func (suite *AuthServiceTestSuite) TestGenerateAndValidateJWT() {
	token, err := suite.service.GenerateJWT(&auth.UserProfile{Login: "octocat", Email: "octocat@example.com"}, time.Hour)
	assert.NoError(suite.T(), err)

	claims, err := suite.service.ValidateJWT(token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "octocat", claims.Handle)
	assert.Equal(suite.T(), "octocat@example.com", claims.Email)
	assert.Equal(suite.T(), "damelo", claims.Issuer)
}

// TestValidateJWTWrongSecret tests that a token signed elsewhere is rejected
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	other := auth.NewAuthService(&auth.AuthConfig{JWTSecret: "other-secret"})
	token, err := other.GenerateJWT(&auth.UserProfile{Login: "octocat"}, time.Hour)
	assert.NoError(suite.T(), err)

	_, err = suite.service.ValidateJWT(token)
	assert.Error(suite.T(), err)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
