//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"wallet-console/internal/handler/api"
	resdto "wallet-console/internal/handler/dto/response"
	"wallet-console/internal/pkg/config"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/pkg/jwt"
	"wallet-console/internal/usecase/commands"
	"wallet-console/internal/usecase/queries"
	"wallet-console/tests/common/builder"
	"wallet-console/tests/common/httptest"
	"wallet-console/tests/common/testutil"
	commandsmock "wallet-console/tests/mock/commands"
	queriesmock "wallet-console/tests/mock/queries"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockProfileQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProfileQueries(s.mockCtrl)
	jwtSvc := jwt.NewService("test-secret-key-for-unit-tests", 15*time.Minute, 168*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtSvc, config.NewTestConfig().Cookie)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// stand-in for the auth middleware
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildLoginDTO()
	returnView := builder.NewProfileBuilder().BuildView()
	pair := &commands.TokenPair{AccessToken: "test-jwt-token", RefreshToken: "test-refresh-token"}

	s.Run("success: 200 with profile and session cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(&commands.LoginResult{ProfileID: returnView.ID, TokenPair: pair}, nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentProfile(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.Email, response.Profile.Email)
		s.Equal("test-jwt-token", response.AccessToken)
		s.NotNil(httptest.ExtractCookie(rec, "access_token"))
		s.NotNil(httptest.ExtractCookie(rec, "refresh_token"))
	})

	s.Run("error: 401 hides whether the account exists", func() {
		for _, commandErr := range []error{commands.ErrInvalidCredentials, commands.ErrProfileNotFound} {
			s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
				Return(nil, commandErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
		}
	})

	s.Run("error: 403 for an inactive account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(nil, commands.ErrProfileInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Account is inactive")
	})

	s.Run("error: 400 on malformed body", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "not-an-email"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 when credentials fail shape validation", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(nil, commands.ErrAuthenticationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid email or password format")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()
	returnView := builder.NewProfileBuilder().WithEmail(reqBody.Email).BuildView()
	pair := &commands.TokenPair{AccessToken: "test-jwt-token", RefreshToken: "test-refresh-token"}

	s.Run("success: 201 with the created enterprise-owner profile", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), reqBody.Email, reqBody.Password, reqBody.FullName, reqBody.CompanyName).
			Return(&commands.LoginResult{ProfileID: returnView.ID, TokenPair: pair}, nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentProfile(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("ENTERPRISE", response.Profile.Role)
	})

	s.Run("error: 409 on duplicate email", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), reqBody.Email, reqBody.Password, reqBody.FullName, reqBody.CompanyName).
			Return(nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email is already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	url := "/auth/logout"

	s.Run("success: 204 and cookies cleared", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), "some-refresh-token").Return(nil).Times(1)

		body := map[string]any{"refresh_token": "some-refresh-token"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusNoContent, rec.Code)
		access := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(access)
		s.Less(access.MaxAge, 0, "access cookie must be expired")
	})

	s.Run("success: local sign-out wins even when revocation fails", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), "some-refresh-token").
			Return(errs.New("redis down")).Times(1)

		body := map[string]any{"refresh_token": "some-refresh-token"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusNoContent, rec.Code)
		access := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(access)
		s.Less(access.MaxAge, 0)
	})

	s.Run("success: 204 with no token at all", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: 200 with the caller's profile", func() {
		view := builder.NewProfileBuilder().BuildView()
		s.mockQueries.EXPECT().GetCurrentProfile(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Email, response.Email)
	})

	s.Run("error: 401 without an identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 when the profile record is gone", func() {
		s.mockQueries.EXPECT().GetCurrentProfile(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrProfileNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Profile not found")
	})
}
