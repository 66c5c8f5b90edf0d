//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"wallet-console/internal/handler/api"
	resdto "wallet-console/internal/handler/dto/response"
	"wallet-console/tests/common/builder"
	"wallet-console/tests/common/httptest"
	queriesmock "wallet-console/tests/mock/queries"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockProfile *queriesmock.MockProfileQueries
	mockWallet  *queriesmock.MockWalletQueries
	userID      uuid.UUID
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockProfile = queriesmock.NewMockProfileQueries(s.mockCtrl)
	s.mockWallet = queriesmock.NewMockWalletQueries(s.mockCtrl)
	handler := api.NewDashboardHandler(s.mockProfile, s.mockWallet)
	wallet := api.NewWalletHandler(s.mockWallet)

	authed := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			h(c)
		}
	}

	s.router.GET("/admin/dashboard", authed(handler.Admin))
	s.router.GET("/enterprise/dashboard", authed(handler.Enterprise))
	s.router.GET("/support/dashboard", authed(handler.Support))
	s.router.GET("/user/dashboard", authed(handler.User))
	s.router.GET("/wallet/access", authed(wallet.Access))
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) TestDashboards() {
	cases := []struct {
		role string
		url  string
	}{
		{"admin", "/admin/dashboard"},
		{"enterprise", "/enterprise/dashboard"},
		{"support", "/support/dashboard"},
		{"user", "/user/dashboard"},
	}

	for _, tc := range cases {
		s.Run("renders the "+tc.role+" payload", func() {
			view := builder.NewProfileBuilder().BuildView()
			view.ID = s.userID
			s.mockProfile.EXPECT().GetCurrentProfile(gomock.Any(), s.userID).
				Return(view, nil).Times(1)
			s.mockWallet.EXPECT().HasWalletAccess(gomock.Any(), gomock.Any()).
				Return(true).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "some-token")

			var response resdto.DashboardResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
			s.Equal(tc.role, response.Role)
			s.True(response.WalletAccess)
			s.NotEmpty(response.Panels)
			s.Equal(view.Email, response.Profile.Email)
		})
	}

	s.Run("error: 401 without an identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/dashboard", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *DashboardHandlerTestSuite) TestWalletAccess() {
	s.Run("denied verdict renders as a normal response", func() {
		s.mockWallet.EXPECT().HasWalletAccess(gomock.Any(), gomock.Any()).
			Return(false).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wallet/access", nil, "some-token")

		var response resdto.WalletAccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.WalletAccess)
	})

	s.Run("no identity is denied without consulting the backend", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wallet/access", nil, "")

		var response resdto.WalletAccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.WalletAccess)
	})
}
