//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"booking-calendar-sync/internal/handler/api"
	reqdto "booking-calendar-sync/internal/handler/dto/request"
	resdto "booking-calendar-sync/internal/handler/dto/response"
	"booking-calendar-sync/internal/pkg/config"
	"booking-calendar-sync/internal/pkg/cookie"
	"booking-calendar-sync/internal/usecase/commands"
	"booking-calendar-sync/tests/common/httptest"
	"booking-calendar-sync/tests/common/testutil"
	commandsmock "booking-calendar-sync/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	h := api.NewAuthHandler(s.mockCommands, config.CookieConfig{Secure: true}, config.JWTConfig{Duration: time.Hour})

	s.router.POST("/api/admin/login", h.Login)
	s.router.POST("/api/admin/logout", h.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/admin/login"
	reqBody := reqdto.LoginRequest{Username: "admin", Password: "correct horse battery"}

	s.Run("success: returns the token and sets the session cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "admin", "correct horse battery").
			Return(&commands.LoginResult{Username: "admin", AccessToken: "session-jwt"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("session-jwt", response.AccessToken)
		session := httptest.ExtractCookie(rec, cookie.AdminSessionCookieName)
		s.Require().NotNil(session)
		s.Equal("session-jwt", session.Value)
		s.True(session.HttpOnly)
		s.Equal(3600, session.MaxAge)
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"username", "password"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 403 on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "admin", gomock.Any()).Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "invalid credentials")
		s.Nil(httptest.ExtractCookie(rec, cookie.AdminSessionCookieName))
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	session := httptest.ExtractCookie(rec, cookie.AdminSessionCookieName)
	s.Require().NotNil(session)
	s.Empty(session.Value)
}
