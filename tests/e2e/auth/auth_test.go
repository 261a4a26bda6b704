//go:build e2e

package auth_test

import (
	"context"
	"net/http"
	"testing"

	resdto "bonojuntos/internal/handler/dto/response"
	"bonojuntos/internal/pkg/cookie"
	"bonojuntos/tests/common/dbtest"
	"bonojuntos/tests/common/httptest"
	"bonojuntos/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"

	activeEmail   = "branch@example.com"
	inactiveEmail = "closed@example.com"
	testPassword  = "password123"
)

type AuthE2ETestSuite struct {
	e2e.SharedSuite
}

func TestAuthE2E(t *testing.T) {
	suite.Run(t, new(AuthE2ETestSuite))
}

func (s *AuthE2ETestSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestCollaborator(s.T(), s.DB, activeEmail, "branch")

	inactiveID := dbtest.CreateTestCollaborator(s.T(), s.DB, inactiveEmail, "branch")
	_, err := s.DB.Exec(context.Background(),
		"UPDATE collaborators SET is_active = false WHERE id = $1", inactiveID)
	s.Require().NoError(err)
}

func (s *AuthE2ETestSuite) TestLogin() {
	cases := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          activeEmail,
			password:       testPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			email:          activeEmail,
			password:       "wrong-password",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown email",
			email:          "nobody@example.com",
			password:       testPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account",
			email:          inactiveEmail,
			password:       testPassword,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "malformed email",
			email:          "not-an-email",
			password:       testPassword,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			body := map[string]any{"email": tc.email, "password": tc.password}
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
			s.Equal(tc.expectedStatus, rec.Code)

			if tc.expectedStatus != http.StatusOK {
				return
			}

			var response resdto.LoginResponse
			httptest.DecodeResponseBody(s.T(), rec.Body, &response)
			s.NotEmpty(response.AccessToken)
			s.Require().NotNil(response.Collaborator)
			s.Equal(tc.email, response.Collaborator.Email)

			c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
			s.Require().NotNil(c)
			s.Equal(response.AccessToken, c.Value)
		})
	}
}

func (s *AuthE2ETestSuite) TestMe() {
	s.Run("returns the logged-in collaborator", func() {
		body := map[string]any{"email": activeEmail, "password": testPassword}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
		s.Require().Equal(http.StatusOK, rec.Code)

		var login resdto.LoginResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &login)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, login.AccessToken)
		s.Require().Equal(http.StatusOK, rec.Code)

		var me struct {
			Email string `json:"email"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &me)
		s.Equal(activeEmail, me.Email)
	})

	s.Run("rejects missing and garbage tokens", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthE2ETestSuite) TestLogout() {
	s.Run("clears the access token cookie", func() {
		body := map[string]any{"email": activeEmail, "password": testPassword}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
		s.Require().Equal(http.StatusOK, rec.Code)

		var login resdto.LoginResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &login)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, login.AccessToken)
		s.Equal(http.StatusNoContent, rec.Code)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
		s.Negative(c.MaxAge)
	})
}
