//go:build e2e

package scanner_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"bonojuntos/internal/domain/redemption"
	resdto "bonojuntos/internal/handler/dto/response"
	"bonojuntos/tests/common/dbtest"
	"bonojuntos/tests/common/httptest"
	"bonojuntos/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	scanURL    = "/api/scanner/scan"
	confirmURL = "/api/scanner/confirm"
	cancelURL  = "/api/scanner/cancel"
	stateURL   = "/api/scanner/state"

	merchantEmail = "branch@example.com"
	testPassword  = "password123"
)

type RedemptionFlowTestSuite struct {
	e2e.SharedSuite

	collaboratorID uuid.UUID
	promotionID    int64
	accessToken    string
}

func TestRedemptionFlowE2E(t *testing.T) {
	suite.Run(t, new(RedemptionFlowTestSuite))
}

func (s *RedemptionFlowTestSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.collaboratorID = dbtest.CreateTestCollaborator(s.T(), s.DB, merchantEmail, "branch")
	s.promotionID = dbtest.CreateTestPromotion(s.T(), s.DB, s.collaboratorID, "2x1 Tacos", true)
	s.accessToken = s.login(merchantEmail)
}

func (s *RedemptionFlowTestSuite) login(email string) string {
	body := map[string]any{"email": email, "password": testPassword}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var response resdto.LoginResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &response)
	s.Require().NotEmpty(response.AccessToken)
	return response.AccessToken
}

func (s *RedemptionFlowTestSuite) issueToken(userID string) string {
	url := fmt.Sprintf("/api/promotions/%d/token", s.promotionID)
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url,
		map[string]any{"user_id": userID}, s.accessToken)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var response resdto.IssueTokenResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &response)
	s.Require().NotEmpty(response.Token)
	return response.Token
}

func (s *RedemptionFlowTestSuite) scan(token string) (int, resdto.ScannerStateResponse) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, scanURL,
		map[string]any{"token": token, "branch_id": uuid.New().String()}, s.accessToken)

	var response resdto.ScannerStateResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &response)
	return rec.Code, response
}

func (s *RedemptionFlowTestSuite) confirm() (int, resdto.ScannerStateResponse) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL, nil, s.accessToken)

	var response resdto.ScannerStateResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &response)
	return rec.Code, response
}

func (s *RedemptionFlowTestSuite) redemptionCount() int {
	var count int
	err := s.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM redemptions WHERE promotion_id = $1", s.promotionID).Scan(&count)
	s.Require().NoError(err)
	return count
}

func (s *RedemptionFlowTestSuite) TestFullRedemptionFlow() {
	s.Run("issue, scan, confirm persists exactly one redemption", func() {
		token := s.issueToken("u1")

		code, scanned := s.scan(token)
		s.Require().Equal(http.StatusOK, code)
		s.Equal(string(redemption.PhaseAwaitingConfirmation), scanned.Phase)
		s.Require().NotNil(scanned.Record)
		s.Equal("2x1 Tacos", scanned.Record.PromotionTitle)
		s.Equal("Test Business", scanned.Record.BusinessName)
		s.Equal("u1", scanned.Record.UserID)

		code, confirmed := s.confirm()
		s.Require().Equal(http.StatusOK, code)
		s.Equal(string(redemption.PhaseSucceeded), confirmed.Phase)
		s.NotEmpty(confirmed.RedemptionID)

		s.Equal(1, s.redemptionCount())

		var userID string
		err := s.DB.QueryRow(context.Background(),
			"SELECT user_id FROM redemptions WHERE id = $1", confirmed.RedemptionID).Scan(&userID)
		s.Require().NoError(err)
		s.Equal("u1", userID)
	})

	s.Run("re-scanning a redeemed token conflicts on confirm", func() {
		token := s.issueToken("u1")

		_, _ = s.scan(token)
		code, _ := s.confirm()
		s.Require().Equal(http.StatusOK, code)

		// Same nonce again: the scan itself passes validation,
		// the uniqueness barrier rejects the second confirm.
		code, _ = s.scan(token)
		s.Require().Equal(http.StatusOK, code)

		var conflicted resdto.ScannerStateResponse
		code, conflicted = s.confirm()
		s.Equal(http.StatusConflict, code)
		s.Equal(string(redemption.PhaseFailed), conflicted.Phase)
		s.Contains(conflicted.Message, "ya fue canjeado")

		s.Equal(1, s.redemptionCount())
	})

	s.Run("confirm with nothing pending conflicts", func() {
		code, _ := s.confirm()
		s.Equal(http.StatusConflict, code)
		s.Equal(0, s.redemptionCount())
	})

	s.Run("cancel discards the pending confirmation", func() {
		token := s.issueToken("u2")
		_, _ = s.scan(token)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL, nil, s.accessToken)
		s.Require().Equal(http.StatusOK, rec.Code)

		var state resdto.ScannerStateResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &state)
		s.Equal(string(redemption.PhaseIdle), state.Phase)

		code, _ := s.confirm()
		s.Equal(http.StatusConflict, code)
		s.Equal(0, s.redemptionCount())
	})

	s.Run("foreign merchant cannot confirm another merchant's coupon", func() {
		token := s.issueToken("u1")

		dbtest.CreateTestCollaborator(s.T(), s.DB, "other@example.com", "branch")
		otherToken := s.login("other@example.com")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, scanURL,
			map[string]any{"token": token, "branch_id": uuid.New().String()}, otherToken)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		var state resdto.ScannerStateResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &state)
		s.Equal(string(redemption.PhaseFailed), state.Phase)
		s.Contains(state.Message, "otro comercio")

		s.Equal(0, s.redemptionCount())
	})

	s.Run("state endpoint reflects the pending confirmation", func() {
		token := s.issueToken("u3")
		_, _ = s.scan(token)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, stateURL, nil, s.accessToken)
		s.Require().Equal(http.StatusOK, rec.Code)

		var state resdto.ScannerStateResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &state)
		s.Equal(string(redemption.PhaseAwaitingConfirmation), state.Phase)
		s.Require().NotNil(state.Record)
		s.Equal("u3", state.Record.UserID)
	})

	s.Run("malformed token is rejected at the door", func() {
		code, state := s.scan("qr|not-a-coupon")
		s.Equal(http.StatusBadRequest, code)
		s.Contains(state.Message, "inválido")
	})
}
