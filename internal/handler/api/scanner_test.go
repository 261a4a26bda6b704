//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"bonojuntos/internal/domain/claim"
	"bonojuntos/internal/domain/redemption"
	"bonojuntos/internal/handler/api"
	resdto "bonojuntos/internal/handler/dto/response"
	"bonojuntos/internal/pkg/errs"
	"bonojuntos/internal/usecase/commands"
	"bonojuntos/tests/common/httptest"
	commandsmock "bonojuntos/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScannerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockScanner *commandsmock.MockScannerCommands
	handler     *api.ScannerHandler

	collaboratorID uuid.UUID
	branchID       uuid.UUID
}

func (s *ScannerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockScanner = commandsmock.NewMockScannerCommands(s.mockCtrl)
	s.handler = api.NewScannerHandler(s.mockScanner)
	s.collaboratorID = uuid.New()
	s.branchID = uuid.New()

	// Mock middleware behavior: inject the authenticated collaborator
	s.router.Use(func(c *gin.Context) {
		c.Set("collaborator_id", s.collaboratorID)
	})
	s.router.POST("/scanner/scan", s.handler.Scan)
	s.router.POST("/scanner/confirm", s.handler.Confirm)
	s.router.POST("/scanner/cancel", s.handler.Cancel)
	s.router.GET("/scanner/state", s.handler.State)
}

func (s *ScannerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScannerHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScannerHandlerTestSuite))
}

func (s *ScannerHandlerTestSuite) scanBody() map[string]any {
	return map[string]any{
		"token":     "bj|v=1|pid=42|uid=u1|cid=c1|lpu=2|ts=1700000000000|n=abc123",
		"branch_id": s.branchID.String(),
	}
}

func (s *ScannerHandlerTestSuite) awaitingSnapshot() redemption.Snapshot {
	attemptID := uuid.New()
	return redemption.Snapshot{
		Phase:     redemption.PhaseAwaitingConfirmation,
		AttemptID: attemptID,
		Record: &redemption.ConfirmationRecord{
			AttemptID:      attemptID,
			PromotionID:    42,
			UserID:         "u1",
			UserName:       "u1",
			PromotionTitle: "2x1 Tacos",
			BusinessName:   "Taquería El Paso",
			Nonce:          "abc123",
		},
	}
}

func (s *ScannerHandlerTestSuite) TestScan() {
	url := "/scanner/scan"

	s.Run("success: 200 with the pending confirmation", func() {
		s.mockScanner.EXPECT().
			Scan(gomock.Any(), s.collaboratorID, gomock.Any(), s.branchID).
			Return(s.awaitingSnapshot(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.scanBody(), "")

		var response resdto.ScannerStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(string(redemption.PhaseAwaitingConfirmation), response.Phase)
		s.Require().NotNil(response.Record)
		s.Equal("2x1 Tacos", response.Record.PromotionTitle)
		s.Empty(response.Message)
	})

	s.Run("error: 400 on a missing branch id", func() {
		body := s.scanBody()
		delete(body, "branch_id")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	statusCases := []struct {
		name       string
		err        error
		snapErr    error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "malformed token is 400",
			err:        errs.Mark(&claim.DecodeError{Kind: claim.KindMalformedPrefix}, commands.ErrInvalidToken),
			snapErr:    errs.Mark(&claim.DecodeError{Kind: claim.KindMalformedPrefix}, commands.ErrInvalidToken),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Código inválido",
		},
		{
			name:       "expired claim is 422",
			err:        errs.Mark(claim.ErrExpired, commands.ErrClaimRejected),
			snapErr:    errs.Mark(claim.ErrExpired, commands.ErrClaimRejected),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "expirado",
		},
		{
			name:       "foreign merchant is 422",
			err:        errs.Mark(claim.ErrMerchantMismatch, commands.ErrClaimRejected),
			snapErr:    errs.Mark(claim.ErrMerchantMismatch, commands.ErrClaimRejected),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "otro comercio",
		},
		{
			name:       "throttled scan is 429",
			err:        redemption.ErrScanThrottled,
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "scan during confirm is 409",
			err:        redemption.ErrScanInFlight,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range statusCases {
		s.Run(tc.name, func() {
			snap := redemption.Snapshot{Phase: redemption.PhaseFailed, Err: tc.snapErr}
			if tc.snapErr == nil {
				snap = redemption.Snapshot{Phase: redemption.PhaseIdle}
			}
			s.mockScanner.EXPECT().
				Scan(gomock.Any(), s.collaboratorID, gomock.Any(), s.branchID).
				Return(snap, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.scanBody(), "")
			s.Equal(tc.wantStatus, rec.Code)

			if tc.wantMsg != "" {
				var response resdto.ScannerStateResponse
				httptest.DecodeResponseBody(s.T(), rec.Body, &response)
				s.Contains(response.Message, tc.wantMsg)
			}
		})
	}
}

func (s *ScannerHandlerTestSuite) TestConfirm() {
	url := "/scanner/confirm"

	s.Run("success: 200 with the redemption id", func() {
		redemptionID := uuid.New()
		s.mockScanner.EXPECT().Confirm(gomock.Any(), s.collaboratorID).
			Return(redemption.Snapshot{
				Phase:  redemption.PhaseSucceeded,
				Result: &redemption.RedemptionResult{RedemptionID: redemptionID},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.ScannerStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(string(redemption.PhaseSucceeded), response.Phase)
		s.Equal(redemptionID.String(), response.RedemptionID)
	})

	s.Run("error: already redeemed is 409 with its own message", func() {
		s.mockScanner.EXPECT().Confirm(gomock.Any(), s.collaboratorID).
			Return(redemption.Snapshot{
				Phase: redemption.PhaseFailed,
				Err:   commands.ErrRedemptionConflict,
			}, commands.ErrRedemptionConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusConflict, rec.Code)

		var response resdto.ScannerStateResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Contains(response.Message, "ya fue canjeado")
	})

	s.Run("error: store failure is 502 and asks to verify", func() {
		s.mockScanner.EXPECT().Confirm(gomock.Any(), s.collaboratorID).
			Return(redemption.Snapshot{
				Phase: redemption.PhaseFailed,
				Err:   commands.ErrRedemptionFailed,
			}, commands.ErrRedemptionFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusBadGateway, rec.Code)

		var response resdto.ScannerStateResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Contains(response.Message, "verifique")
	})

	s.Run("error: nothing pending is 409", func() {
		s.mockScanner.EXPECT().Confirm(gomock.Any(), s.collaboratorID).
			Return(redemption.Snapshot{Phase: redemption.PhaseIdle}, redemption.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *ScannerHandlerTestSuite) TestCancel() {
	url := "/scanner/cancel"

	s.Run("success: 200 back to idle", func() {
		s.mockScanner.EXPECT().Cancel(s.collaboratorID).
			Return(redemption.Snapshot{Phase: redemption.PhaseIdle}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.ScannerStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(string(redemption.PhaseIdle), response.Phase)
	})

	s.Run("error: nothing to cancel is 409", func() {
		s.mockScanner.EXPECT().Cancel(s.collaboratorID).
			Return(redemption.Snapshot{Phase: redemption.PhaseIdle}, redemption.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *ScannerHandlerTestSuite) TestState() {
	s.Run("returns the current snapshot", func() {
		s.mockScanner.EXPECT().State(s.collaboratorID).
			Return(s.awaitingSnapshot()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/scanner/state", nil, "")

		var response resdto.ScannerStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(string(redemption.PhaseAwaitingConfirmation), response.Phase)
	})
}
