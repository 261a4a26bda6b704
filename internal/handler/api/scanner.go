package api

import (
	"errors"
	"net/http"

	"bonojuntos/internal/domain/claim"
	"bonojuntos/internal/domain/redemption"
	reqdto "bonojuntos/internal/handler/dto/request"
	resdto "bonojuntos/internal/handler/dto/response"
	"bonojuntos/internal/handler/middleware"
	"bonojuntos/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ScannerHandler struct {
	scannerCommands commands.ScannerCommands
}

func NewScannerHandler(scannerCommands commands.ScannerCommands) *ScannerHandler {
	return &ScannerHandler{
		scannerCommands: scannerCommands,
	}
}

// @Summary Scan a coupon token
// @Description Decode and validate a scanned QR token, producing a pending confirmation
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScanRequest true "Scan request"
// @Success 200 {object} resdto.ScannerStateResponse
// @Failure 400 {object} resdto.ScannerStateResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} resdto.ScannerStateResponse
// @Failure 422 {object} resdto.ScannerStateResponse
// @Failure 429 {object} resdto.ScannerStateResponse
// @Router /scanner/scan [post]
func (h *ScannerHandler) Scan(c *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snap, err := h.scannerCommands.Scan(c.Request.Context(), collaboratorID, req.Token, req.BranchID)
	if err != nil {
		c.JSON(scanStatus(err), resdto.FromSnapshot(snap))
		return
	}

	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

// @Summary Confirm the pending redemption
// @Description Commit the redemption that is awaiting confirmation
// @Tags scanner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ScannerStateResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} resdto.ScannerStateResponse
// @Failure 502 {object} resdto.ScannerStateResponse
// @Router /scanner/confirm [post]
func (h *ScannerHandler) Confirm(c *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	snap, err := h.scannerCommands.Confirm(c.Request.Context(), collaboratorID)
	if err != nil {
		c.JSON(confirmStatus(err), resdto.FromSnapshot(snap))
		return
	}

	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

// @Summary Cancel or dismiss
// @Description Cancel a pending confirmation, or dismiss a finished result
// @Tags scanner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ScannerStateResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} resdto.ScannerStateResponse
// @Router /scanner/cancel [post]
func (h *ScannerHandler) Cancel(c *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	snap, err := h.scannerCommands.Cancel(collaboratorID)
	if err != nil {
		c.JSON(http.StatusConflict, resdto.FromSnapshot(snap))
		return
	}

	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

// @Summary Scanner session state
// @Description Current phase of the collaborator's scanner session
// @Tags scanner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ScannerStateResponse
// @Failure 401 {object} map[string]string
// @Router /scanner/state [get]
func (h *ScannerHandler) State(c *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSnapshot(h.scannerCommands.State(collaboratorID)))
}

func scanStatus(err error) int {
	switch {
	case errors.Is(err, redemption.ErrScanThrottled):
		return http.StatusTooManyRequests
	case errors.Is(err, redemption.ErrScanInFlight):
		return http.StatusConflict
	case errors.Is(err, commands.ErrInvalidToken):
		return http.StatusBadRequest
	case errors.Is(err, commands.ErrClaimRejected),
		errors.Is(err, claim.ErrUnsupportedVersion),
		errors.Is(err, claim.ErrExpired),
		errors.Is(err, claim.ErrIssuedInFuture),
		errors.Is(err, claim.ErrMerchantMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func confirmStatus(err error) int {
	switch {
	case errors.Is(err, commands.ErrRedemptionConflict):
		return http.StatusConflict
	case errors.Is(err, redemption.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, commands.ErrRedemptionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
