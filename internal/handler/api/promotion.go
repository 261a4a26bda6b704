package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "bonojuntos/internal/handler/dto/request"
	resdto "bonojuntos/internal/handler/dto/response"
	"bonojuntos/internal/usecase/commands"
	"bonojuntos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	promotionQueries queries.PromotionQueries
	issuanceCommands commands.IssuanceCommands
}

func NewPromotionHandler(promotionQueries queries.PromotionQueries, issuanceCommands commands.IssuanceCommands) *PromotionHandler {
	return &PromotionHandler{
		promotionQueries: promotionQueries,
		issuanceCommands: issuanceCommands,
	}
}

// @Summary Get promotion
// @Description Get promotion by ID
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Success 200 {object} queries.PromotionView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promotions/{id} [get]
func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	id, err := h.promotionID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID format",
		})
		return
	}

	view, err := h.promotionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPromotionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Promotion not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List promotion redemptions
// @Description List the most recent redemptions recorded for a promotion
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Param limit query int false "Maximum items to return"
// @Success 200 {array} queries.RedemptionListItem
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /promotions/{id}/redemptions [get]
func (h *PromotionHandler) ListRedemptions(c *gin.Context) {
	id, err := h.promotionID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID format",
		})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.promotionQueries.ListRedemptions(c.Request.Context(), id, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Issue a coupon token
// @Description Issue a single-use QR token for a promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Param request body reqdto.IssueTokenRequest true "Issue request"
// @Success 201 {object} resdto.IssueTokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /promotions/{id}/token [post]
func (h *PromotionHandler) IssueToken(c *gin.Context) {
	id, err := h.promotionID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID format",
		})
		return
	}

	var req reqdto.IssueTokenRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.issuanceCommands.IssueToken(c.Request.Context(), id, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPromotionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Promotion not found",
			})
		case errors.Is(err, commands.ErrPromotionInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Promotion is not active",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.IssueTokenResponse{Token: token})
}

func (h *PromotionHandler) promotionID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
