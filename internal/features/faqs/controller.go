package faqs

import (
	"net/http"

	users_middleware "teamhub-backend/internal/features/users/middleware"
	"teamhub-backend/internal/util/apperrors"
	"teamhub-backend/internal/util/revisions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FaqController struct {
	faqService      *FaqService
	revisionTracker *revisions.Tracker
}

func (c *FaqController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/faqs", c.CreateFaq)
	router.GET("/workspaces/:id/faqs", c.GetFaqs)
	router.PUT("/faqs/:faqId", c.UpdateFaq)
	router.PUT("/faqs/:faqId/pin", c.TogglePin)
	router.POST("/faqs/:faqId/upvote", c.Upvote)
	router.DELETE("/faqs/:faqId", c.DeleteFaq)
}

// CreateFaq
// @Summary Create a faq
// @Description Create a faq entry in a workspace
// @Tags faqs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateFaqRequestDTO true "Faq data"
// @Success 200 {object} Faq
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /faqs [post]
func (c *FaqController) CreateFaq(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request CreateFaqRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	faq, err := c.faqService.CreateFaq(&request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, faq)
}

// GetFaqs
// @Summary List workspace faqs
// @Description Get faqs of a workspace, pinned first then most upvoted; non-members get an empty list
// @Tags faqs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Param channelId query string false "Channel filter"
// @Success 200 {object} ListFaqsResponseDTO
// @Failure 400 {object} map[string]string
// @Router /workspaces/{id}/faqs [get]
func (c *FaqController) GetFaqs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	var channelID *uuid.UUID
	if raw := ctx.Query("channelId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid channel ID"})
			return
		}
		channelID = &parsed
	}

	etag := c.revisionTracker.ETag("faqs", workspaceID)
	if ctx.GetHeader("If-None-Match") == etag {
		ctx.Status(http.StatusNotModified)
		return
	}

	response, err := c.faqService.GetFaqs(workspaceID, channelID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header("ETag", etag)
	ctx.JSON(http.StatusOK, response)
}

// UpdateFaq
// @Summary Update a faq
// @Description Update question or answer of a faq
// @Tags faqs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param faqId path string true "Faq ID"
// @Param request body UpdateFaqRequestDTO true "Fields to update"
// @Success 200 {object} Faq
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /faqs/{faqId} [put]
func (c *FaqController) UpdateFaq(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	faqID, err := uuid.Parse(ctx.Param("faqId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid faq ID"})
		return
	}

	var request UpdateFaqRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	faq, err := c.faqService.UpdateFaq(faqID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, faq)
}

// TogglePin
// @Summary Toggle faq pin
// @Description Flip the pinned flag of a faq
// @Tags faqs
// @Produce json
// @Security BearerAuth
// @Param faqId path string true "Faq ID"
// @Success 200 {object} Faq
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /faqs/{faqId}/pin [put]
func (c *FaqController) TogglePin(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	faqID, err := uuid.Parse(ctx.Param("faqId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid faq ID"})
		return
	}

	faq, err := c.faqService.TogglePin(faqID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, faq)
}

// Upvote
// @Summary Upvote a faq
// @Description Add one upvote to a faq
// @Tags faqs
// @Produce json
// @Security BearerAuth
// @Param faqId path string true "Faq ID"
// @Success 200 {object} Faq
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /faqs/{faqId}/upvote [post]
func (c *FaqController) Upvote(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	faqID, err := uuid.Parse(ctx.Param("faqId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid faq ID"})
		return
	}

	faq, err := c.faqService.Upvote(faqID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, faq)
}

// DeleteFaq
// @Summary Delete a faq
// @Description Delete a faq (any workspace member)
// @Tags faqs
// @Security BearerAuth
// @Param faqId path string true "Faq ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /faqs/{faqId} [delete]
func (c *FaqController) DeleteFaq(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	faqID, err := uuid.Parse(ctx.Param("faqId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid faq ID"})
		return
	}

	if err := c.faqService.DeleteFaq(faqID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Faq deleted successfully"})
}
