package channels

import (
	"net/http"

	users_middleware "teamhub-backend/internal/features/users/middleware"
	"teamhub-backend/internal/util/apperrors"
	"teamhub-backend/internal/util/revisions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChannelController struct {
	channelService  *ChannelService
	revisionTracker *revisions.Tracker
}

func (c *ChannelController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/workspaces/:id/channels", c.CreateChannel)
	router.GET("/workspaces/:id/channels", c.GetChannels)
	router.PUT("/channels/:channelId", c.UpdateChannel)
	router.DELETE("/channels/:channelId", c.DeleteChannel)
}

// CreateChannel
// @Summary Create a channel
// @Description Create a channel in a workspace (admin only)
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Param request body CreateChannelRequestDTO true "Channel data"
// @Success 200 {object} Channel
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{id}/channels [post]
func (c *ChannelController) CreateChannel(ctx *gin.Context) {
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

	var request CreateChannelRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	channel, err := c.channelService.CreateChannel(workspaceID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, channel)
}

// GetChannels
// @Summary List workspace channels
// @Description Get channels of a workspace; non-members get an empty list
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Success 200 {object} ListChannelsResponseDTO
// @Failure 400 {object} map[string]string
// @Router /workspaces/{id}/channels [get]
func (c *ChannelController) GetChannels(ctx *gin.Context) {
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

	etag := c.revisionTracker.ETag("channels", workspaceID)
	if ctx.GetHeader("If-None-Match") == etag {
		ctx.Status(http.StatusNotModified)
		return
	}

	response, err := c.channelService.GetChannels(workspaceID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header("ETag", etag)
	ctx.JSON(http.StatusOK, response)
}

// UpdateChannel
// @Summary Rename a channel
// @Description Rename a channel (admin only)
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param channelId path string true "Channel ID"
// @Param request body UpdateChannelRequestDTO true "Channel data"
// @Success 200 {object} Channel
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /channels/{channelId} [put]
func (c *ChannelController) UpdateChannel(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	channelID, err := uuid.Parse(ctx.Param("channelId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid channel ID"})
		return
	}

	var request UpdateChannelRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	channel, err := c.channelService.UpdateChannel(channelID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, channel)
}

// DeleteChannel
// @Summary Delete a channel
// @Description Delete a channel and its messages (admin only)
// @Tags channels
// @Security BearerAuth
// @Param channelId path string true "Channel ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /channels/{channelId} [delete]
func (c *ChannelController) DeleteChannel(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	channelID, err := uuid.Parse(ctx.Param("channelId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid channel ID"})
		return
	}

	if err := c.channelService.DeleteChannel(channelID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Channel deleted successfully"})
}
