package messages

import (
	"net/http"

	users_middleware "teamhub-backend/internal/features/users/middleware"
	"teamhub-backend/internal/util/apperrors"
	"teamhub-backend/internal/util/revisions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageController struct {
	messageService  *MessageService
	revisionTracker *revisions.Tracker
}

func (c *MessageController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/messages", c.SendMessage)
	router.PUT("/messages/:id", c.UpdateMessage)
	router.DELETE("/messages/:id", c.DeleteMessage)
	router.GET("/messages/:id/thread", c.GetThreadMessages)
	router.GET("/channels/:channelId/messages", c.GetChannelMessages)
	router.POST("/conversations", c.CreateOrGetConversation)
	router.GET("/conversations/:id/messages", c.GetConversationMessages)
}

// SendMessage
// @Summary Send a message
// @Description Post a message to a channel, a conversation, or a thread
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendMessageRequestDTO true "Message data"
// @Success 200 {object} Message
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request SendMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	message, err := c.messageService.SendMessage(ctx.Request.Context(), &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, message)
}

// UpdateMessage
// @Summary Edit a message
// @Description Edit a message body (author only)
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param request body UpdateMessageRequestDTO true "New body"
// @Success 200 {object} Message
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages/{id} [put]
func (c *MessageController) UpdateMessage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	messageID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	var request UpdateMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	message, err := c.messageService.UpdateMessage(messageID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, message)
}

// DeleteMessage
// @Summary Delete a message
// @Description Delete a message and its replies (author or admin)
// @Tags messages
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages/{id} [delete]
func (c *MessageController) DeleteMessage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	messageID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	if err := c.messageService.DeleteMessage(ctx.Request.Context(), messageID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

// GetThreadMessages
// @Summary List thread replies
// @Description Get the replies of a message, oldest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parent message ID"
// @Success 200 {object} ListMessagesResponseDTO
// @Failure 400 {object} map[string]string
// @Router /messages/{id}/thread [get]
func (c *MessageController) GetThreadMessages(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	parentMessageID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	etag := c.revisionTracker.ETag("thread-messages", parentMessageID)
	if ctx.GetHeader("If-None-Match") == etag {
		ctx.Status(http.StatusNotModified)
		return
	}

	response, err := c.messageService.GetThreadMessages(
		ctx.Request.Context(),
		parentMessageID,
		user,
	)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header("ETag", etag)
	ctx.JSON(http.StatusOK, response)
}

// GetChannelMessages
// @Summary List channel messages
// @Description Get top-level messages of a channel, oldest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param channelId path string true "Channel ID"
// @Success 200 {object} ListMessagesResponseDTO
// @Failure 400 {object} map[string]string
// @Router /channels/{channelId}/messages [get]
func (c *MessageController) GetChannelMessages(ctx *gin.Context) {
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

	etag := c.revisionTracker.ETag("channel-messages", channelID)
	if ctx.GetHeader("If-None-Match") == etag {
		ctx.Status(http.StatusNotModified)
		return
	}

	response, err := c.messageService.GetChannelMessages(ctx.Request.Context(), channelID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header("ETag", etag)
	ctx.JSON(http.StatusOK, response)
}

// CreateOrGetConversation
// @Summary Open a direct conversation
// @Description Find or create the conversation between the caller and another member
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateConversationRequestDTO true "Conversation data"
// @Success 200 {object} Conversation
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /conversations [post]
func (c *MessageController) CreateOrGetConversation(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request CreateConversationRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	conversation, err := c.messageService.CreateOrGetConversation(&request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, conversation)
}

// GetConversationMessages
// @Summary List conversation messages
// @Description Get top-level messages of a direct conversation, oldest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Success 200 {object} ListMessagesResponseDTO
// @Failure 400 {object} map[string]string
// @Router /conversations/{id}/messages [get]
func (c *MessageController) GetConversationMessages(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	conversationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation ID"})
		return
	}

	etag := c.revisionTracker.ETag("conversation-messages", conversationID)
	if ctx.GetHeader("If-None-Match") == etag {
		ctx.Status(http.StatusNotModified)
		return
	}

	response, err := c.messageService.GetConversationMessages(
		ctx.Request.Context(),
		conversationID,
		user,
	)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header("ETag", etag)
	ctx.JSON(http.StatusOK, response)
}
