package rooms

import (
	"net/http"

	users_middleware "teamhub-backend/internal/features/users/middleware"
	"teamhub-backend/internal/util/apperrors"
	"teamhub-backend/internal/util/revisions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomController struct {
	roomService     *RoomService
	revisionTracker *revisions.Tracker
}

func (c *RoomController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/rooms", c.CreateRoom)
	router.GET("/workspaces/:id/rooms", c.GetRooms)
	router.GET("/rooms/:roomId/members", c.GetRoomMembers)
	router.POST("/rooms/:roomId/join", c.JoinRoom)
	router.POST("/rooms/:roomId/leave", c.LeaveRoom)
	router.PUT("/rooms/:roomId/mute", c.ToggleMute)
	router.POST("/rooms/:roomId/messages", c.SendMessage)
	router.GET("/rooms/:roomId/messages", c.GetMessages)
	router.DELETE("/rooms/:roomId", c.DeleteRoom)
}

// CreateRoom
// @Summary Create a discussion room
// @Description Create a room; the creator is enrolled as its admin
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRoomRequestDTO true "Room data"
// @Success 200 {object} DiscussionRoom
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request CreateRoomRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	room, err := c.roomService.CreateRoom(&request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, room)
}

// GetRooms
// @Summary List workspace rooms
// @Description Get rooms of a workspace, optionally filtered by topic; private rooms are hidden from non-members
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Param topic query string false "Topic filter"
// @Success 200 {object} ListRoomsResponseDTO
// @Failure 400 {object} map[string]string
// @Router /workspaces/{id}/rooms [get]
func (c *RoomController) GetRooms(ctx *gin.Context) {
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

	var topic *string
	if raw := ctx.Query("topic"); raw != "" {
		topic = &raw
	}

	etag := c.revisionTracker.ETag("rooms", workspaceID)
	if ctx.GetHeader("If-None-Match") == etag {
		ctx.Status(http.StatusNotModified)
		return
	}

	response, err := c.roomService.GetRooms(workspaceID, topic, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header("ETag", etag)
	ctx.JSON(http.StatusOK, response)
}

// GetRoomMembers
// @Summary List room members
// @Description Get the members of a room (room members only)
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Success 200 {object} ListRoomMembersResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{roomId}/members [get]
func (c *RoomController) GetRoomMembers(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roomID, err := uuid.Parse(ctx.Param("roomId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	response, err := c.roomService.GetRoomMembers(roomID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// JoinRoom
// @Summary Join a room
// @Description Join a discussion room; fails when already joined or the room is full
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Success 200 {object} RoomMember
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{roomId}/join [post]
func (c *RoomController) JoinRoom(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roomID, err := uuid.Parse(ctx.Param("roomId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	roomMember, err := c.roomService.JoinRoom(roomID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, roomMember)
}

// LeaveRoom
// @Summary Leave a room
// @Description Remove the caller's own room membership
// @Tags rooms
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{roomId}/leave [post]
func (c *RoomController) LeaveRoom(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roomID, err := uuid.Parse(ctx.Param("roomId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	if err := c.roomService.LeaveRoom(roomID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Left room successfully"})
}

// ToggleMute
// @Summary Toggle room mute
// @Description Flip the caller's mute flag for a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Success 200 {object} RoomMember
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{roomId}/mute [put]
func (c *RoomController) ToggleMute(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roomID, err := uuid.Parse(ctx.Param("roomId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	roomMember, err := c.roomService.ToggleMute(roomID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, roomMember)
}

// SendMessage
// @Summary Send a room message
// @Description Post a message or thread reply in a room (room members only)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Param request body SendRoomMessageRequestDTO true "Message data"
// @Success 200 {object} RoomMessage
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{roomId}/messages [post]
func (c *RoomController) SendMessage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roomID, err := uuid.Parse(ctx.Param("roomId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var request SendRoomMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	message, err := c.roomService.SendMessage(ctx.Request.Context(), roomID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, message)
}

// GetMessages
// @Summary List room messages
// @Description Get one thread level of a room in chronological order (room members only)
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Param parentMessageId query string false "Parent message for thread replies"
// @Success 200 {object} ListRoomMessagesResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{roomId}/messages [get]
func (c *RoomController) GetMessages(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roomID, err := uuid.Parse(ctx.Param("roomId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var parentMessageID *uuid.UUID
	if raw := ctx.Query("parentMessageId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parent message ID"})
			return
		}
		parentMessageID = &parsed
	}

	response, err := c.roomService.GetMessages(ctx.Request.Context(), roomID, parentMessageID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteRoom
// @Summary Delete a room
// @Description Delete a room, its members and its messages (room admin only)
// @Tags rooms
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{roomId} [delete]
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	roomID, err := uuid.Parse(ctx.Param("roomId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	if err := c.roomService.DeleteRoom(roomID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
