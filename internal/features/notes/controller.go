package notes

import (
	"net/http"

	users_middleware "teamhub-backend/internal/features/users/middleware"
	"teamhub-backend/internal/util/apperrors"
	"teamhub-backend/internal/util/revisions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NoteController struct {
	noteService     *NoteService
	revisionTracker *revisions.Tracker
}

func (c *NoteController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/notes", c.CreateNote)
	router.GET("/workspaces/:id/notes", c.GetNotes)
	router.PUT("/notes/:noteId", c.UpdateNote)
	router.PUT("/notes/:noteId/pin", c.TogglePin)
	router.DELETE("/notes/:noteId", c.DeleteNote)
}

// CreateNote
// @Summary Create a note
// @Description Create a note in a workspace
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNoteRequestDTO true "Note data"
// @Success 200 {object} Note
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request CreateNoteRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	note, err := c.noteService.CreateNote(&request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, note)
}

// GetNotes
// @Summary List workspace notes
// @Description Get notes of a workspace, pinned first then newest; non-members get an empty list
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Param channelId query string false "Channel filter"
// @Success 200 {object} ListNotesResponseDTO
// @Failure 400 {object} map[string]string
// @Router /workspaces/{id}/notes [get]
func (c *NoteController) GetNotes(ctx *gin.Context) {
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

	etag := c.revisionTracker.ETag("notes", workspaceID)
	if ctx.GetHeader("If-None-Match") == etag {
		ctx.Status(http.StatusNotModified)
		return
	}

	response, err := c.noteService.GetNotes(workspaceID, channelID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header("ETag", etag)
	ctx.JSON(http.StatusOK, response)
}

// UpdateNote
// @Summary Update a note
// @Description Update note fields
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param noteId path string true "Note ID"
// @Param request body UpdateNoteRequestDTO true "Fields to update"
// @Success 200 {object} Note
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notes/{noteId} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	noteID, err := uuid.Parse(ctx.Param("noteId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note ID"})
		return
	}

	var request UpdateNoteRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	note, err := c.noteService.UpdateNote(noteID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, note)
}

// TogglePin
// @Summary Toggle note pin
// @Description Flip the pinned flag of a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param noteId path string true "Note ID"
// @Success 200 {object} Note
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notes/{noteId}/pin [put]
func (c *NoteController) TogglePin(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	noteID, err := uuid.Parse(ctx.Param("noteId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note ID"})
		return
	}

	note, err := c.noteService.TogglePin(noteID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, note)
}

// DeleteNote
// @Summary Delete a note
// @Description Delete a note (creator or admin only)
// @Tags notes
// @Security BearerAuth
// @Param noteId path string true "Note ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notes/{noteId} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	noteID, err := uuid.Parse(ctx.Param("noteId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note ID"})
		return
	}

	if err := c.noteService.DeleteNote(noteID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
