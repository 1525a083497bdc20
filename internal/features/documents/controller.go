package documents

import (
	"net/http"

	users_middleware "teamhub-backend/internal/features/users/middleware"
	"teamhub-backend/internal/util/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DocumentController struct {
	documentService *DocumentService
}

func (c *DocumentController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/documents", c.CreateDocument)
	router.GET("/workspaces/:id/documents", c.GetDocuments)
	router.DELETE("/documents/:documentId", c.DeleteDocument)
}

// CreateDocument
// @Summary Register a document
// @Description Register an uploaded file as a workspace document
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDocumentRequestDTO true "Document data"
// @Success 200 {object} Document
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /documents [post]
func (c *DocumentController) CreateDocument(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request CreateDocumentRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	document, err := c.documentService.CreateDocument(ctx.Request.Context(), &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, document)
}

// GetDocuments
// @Summary List workspace documents
// @Description Get documents of a workspace, newest first, each with a download URL; non-members get an empty list
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Param channelId query string false "Channel filter"
// @Success 200 {object} ListDocumentsResponseDTO
// @Failure 400 {object} map[string]string
// @Router /workspaces/{id}/documents [get]
func (c *DocumentController) GetDocuments(ctx *gin.Context) {
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

	response, err := c.documentService.GetDocuments(ctx.Request.Context(), workspaceID, channelID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteDocument
// @Summary Delete a document
// @Description Delete a document and its file (uploader or admin only)
// @Tags documents
// @Security BearerAuth
// @Param documentId path string true "Document ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /documents/{documentId} [delete]
func (c *DocumentController) DeleteDocument(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	documentID, err := uuid.Parse(ctx.Param("documentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}

	if err := c.documentService.DeleteDocument(ctx.Request.Context(), documentID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
