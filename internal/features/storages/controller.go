package storages

import (
	"io"
	"net/http"

	users_middleware "teamhub-backend/internal/features/users/middleware"
	"teamhub-backend/internal/util/apperrors"

	"github.com/gin-gonic/gin"
)

// 50MB cap matches the client-side upload limit.
const maxUploadSize = 50 * 1024 * 1024

type FileController struct {
	fileService *FileService
}

func (c *FileController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/files", c.UploadFile)
}

// RegisterPublicRoutes mounts the local-storage download endpoint,
// which authenticates via a signed token instead of a session.
func (c *FileController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/files/:id", c.DownloadFile)
}

// UploadFile
// @Summary Upload a file
// @Description Upload a blob; returns the file ID to reference from a document
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /files [post]
func (c *FileController) UploadFile(ctx *gin.Context) {
	_, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	if fileHeader.Size > maxUploadSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer func() {
		_ = file.Close()
	}()

	fileID, err := c.fileService.UploadFile(ctx.Request.Context(), file, fileHeader.Size)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"fileId":   fileID,
		"fileName": fileHeader.Filename,
		"fileSize": fileHeader.Size,
		"fileType": fileHeader.Header.Get("Content-Type"),
	})
}

// DownloadFile
// @Summary Download a file
// @Description Stream a blob using a signed download token
// @Tags files
// @Produce octet-stream
// @Param id path string true "File ID"
// @Param token query string true "Signed download token"
// @Param name query string false "Download file name"
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /files/{id} [get]
func (c *FileController) DownloadFile(ctx *gin.Context) {
	tokenFileID, err := VerifyDownloadToken(ctx.Query("token"))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid download token"})
		return
	}

	if tokenFileID.String() != ctx.Param("id") {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Token does not match file"})
		return
	}

	reader, err := c.fileService.GetFile(ctx.Request.Context(), tokenFileID)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	defer func() {
		_ = reader.Close()
	}()

	fileName := ctx.Query("name")
	if fileName == "" {
		fileName = tokenFileID.String()
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	ctx.Header("Content-Type", "application/octet-stream")
	ctx.Status(http.StatusOK)

	_, _ = io.Copy(ctx.Writer, reader)
}
