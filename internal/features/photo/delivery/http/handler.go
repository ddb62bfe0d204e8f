package http

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/features/photo/service"
)

const (
	formField = "photo"

	// запас на multipart-заголовки сверх размера файла
	multipartOverhead = 1 << 20
)

type PhotoHandler struct {
	service service.PhotoService
	maxSize int64
}

func NewPhotoHandler(service service.PhotoService, maxSize int64) *PhotoHandler {
	return &PhotoHandler{
		service: service,
		maxSize: maxSize,
	}
}

// RegisterRoutes mounts the admin upload route on api and the public file route on public.
func (h *PhotoHandler) RegisterRoutes(api, public *gin.RouterGroup, admin gin.HandlerFunc) {
	api.POST("/upload-photo", admin, h.upload)
	public.GET("/photos/:name", h.serve)
}

// @Summary Upload photo
// @Description Stores an image for broadcasts and returns its public URL
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Security TelegramInitData
// @Param photo formData file true "Image, at most 5 MB"
// @Success 200 {object} models.UploadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/upload-photo [post]
func (h *PhotoHandler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize+multipartOverhead)

	header, err := c.FormFile(formField)
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		_ = c.Error(errors.NewValidationError(formField, "image is too large").
			WithDetail("max_size", h.maxSize))
		return
	}
	if err != nil {
		_ = c.Error(errors.NewValidationError(formField, "photo file is required"))
		return
	}

	if header.Size > h.maxSize {
		_ = c.Error(errors.NewValidationError(formField, "image is too large").
			WithDetail("max_size", h.maxSize).
			WithDetail("size", header.Size))
		return
	}

	file, err := header.Open()
	if err != nil {
		_ = c.Error(errors.NewBadRequestError("cannot read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxSize+1))
	if err != nil {
		_ = c.Error(errors.NewBadRequestError("cannot read uploaded file"))
		return
	}

	result, err := h.service.Upload(c.Request.Context(), service.Upload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get uploaded photo
// @Tags photos
// @Produce image/jpeg,image/png,image/gif,image/webp
// @Param name path string true "File name"
// @Success 200 {file} binary
// @Failure 404 {object} middleware.ErrorResponse
// @Router /photos/{name} [get]
func (h *PhotoHandler) serve(c *gin.Context) {
	photo, err := h.service.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Security-Policy", "default-src 'none'; sandbox")
	c.Data(http.StatusOK, photo.ContentType, photo.Data)
}
