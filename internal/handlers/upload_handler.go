package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rownak648/storyline/internal/upload"
	"github.com/rs/zerolog"
)

// UploadHandler forwards operator media files to the external media host.
type UploadHandler struct {
	uploader *upload.Client
	log      zerolog.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploader *upload.Client, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{uploader: uploader, log: log}
}

// RegisterUploadRoutes registers upload-related routes
func (h *UploadHandler) RegisterUploadRoutes(g *echo.Group) {
	g.POST("/uploads", h.Upload)
}

// Upload accepts a multipart file and returns its hosted URL and coarse
// kind. The kind comes from the file's declared content type.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.uploader.Upload(c.Request().Context(), fileHeader.Filename, contentType, file)
	if err != nil {
		h.log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("media upload failed")
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
