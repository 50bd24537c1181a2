package handlers

import (
	"movies-admin/internal/services"
	"movies-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	media  services.MediaStore
	logger *logrus.Logger
}

func NewUploadHandler(media services.MediaStore, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		media:  media,
		logger: logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a film work media upload
// @Description Returns a presigned PUT URL. Store the returned object_path as the film work file_path once the upload succeeds.
// @Tags upload
// @Produce json
// @Param filename query string true "Filename"
// @Param contentType query string false "Content Type" default(video/mp4)
// @Success 200 {object} utils.StandardResponse{data=services.PresignedUpload}
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	contentType := c.Query("contentType", "video/mp4")

	upload, err := h.media.GeneratePresignedURL(c.Context(), filename, contentType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", upload)
}
