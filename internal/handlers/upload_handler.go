package handlers

import (
	"context"

	"venue-booking/internal/services"
	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Presigner is satisfied by *services.MinIOService.
type Presigner interface {
	GeneratePresignedURL(ctx context.Context, filename string) (*services.PresignedUpload, error)
}

type UploadHandler struct {
	presigner Presigner
	logger    *logrus.Logger
}

func NewUploadHandler(presigner Presigner, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		presigner: presigner,
		logger:    logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for an image upload
// @Description Generate a presigned PUT URL for a venue or artist image. Store the returned public_url as the image_link.
// @Tags Uploads
// @Produce json
// @Param filename query string true "Filename"
// @Success 200 {object} utils.StandardResponse{data=services.PresignedUpload}
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /uploads/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	upload, err := h.presigner.GeneratePresignedURL(c.Context(), filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", upload)
}
