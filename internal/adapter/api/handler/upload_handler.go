package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"smartagri/internal/domain/service"
	"smartagri/pkg/errors"
	"smartagri/pkg/logger"
	"smartagri/pkg/response"
)

const maxImageSize = 5 * 1024 * 1024

type UploadHandler struct {
	images      service.ImageStore
	maxFileSize int64
}

var uploadHandler *UploadHandler

func NewUploadHandler(images service.ImageStore) *UploadHandler {
	return &UploadHandler{
		images:      images,
		maxFileSize: maxImageSize,
	}
}

func SetupUploadHandler(images service.ImageStore) {
	uploadHandler = NewUploadHandler(images)
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

// UploadImage stores a listing picture and returns its public URL, which the
// client then sends as image_url when creating the listing.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.Error(c, err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	logger.Debug("Received image: %s, size: %d bytes, type: %s", file.Filename, file.Size, file.Header.Get("Content-Type"))

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !service.IsImageContentType(contentType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	url, err := h.images.UploadImage(c.Request().Context(), src, contentType, identity.ID)
	if err != nil {
		logger.Error("Failed to upload image for %s: %v", identity.ID, err)
		return response.Error(c, errors.WriteFailure("Failed to upload image", err))
	}

	return response.Created(c, map[string]interface{}{
		"url":      url,
		"filename": file.Filename,
		"size":     file.Size,
	})
}
