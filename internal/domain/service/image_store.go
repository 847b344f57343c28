package service

import (
	"context"
	"io"
)

// ImageStore holds listing pictures and hands back their public URL.
type ImageStore interface {
	UploadImage(ctx context.Context, file io.Reader, contentType, ownerID string) (string, error)
	DeleteImage(ctx context.Context, imageURL string) error
	Close() error
}

// Content types accepted for listing pictures.
var ImageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func IsImageContentType(contentType string) bool {
	_, ok := ImageContentTypes[contentType]
	return ok
}
