package services

import (
	"context"

	"github.com/sirupsen/logrus"
)

// ImageStore removes uploaded images that venues and artists link to.
type ImageStore interface {
	// IsManaged reports whether link points into the store's bucket.
	IsManaged(link string) bool
	DeleteFile(ctx context.Context, link string) error
}

func removeManagedImage(ctx context.Context, images ImageStore, logger *logrus.Logger, link string) {
	if images == nil || link == "" || !images.IsManaged(link) {
		return
	}
	if err := images.DeleteFile(ctx, link); err != nil {
		logger.WithError(err).WithField("image_link", link).Warn("Failed to delete image from MinIO")
	}
}
