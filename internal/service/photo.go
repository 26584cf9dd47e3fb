package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rs/xid"

	"github.com/sakif/plant-care/internal/apperror"
	"github.com/sakif/plant-care/internal/config"
)

// DefaultPhotoContentType is assumed when an upload names no content type.
const DefaultPhotoContentType = "image/jpeg"

// photoKeyPrefix is the folder every plant photo goes into.
const photoKeyPrefix = "plants/"

// ObjectStore is where photo bytes go. *objectstore.S3 implements it.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// PhotoService turns a base64 image into a stored object and a public URL.
type PhotoService struct {
	store  ObjectStore // nil when uploads are not configured
	cdn    config.CDNConfig
	logger *slog.Logger
	newKey func(ext string) string
}

// NewPhotoService creates a PhotoService. store may be nil, in which case
// Upload reports the feature as unavailable instead of failing at startup.
func NewPhotoService(store ObjectStore, cdn config.CDNConfig, logger *slog.Logger) *PhotoService {
	return &PhotoService{
		store:  store,
		cdn:    cdn,
		logger: logger,
		newKey: newPhotoKey,
	}
}

// newPhotoKey returns "plants/<xid>.<ext>". xid is random and sortable by
// creation time; it is not derived from the image, so identical uploads get
// distinct keys.
func newPhotoKey(ext string) string {
	return photoKeyPrefix + xid.New().String() + "." + ext
}

// Upload decodes image, stores it and returns its CDN URL.
//
// image may carry a data URI prefix ("data:image/png;base64,"); everything up
// to the first comma is dropped. contentType only picks the file extension
// and the stored Content-Type; the bytes themselves are not inspected.
func (s *PhotoService) Upload(ctx context.Context, image, contentType string) (string, error) {
	if s.store == nil {
		return "", apperror.Unavailable("Photo uploads are not configured")
	}
	if contentType == "" {
		contentType = DefaultPhotoContentType
	}

	body, err := decodeImage(image)
	if err != nil {
		return "", err
	}

	key := s.newKey(PhotoExtension(contentType))
	if err := s.store.Put(ctx, key, body, contentType); err != nil {
		s.logger.Error("failed to upload photo",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("uploading photo: %w", err)
	}

	url := s.publicURL(key)
	s.logger.Info("photo uploaded",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int("bytes", len(body)),
	)
	return url, nil
}

func (s *PhotoService) publicURL(key string) string {
	return fmt.Sprintf("%s/%s/bucket/%s", strings.TrimRight(s.cdn.BaseURL, "/"), s.cdn.AccountID, key)
}

// PhotoExtension maps a content type to the stored file extension.
func PhotoExtension(contentType string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "webp"):
		return "webp"
	default:
		return "jpg"
	}
}

func decodeImage(image string) ([]byte, error) {
	if i := strings.IndexByte(image, ','); i >= 0 {
		image = image[i+1:]
	}
	image = strings.TrimSpace(image)
	if image == "" {
		return nil, apperror.ValidationFailed("image", "No image data")
	}

	body, err := base64.StdEncoding.DecodeString(image)
	if err != nil {
		// Some clients drop the trailing padding.
		body, err = base64.RawStdEncoding.DecodeString(image)
	}
	if err != nil {
		return nil, apperror.ValidationFailed("image", "image is not valid base64")
	}
	return body, nil
}
