package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"
)

// MediaAsset is what the media host hands back after an upload.
type MediaAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// MediaStore uploads and deletes hosted images.
type MediaStore interface {
	Upload(ctx context.Context, file io.Reader, filename, folder string) (MediaAsset, error)
	Delete(ctx context.Context, publicID string) error
}

var ErrMediaNotConfigured = errors.New("media storage is not configured")

type CloudinaryService struct {
	cld           *cloudinary.Cloudinary
	defaultFolder string
}

func NewCloudinaryService(cloudName, apiKey, apiSecret, defaultFolder string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld, defaultFolder: defaultFolder}, nil
}

// Upload sends one image to Cloudinary and returns its secure URL and public id.
func (s *CloudinaryService) Upload(ctx context.Context, file io.Reader, filename, folder string) (MediaAsset, error) {
	if folder == "" {
		folder = s.defaultFolder
	}

	// pointer booleans are required by the SDK
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	// the name seeds the public id; the host still appends a random suffix
	if filename != "" {
		useName := true
		params.UseFilename = &useName
		params.FilenameOverride = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return MediaAsset{}, fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return MediaAsset{}, fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return MediaAsset{}, errors.New("upload successful but no URL returned")
	}

	return MediaAsset{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Delete removes an image by its public id.
func (s *CloudinaryService) Delete(ctx context.Context, publicID string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", publicID, err)
	}
	if res != nil && res.Error.Message != "" {
		return fmt.Errorf("failed to delete image %s: %s", publicID, res.Error.Message)
	}
	return nil
}

var mediaStore MediaStore

// InitCloudinary configures the package media store. Without credentials
// the store stays nil and media endpoints answer 503.
func InitCloudinary(cloudName, apiKey, apiSecret, defaultFolder string) error {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		mediaStore = nil
		return nil
	}
	svc, err := NewCloudinaryService(cloudName, apiKey, apiSecret, defaultFolder)
	if err != nil {
		return err
	}
	mediaStore = svc
	return nil
}

func GetMediaStore() (MediaStore, error) {
	if mediaStore == nil {
		return nil, ErrMediaNotConfigured
	}
	return mediaStore, nil
}

// SetMediaStore replaces the media store. Tests use it to inject fakes.
func SetMediaStore(m MediaStore) {
	mediaStore = m
}

// DeleteMediaInBackground removes a hosted image without blocking the
// caller. Failures are only logged.
func DeleteMediaInBackground(publicID string) {
	if publicID == "" || mediaStore == nil {
		return
	}
	store := mediaStore
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := store.Delete(ctx, publicID); err != nil {
			log.Warn().Err(err).Str("op", "media.delete").Str("public_id", publicID).Msg("failed to delete image")
			return
		}
		log.Info().Str("op", "media.delete").Str("public_id", publicID).Msg("image deleted")
	}()
}
