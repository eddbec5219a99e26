package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"

	"github.com/reportrhq/reportr-go/config"
)

// Cloudinary uploads report images and hands back the secure URL that
// gets attached to the report via the image endpoint.
type Cloudinary struct {
	CLD    *cloudinary.Cloudinary
	Folder string
}

func NewCloudinary(cfg *config.Config) (*Cloudinary, error) {
	if cfg.CloudinaryCloudName == "" {
		return nil, errors.New("cloudinary is not configured")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize cloudinary")
	}

	return &Cloudinary{CLD: cld, Folder: cfg.CloudinaryFolder}, nil
}

// UploadImage uploads a local file and returns its secure URL.
func (c *Cloudinary) UploadImage(ctx context.Context, filePath string) (string, error) {
	resp, err := c.CLD.Upload.Upload(ctx, filePath, uploader.UploadParams{Folder: c.Folder})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", filePath)
	}
	return resp.SecureURL, nil
}
