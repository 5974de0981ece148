package utils

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/salonhq/booking-api/config"
)

// Uploader wraps the Cloudinary client used for staff and service images.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

func NewUploader(cfg *config.Config) (*Uploader, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, err
	}
	return &Uploader{cld: cld}, nil
}

// Upload stores the file under the given folder and returns the secure URL.
func (u *Uploader) Upload(ctx context.Context, file interface{}, publicID, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		Transformation: "c_thumb,w_300,h_300",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
