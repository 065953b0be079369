// server/internal/models/plot_image.go
package models

import "time"

// PlotImage is an uploaded photograph or plan scan tied to a plot. The file
// itself lives in object storage; legacy_url keeps working for images
// migrated from the old Cloudinary account.
type PlotImage struct {
	ID              string           `bson:"_id,omitempty" json:"id"`
	PlotID          string           `bson:"plot_id" json:"plot_id"`
	ImageType       ImageType        `bson:"image_type" json:"image_type"`
	GalleryCategory *GalleryCategory `bson:"gallery_category" json:"gallery_category"`
	LegacyURL       *string          `bson:"legacy_url" json:"legacy_url"`
	StoragePath     *string          `bson:"storage_path" json:"storage_path"`
	DownloadURL     *string          `bson:"download_url" json:"download_url"`
	Description     *string          `bson:"description" json:"description"`
	UploadedBy      *string          `bson:"uploaded_by" json:"uploaded_by"`
	UploadDate      *string          `bson:"upload_date" json:"upload_date"`
	CreatedAt       time.Time        `bson:"created_at" json:"created_at"`
}
