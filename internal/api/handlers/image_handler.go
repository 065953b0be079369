// server/internal/api/handlers/image_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/storage"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	Store    database.Store
	Uploader *storage.Uploader
}

// UploadPlotImage stores the multipart file in object storage and inserts
// the metadata document. image_type comes as a form field alongside the
// file; gallery images may carry a gallery_category.
func (h *ImageHandler) UploadPlotImage(c *gin.Context) {
	plotID := c.Param("id")
	ctx := c.Request.Context()

	plot, err := h.Store.FetchPlot(ctx, plotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve plot"})
		return
	}
	if plot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plot not found"})
		return
	}

	imageType := models.ImageType(c.PostForm("image_type"))
	switch imageType {
	case models.ImagePlanPre1, models.ImagePlanPre2, models.ImagePlanPost1, models.ImageGallery:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown image type"})
		return
	}

	var galleryCategory *models.GalleryCategory
	if raw := c.PostForm("gallery_category"); raw != "" {
		gc := models.GalleryCategory(raw)
		switch gc {
		case models.GalleryTree, models.GallerySoil, models.GalleryAtmosphere, models.GalleryOther:
			galleryCategory = &gc
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown gallery category"})
			return
		}
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image file"})
		return
	}
	defer file.Close()

	// plot-images/<plot>/<millis>_<name>, spaces collapsed to underscores
	objectKey := fmt.Sprintf("plot-images/%s/%d_%s",
		plotID, time.Now().UnixMilli(), strings.ReplaceAll(fileHeader.Filename, " ", "_"))

	downloadURL, err := h.Uploader.UploadFile(ctx, file, objectKey, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	uploadedBy := c.GetString("user_id")
	uploadDate := time.Now().Format("2006-01-02")
	var description *string
	if d := c.PostForm("description"); d != "" {
		description = &d
	}

	image := models.PlotImage{
		PlotID:          plotID,
		ImageType:       imageType,
		GalleryCategory: galleryCategory,
		StoragePath:     &objectKey,
		DownloadURL:     &downloadURL,
		Description:     description,
		UploadedBy:      &uploadedBy,
		UploadDate:      &uploadDate,
		CreatedAt:       time.Now(),
	}

	id, err := h.Store.CreatePlotImage(ctx, &image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image metadata"})
		return
	}
	image.ID = id

	c.JSON(http.StatusCreated, image)
}

// GetPlotImages lists a plot's images, optionally filtered by type via the
// "type" query parameter.
func (h *ImageHandler) GetPlotImages(c *gin.Context) {
	plotID := c.Param("id")
	imageType := models.ImageType(c.Query("type"))

	images, err := h.Store.FetchPlotImages(c.Request.Context(), plotID, imageType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query plot images"})
		return
	}
	if images == nil {
		images = []models.PlotImage{}
	}

	c.JSON(http.StatusOK, images)
}

// DeletePlotImage removes the metadata document (admin). The stored object
// is kept; legacy_url images never had one.
func (h *ImageHandler) DeletePlotImage(c *gin.Context) {
	imageID := c.Param("id")

	if err := h.Store.DeletePlotImage(c.Request.Context(), imageID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plot image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plot image deleted successfully"})
}
