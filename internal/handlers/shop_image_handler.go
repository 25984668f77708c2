package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/storage"
)

// Uploads larger than this are rejected before decoding.
const maxUploadBytes = 10 << 20

type ShopImageHandler struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewShopImageHandler(db *gorm.DB, store storage.ObjectStore) *ShopImageHandler {
	return &ShopImageHandler{db: db, store: store}
}

type shopImageDTO struct {
	ID         uint   `json:"id"`
	URL        string `json:"url"`
	Alt        string `json:"alt"`
	OrderIndex int    `json:"order_index"`
}

func (h *ShopImageHandler) List(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	var rows []models.ShopImage
	if err := h.db.
		Where("profile_id = ?", profileID).
		Order("order_index ASC, id ASC").
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_list_images", "Failed to list images.")
		return
	}

	out := make([]shopImageDTO, 0, len(rows))
	for _, img := range rows {
		url := ""
		if h.store != nil {
			if u, err := h.store.PresignedURL(c.Request.Context(), img.Key); err == nil {
				url = u
			}
		}
		out = append(out, shopImageDTO{
			ID:         img.ID,
			URL:        url,
			Alt:        img.Alt,
			OrderIndex: img.OrderIndex,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": out, "total": len(out)})
}

// Upload accepts a multipart "image" file, re-encodes it as WebP and stores
// the object under the shop's prefix.
func (h *ShopImageHandler) Upload(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	if h.store == nil {
		httperr.Internal(c, "storage_unavailable", "Image storage is not configured.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Multipart field 'image' is required.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Image exceeds the 10 MB limit.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Failed to read upload.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Failed to read upload.")
		return
	}

	encoded, err := storage.NormalizeImage(raw)
	if err != nil {
		httperr.BadRequest(c, "unsupported_image", "Only JPEG and PNG uploads are supported.")
		return
	}

	key := fmt.Sprintf("shops/%d/%s.webp", profileID, uuid.NewString())
	if err := h.store.Put(c.Request.Context(), key, encoded, "image/webp"); err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store image.")
		return
	}

	var maxOrder int
	h.db.Model(&models.ShopImage{}).
		Where("profile_id = ?", profileID).
		Select("COALESCE(MAX(order_index), -1)").
		Scan(&maxOrder)

	img := models.ShopImage{
		ProfileID:  profileID,
		Key:        key,
		Alt:        c.PostForm("alt"),
		OrderIndex: maxOrder + 1,
	}
	if err := h.db.Create(&img).Error; err != nil {
		// Keep the bucket consistent with the table.
		_ = h.store.Delete(c.Request.Context(), key)
		httperr.Internal(c, "upload_failed", "Failed to store image.")
		return
	}

	url, _ := h.store.PresignedURL(c.Request.Context(), key)

	c.JSON(http.StatusCreated, shopImageDTO{
		ID:         img.ID,
		URL:        url,
		Alt:        img.Alt,
		OrderIndex: img.OrderIndex,
	})
}

func (h *ShopImageHandler) Delete(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	imageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid image id.")
		return
	}

	var img models.ShopImage
	if err := h.db.
		Where("id = ? AND profile_id = ?", imageID, profileID).
		First(&img).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "image_not_found", "Image not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_image", "Failed to load image.")
		return
	}

	if err := h.db.Delete(&img).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Failed to delete image.")
		return
	}

	if h.store != nil {
		_ = h.store.Delete(c.Request.Context(), img.Key)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
