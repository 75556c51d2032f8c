package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
	"github.com/campushub/campus-hub-api/pkg/response"
)

type catalogService interface {
	CreateItem(ctx context.Context, identity models.Identity, req models.CreateItemRequest, photo *models.PhotoUpload) (*models.Item, error)
	SearchItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	GetItem(ctx context.Context, itemID int64) (*models.Item, error)
	ResolveItem(ctx context.Context, identity models.Identity, itemID int64) error
}

// ItemHandler wires HTTP endpoints to the catalog service.
type ItemHandler struct {
	service       catalogService
	maxPhotoBytes int64
}

// NewItemHandler creates a new handler.
func NewItemHandler(svc catalogService, maxPhotoBytes int64) *ItemHandler {
	return &ItemHandler{service: svc, maxPhotoBytes: maxPhotoBytes}
}

// Search godoc
// @Summary Browse active items
// @Description List active lost & found items, newest first, optionally filtered
// @Tags Items
// @Produce json
// @Param q query string false "Case-sensitive substring over title, location and category"
// @Param type query string false "Exact item type: lost or found"
// @Success 200 {object} response.Envelope
// @Router /items [get]
func (h *ItemHandler) Search(c *gin.Context) {
	filter := models.ItemFilter{
		Query: c.Query("q"),
		Type:  c.Query("type"),
	}

	items, err := h.service.SearchItems(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Fetch a single item
// @Description Returns the item regardless of status
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	itemID, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid item id"))
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Post a new item
// @Description Create a lost or found posting with an optional photo
// @Tags Items
// @Accept multipart/form-data
// @Produce json
// @Param type formData string true "lost or found"
// @Param title formData string true "Short title"
// @Param category formData string false "Category"
// @Param description formData string false "Description"
// @Param date formData string false "Incident date, free text"
// @Param location formData string false "Location"
// @Param photo formData file false "Photo"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.CreateItemRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid item payload"))
		return
	}

	photo, err := h.readPhoto(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), claims.Identity(), req, photo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, item)
}

// Resolve godoc
// @Summary Mark an item as resolved
// @Description One-way status transition, owner only
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 204 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /items/{id}/resolve [post]
func (h *ItemHandler) Resolve(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	itemID, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid item id"))
		return
	}

	if err := h.service.ResolveItem(c.Request.Context(), claims.Identity(), itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// readPhoto extracts the optional photo upload. A missing file is not an
// error; an oversized or unreadable one is.
func (h *ItemHandler) readPhoto(c *gin.Context) (*models.PhotoUpload, error) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid photo upload")
	}

	if h.maxPhotoBytes > 0 && fileHeader.Size > h.maxPhotoBytes {
		return nil, appErrors.Clone(appErrors.ErrValidation, "photo exceeds maximum size")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open photo")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read photo")
	}

	return &models.PhotoUpload{Filename: fileHeader.Filename, Data: data}, nil
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
