package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"wardrobe-api/internal/application"
	"wardrobe-api/internal/domain/entity"
	"wardrobe-api/internal/interface/middleware"
	"wardrobe-api/pkg/response"
	"wardrobe-api/pkg/uploads"
	"wardrobe-api/pkg/validation"
)

type ClothingHandler struct {
	Svc     *application.ClothingService
	Uploads uploads.Store
	Logger  *logrus.Logger
}

func NewClothingHandler(svc *application.ClothingService, store uploads.Store, logger *logrus.Logger) *ClothingHandler {
	return &ClothingHandler{Svc: svc, Uploads: store, Logger: logger}
}

const categoryValues = "SHIRT PANTS SHOES JACKET ACCESSORY OTHER"

type createItemRequest struct {
	Name     string  `form:"name" json:"name"`
	Category string  `form:"category" json:"category" binding:"omitempty,oneof=SHIRT PANTS SHOES JACKET ACCESSORY OTHER"`
	Color    string  `form:"color" json:"color"`
	Brand    *string `form:"brand" json:"brand"`
}

type updateItemRequest struct {
	Name     *string `form:"name" json:"name"`
	Category *string `form:"category" json:"category" binding:"omitempty,oneof=SHIRT PANTS SHOES JACKET ACCESSORY OTHER"`
	Color    *string `form:"color" json:"color"`
	Brand    *string `form:"brand" json:"brand"`
}

// List GET /api/clothing
func (h *ClothingHandler) List(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	items, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list clothing items failed")
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create POST /api/clothing
func (h *ClothingHandler) Create(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)

	var req createItemRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.Name == "" || req.Category == "" || req.Color == "" {
		response.Error(c, http.StatusBadRequest, "Name, category, and color are required")
		return
	}
	category, err := entity.ParseCategory(req.Category)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Category must be one of "+categoryValues)
		return
	}

	imageURL, ok := h.imageFromRequest(c)
	if !ok {
		return
	}

	item, err := h.Svc.Create(c.Request.Context(), uid, application.CreateItemInput{
		Name:     req.Name,
		Category: category,
		Color:    req.Color,
		Brand:    req.Brand,
		ImageURL: imageURL,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update PUT /api/clothing/:id
func (h *ClothingHandler) Update(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := application.UpdateItemInput{
		Name:  req.Name,
		Color: req.Color,
		Brand: req.Brand,
	}
	if req.Category != nil {
		category, err := entity.ParseCategory(*req.Category)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Category must be one of "+categoryValues)
			return
		}
		in.Category = &category
	}

	// Run the existence/ownership guard before touching the upload store, so
	// a rejected mutation never leaves an orphaned image behind.
	if _, err := h.Svc.Get(c.Request.Context(), uid, itemID); err != nil {
		mutationError(c, err, "update")
		return
	}

	imageURL, ok := h.imageFromRequest(c)
	if !ok {
		return
	}
	in.ImageURL = imageURL

	item, err := h.Svc.Update(c.Request.Context(), uid, itemID, in)
	if err != nil {
		mutationError(c, err, "update")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete DELETE /api/clothing/:id
func (h *ClothingHandler) Delete(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), uid, itemID); err != nil {
		mutationError(c, err, "delete")
		return
	}
	c.Status(http.StatusNoContent)
}

// mutationError maps a mutation failure onto the API's status codes. Existence
// is checked before ownership, so 404 always wins over 403.
func mutationError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, application.ErrItemNotFound):
		response.Error(c, http.StatusNotFound, "Clothing item not found")
	case errors.Is(err, application.ErrNotOwner):
		response.Error(c, http.StatusForbidden, "User not authorized to "+action+" this item")
	default:
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}

// itemIDParam parses the :id path segment. An unparsable id can never name a
// stored item, so it reports not found rather than a validation failure.
func itemIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusNotFound, "Clothing item not found")
		return 0, false
	}
	return id, true
}

// imageFromRequest stores an attached image, if any, and returns its URL.
// The second return is false when the upload was rejected and a response has
// already been written.
func (h *ClothingHandler) imageFromRequest(c *gin.Context) (*string, bool) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return nil, true
	}
	fh, err := c.FormFile("image")
	if err != nil {
		// no file attached
		return nil, true
	}
	url, err := h.Uploads.Save(c.Request.Context(), fh)
	if err != nil {
		if errors.Is(err, uploads.ErrUnsupportedType) || errors.Is(err, uploads.ErrTooLarge) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return nil, false
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("store upload failed")
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return nil, false
	}
	return &url, true
}
