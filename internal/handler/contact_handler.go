package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
	"github.com/campushub/campus-hub-api/pkg/response"
)

// ContactHandler accepts contact requests about an item. Delivery is out of
// scope; the endpoint acknowledges without sending anything.
type ContactHandler struct {
	logger *zap.Logger
}

// NewContactHandler creates a new handler.
func NewContactHandler(logger *zap.Logger) *ContactHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactHandler{logger: logger}
}

type contactRequest struct {
	ItemID  int64  `json:"item_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Contact godoc
// @Summary Contact an item's poster
// @Description Accepts a contact message for an item; no delivery is performed
// @Tags Items
// @Accept json
// @Produce json
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /contact [post]
func (h *ContactHandler) Contact(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid contact payload"))
		return
	}

	h.logger.Info("contact request received",
		zap.Int64("item_id", req.ItemID),
		zap.Int64("from_student_id", claims.StudentID),
	)

	response.JSON(c, http.StatusAccepted, gin.H{"status": "accepted"})
}
