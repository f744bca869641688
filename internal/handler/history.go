package handler

import (
	"net/http"
	"strconv"

	"ProfileCards_WebProject/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type HistoryResponse struct {
	History []models.UploadRecord `json:"history"`
}

// GetUploadHistory godoc
// @Summary      Upload directory history
// @Description  Lists upload and delete events, newest first.
// @Tags         Uploads
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "maximum number of records (default 50)"
// @Success      200    {object}  handler.HistoryResponse
// @Failure      401    {object}  handler.ErrorResponse
// @Failure      404    {object}  handler.ErrorResponse "history disabled"
// @Failure      500    {object}  handler.ErrorResponse
// @Router       /api/uploads/history [get]
func (h *Handler) GetUploadHistory(c *gin.Context) {
	if h.records == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Upload history is disabled"})
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	records, err := h.records.GetRecords(limit)
	if err != nil {
		h.logger.Error("failed to fetch upload history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{History: records})
}
