package handler

import (
	"net/http"

	"ProfileCards_WebProject/internal/models"
	"ProfileCards_WebProject/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	toastCardDeleted  = "Card deleted."
	toastDeleteFailed = "Delete failed (not found or permission denied)."
	toastInvalidID    = "Invalid card id."
)

// DeleteCards godoc
// @Summary      Card deletion page
// @Description  GET lists the saved cards. POST with _mode=delete removes the card named by id and shows a toast.
// @Tags         Profiles
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        _mode  formData  string  false  "delete"
// @Param        id     formData  string  false  "card id"
// @Success      200
// @Router       /cgi_bin/delete_cards [post]
func (h *Handler) DeleteCards(c *gin.Context) {
	toast := ""
	// 쿼리 문자열과 본문 필드를 모두 받음 (본문 우선)
	if c.Request.Method == http.MethodPost && c.Request.FormValue("_mode") == "delete" {
		id := c.Request.FormValue("id")
		if id != "" && storage.IsSafeID(id) {
			if err := h.profiles.Delete(id); err != nil {
				h.logger.Warn("card delete failed", zap.String("id", id), zap.Error(err))
				toast = toastDeleteFailed
			} else {
				toast = toastCardDeleted
			}
		} else {
			toast = toastInvalidID
		}
	}

	cards, err := h.profiles.Cards()
	if err != nil {
		h.logger.Error("failed to list cards", zap.Error(err))
		cards = []models.ProfileCard{}
	}

	h.renderHTML(c, http.StatusOK, deleteCardsPage, deleteCardsData{
		layoutData: layoutData{
			Title:    "Delete Cards",
			Subtitle: "Select a card to remove it permanently.",
			Footer:   "WebServ • CGI • Cards",
		},
		Toast:         toast,
		Cards:         cards,
		TokenRequired: h.issuer != nil,
	})
}
