package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Redirect godoc
// @Summary      Search redirect
// @Description  Redirects to the configured search site, with q as the search term when present.
// @Tags         Utilities
// @Produce      html
// @Param        q    query  string  false  "search term"
// @Success      302
// @Router       /cgi_bin/redirect [get]
func (h *Handler) Redirect(c *gin.Context) {
	dest := h.redirectBase + "/"
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		dest = h.redirectBase + "/search?" + url.Values{"q": {q}}.Encode()
	}
	c.Header("Location", dest)
	c.Data(http.StatusFound, "text/html; charset=utf-8", []byte(redirectPage(dest)))
}
