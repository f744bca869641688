/**
* Name:        handler.go
* Description: Gin 핸들러 공통 의존성 및 응답 헬퍼
 */
package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"ProfileCards_WebProject/internal/auth"
	"ProfileCards_WebProject/internal/storage"
	"ProfileCards_WebProject/internal/upload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Options struct {
	Profiles *storage.ProfileStore
	Uploads  *upload.Store
	// Records may be nil, in which case upload history is not kept.
	Records *storage.RecordStore
	// Issuer may be nil, in which case admin protection is off.
	Issuer          *auth.TokenIssuer
	RedirectBaseURL string
	Logger          *zap.Logger
}

type Handler struct {
	profiles     *storage.ProfileStore
	uploads      *upload.Store
	records      *storage.RecordStore
	issuer       *auth.TokenIssuer
	redirectBase string
	logger       *zap.Logger
}

func New(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		profiles:     opts.Profiles,
		uploads:      opts.Uploads,
		records:      opts.Records,
		issuer:       opts.Issuer,
		redirectBase: strings.TrimRight(opts.RedirectBaseURL, "/"),
		logger:       logger,
	}
}

type ErrorResponse struct {
	OK    bool   `json:"ok" example:"false"`
	Error string `json:"error" example:"Name is required"`
}

// wantsJSON is true when the client asks for JSON and not HTML, unless the
// form forces the HTML view.
func wantsJSON(c *gin.Context, view string) bool {
	if strings.ToLower(view) == "html" {
		return false
	}
	accept := strings.ToLower(c.GetHeader("Accept"))
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// readURLEncodedBody parses the raw body as a query string whatever the
// declared content type. Malformed pairs are dropped.
func readURLEncodedBody(c *gin.Context) (url.Values, error) {
	rawData, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	values, _ := url.ParseQuery(string(rawData))
	if values == nil {
		values = url.Values{}
	}
	return values, nil
}

func (h *Handler) renderHTML(c *gin.Context, status int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error("render template failed", zap.String("template", tmpl.Name()), zap.Error(err))
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) recordUpload(c *gin.Context, action, fileName string, size int64) {
	if h.records == nil {
		return
	}
	if err := h.records.CreateRecord(action, fileName, size, c.ClientIP()); err != nil {
		h.logger.Warn("failed to record upload history",
			zap.String("action", action), zap.String("file", fileName), zap.Error(err))
	}
}

// RecoverPanic answers unexpected panics with the generic JSON failure shape.
func (h *Handler) RecoverPanic(c *gin.Context, recovered any) {
	h.logger.Error("panic while handling request",
		zap.String("path", c.Request.URL.Path), zap.Any("panic", recovered))
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: fmt.Sprint(recovered)})
}

func summarize(prefix string, names []string, limit int) string {
	if len(names) == 0 {
		return ""
	}
	shown := names[:min(limit, len(names))]
	msg := prefix + strings.Join(shown, ", ")
	if len(names) > limit {
		msg += " ..."
	}
	return msg
}
