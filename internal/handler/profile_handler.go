/**
* Name:        profile_handler.go
* Description: 프로필 카드 목록/저장/조회/삭제
 */
package handler

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"ProfileCards_WebProject/internal/models"
	"ProfileCards_WebProject/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	profileListLimit = 9
	debugVersion     = "5"
)

type ProfileListResponse struct {
	Profiles []models.Profile `json:"profiles"`
	Error    string           `json:"error,omitempty"`
	Debug    *ProfileDebug    `json:"debug,omitempty"`
}

type ProfileDebug struct {
	Cwd            string `json:"cwd"`
	Script         string `json:"script"`
	ProfilesDir    string `json:"profiles_dir"`
	Count          int    `json:"count"`
	EnvQueryString string `json:"env_query_string"`
	EnvRequestURI  string `json:"env_request_uri"`
}

type ProfileSaveResponse struct {
	OK      bool           `json:"ok" example:"true"`
	Profile models.Profile `json:"profile"`
}

// Profile dispatches /cgi_bin/profile by method.
func (h *Handler) Profile(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		h.ListProfiles(c)
	case http.MethodPost:
		h.SaveProfile(c)
	default:
		h.profileJSON(c, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	}
}

// profileJSON adds the debugging headers every profile JSON answer carries.
func (h *Handler) profileJSON(c *gin.Context, status int, obj any) {
	c.Header("X-Profiles-Dir", h.profiles.Dir())
	c.Header("X-Profile-Count", strconv.Itoa(h.profiles.Count()))
	c.Header("X-Debug-Version", debugVersion)
	c.JSON(status, obj)
}

func (h *Handler) migrate() {
	n, err := h.profiles.MigrateIfNeeded()
	if err != nil {
		h.logger.Debug("profile migration skipped", zap.Error(err))
	}
	if n > 0 {
		h.logger.Info("migrated legacy profiles", zap.Int("count", n))
	}
}

// ListProfiles godoc
// @Summary      List profile cards
// @Description  Returns at most 9 profiles, optionally filtered by a case-insensitive name substring.
// @Tags         Profiles
// @Produce      json
// @Param        q      query  string  false  "name filter"
// @Param        debug  query  string  false  "1 adds a debug block"
// @Success      200    {object}  handler.ProfileListResponse
// @Router       /cgi_bin/profile [get]
func (h *Handler) ListProfiles(c *gin.Context) {
	h.migrate()

	profiles, err := h.profiles.List()
	if err != nil {
		h.logger.Error("failed to load profiles", zap.Error(err))
		h.profileJSON(c, http.StatusOK, ProfileListResponse{
			Profiles: []models.Profile{},
			Error:    "load_failed: " + err.Error(),
		})
		return
	}

	if q := strings.ToLower(c.Query("q")); q != "" {
		filtered := make([]models.Profile, 0, len(profiles))
		for _, p := range profiles {
			if strings.Contains(strings.ToLower(p.Name), q) {
				filtered = append(filtered, p)
			}
		}
		profiles = filtered
	}

	resp := ProfileListResponse{Profiles: profiles[:min(profileListLimit, len(profiles))]}
	if c.DefaultQuery("debug", "0") == "1" {
		cwd, _ := os.Getwd()
		script, _ := os.Executable()
		resp.Debug = &ProfileDebug{
			Cwd:            cwd,
			Script:         script,
			ProfilesDir:    h.profiles.Dir(),
			Count:          len(profiles),
			EnvQueryString: c.Request.URL.RawQuery,
			EnvRequestURI:  c.Request.RequestURI,
		}
	}
	h.profileJSON(c, http.StatusOK, resp)
}

// SaveProfile godoc
// @Summary      Save or update a profile card
// @Description  Upserts a profile from a url-encoded body. Answers JSON when the client accepts JSON and not HTML, an HTML card otherwise.
// @Tags         Profiles
// @Accept       x-www-form-urlencoded
// @Produce      json,html
// @Param        name    formData  string  true   "display name"
// @Param        gender  formData  string  false  "gender"
// @Param        hobby   formData  string  false  "hobby"
// @Param        id      formData  string  false  "identifier, used when filename-safe"
// @Param        _mode   formData  string  false  "save (default) or update"
// @Param        _view   formData  string  false  "html forces the HTML view"
// @Success      200  {object}  handler.ProfileSaveResponse
// @Failure      400  {object}  handler.ErrorResponse
// @Failure      500  {object}  handler.ErrorResponse
// @Router       /cgi_bin/profile [post]
func (h *Handler) SaveProfile(c *gin.Context) {
	fields, err := readURLEncodedBody(c)
	if err != nil {
		h.profileJSON(c, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	mode := strings.ToLower(fields.Get("_mode"))
	if mode == "" {
		mode = "save"
	}
	if mode != "save" && mode != "update" {
		h.profileJSON(c, http.StatusBadRequest, ErrorResponse{Error: "Unsupported mode"})
		return
	}

	name := strings.TrimSpace(fields.Get("name"))
	profile := models.Profile{
		ID:     h.profiles.SafeID(strings.TrimSpace(fields.Get("id")), name),
		Name:   name,
		Gender: strings.TrimSpace(fields.Get("gender")),
		Hobby:  strings.TrimSpace(fields.Get("hobby")),
	}
	if profile.Name == "" {
		h.profileJSON(c, http.StatusBadRequest, ErrorResponse{Error: "Name is required"})
		return
	}

	h.migrate()

	if err := h.profiles.Write(profile); err != nil {
		h.logger.Error("failed to save profile", zap.String("id", profile.ID), zap.Error(err))
		h.profileJSON(c, http.StatusInternalServerError, ErrorResponse{Error: "save_failed: " + err.Error()})
		return
	}

	if wantsJSON(c, fields.Get("_view")) {
		h.profileJSON(c, http.StatusOK, ProfileSaveResponse{OK: true, Profile: profile})
		return
	}

	h.renderHTML(c, http.StatusOK, profileSavedPage, profileSavedData{
		layoutData: layoutData{Title: "Profile Saved", Subtitle: "Action completed successfully.", Footer: "WebServ • CGI • Profiles"},
		Profile:    profile,
	})
}

// GetProfile godoc
// @Summary      Get one profile card
// @Tags         Profiles
// @Produce      json
// @Param        id   path      string  true  "profile id"
// @Success      200  {object}  models.Profile
// @Failure      400  {object}  handler.ErrorResponse
// @Failure      404  {object}  handler.ErrorResponse
// @Router       /api/profiles/{id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Get(c.Param("id"))
	if err != nil {
		h.profileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteProfile godoc
// @Summary      Delete one profile card
// @Tags         Profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "profile id"
// @Success      200  {object}  object{ok=bool}
// @Failure      400  {object}  handler.ErrorResponse
// @Failure      401  {object}  handler.ErrorResponse
// @Failure      404  {object}  handler.ErrorResponse
// @Router       /api/profiles/{id} [delete]
func (h *Handler) DeleteProfile(c *gin.Context) {
	id := c.Param("id")
	if err := h.profiles.Delete(id); err != nil {
		h.profileError(c, err)
		return
	}
	h.logger.Info("profile deleted", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) profileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrUnsafeID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid card id"})
	case errors.Is(err, storage.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
	default:
		h.logger.Error("profile storage error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Profile storage error"})
	}
}
