/**
* Name:        auth_handler.go
* Description: 관리자 로그인, JWT 발급
 */
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// /login 요청 바디
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"password123"`
}

type LoginSuccessResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// Login godoc
// @Summary      Admin login
// @Description  Exchanges the admin credentials for a JWT accepted by the delete endpoints.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "admin credentials"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse "admin login disabled"
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	if h.issuer == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Admin login is disabled"})
		return
	}

	var credentials LoginRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}
	if err := json.Unmarshal(rawData, &credentials); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "JSON parsing error: " + err.Error()})
		return
	}

	if err := h.issuer.CheckCredentials(credentials.Username, credentials.Password); err != nil {
		h.logger.Warn("admin login rejected", zap.String("username", credentials.Username), zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	tokenString, err := h.issuer.GenerateToken(credentials.Username)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, LoginSuccessResponse{Token: tokenString})
}
