package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "tuneeng_backend/internal/feature/auth/transport/http/dto"
	"tuneeng_backend/internal/feature/profile/usecase"
	jwtmw "tuneeng_backend/internal/platform/jwt"
)

// updateReq is the PUT /api/profile request body. All fields optional.
type updateReq struct {
	FullName  *string `json:"full_name"`
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// ProfileHandler serves the profile endpoints.
type ProfileHandler struct {
	profile usecase.ProfileUsecase
}

func NewProfileHandler(profile usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, authdto.ErrorRes{Error: "invalid or expired token"})
		return
	}

	profile, err := h.profile.Profile(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, userID)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Update handles PUT /api/profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, authdto.ErrorRes{Error: "invalid or expired token"})
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, authdto.ErrorRes{Error: "invalid request"})
		return
	}

	profile, err := h.profile.Update(c.Request.Context(), userID, usecase.ProfileUpdate{
		FullName:  req.FullName,
		Username:  req.Username,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		h.writeError(c, err, userID)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Stats handles GET /api/profile/stats.
func (h *ProfileHandler) Stats(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, authdto.ErrorRes{Error: "invalid or expired token"})
		return
	}

	stats, err := h.profile.Stats(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, userID)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ProfileHandler) writeError(c *gin.Context, err error, userID uint) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.JSON(http.StatusUnauthorized, authdto.ErrorRes{Error: "invalid or expired token"})
		return
	}
	slog.Error("profile request failed", "error", err, "user_id", userID)
	c.JSON(http.StatusInternalServerError, authdto.ErrorRes{Error: "internal server error"})
}
