package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authdto "tuneeng_backend/internal/feature/auth/transport/http/dto"
	"tuneeng_backend/internal/feature/tracker/usecase"
	jwtmw "tuneeng_backend/internal/platform/jwt"
)

// TrackerHandler serves the progress tracking endpoints.
type TrackerHandler struct {
	tracker usecase.TrackerUsecase
}

func NewTrackerHandler(tracker usecase.TrackerUsecase) *TrackerHandler {
	return &TrackerHandler{tracker: tracker}
}

// Progress handles GET /api/tracker/progress.
func (h *TrackerHandler) Progress(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, authdto.ErrorRes{Error: "invalid or expired token"})
		return
	}

	days := usecase.DefaultDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, authdto.ErrorRes{Error: "invalid days"})
			return
		}
		days = parsed
	}

	entries, err := h.tracker.Progress(c.Request.Context(), userID, c.Query("skill_type"), days)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDayRange) {
			c.JSON(http.StatusBadRequest, authdto.ErrorRes{Error: err.Error()})
			return
		}
		slog.Error("progress fetch failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, authdto.ErrorRes{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Summary handles GET /api/tracker/summary.
func (h *TrackerHandler) Summary(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, authdto.ErrorRes{Error: "invalid or expired token"})
		return
	}

	summary, err := h.tracker.Summary(c.Request.Context(), userID)
	if err != nil {
		slog.Error("summary fetch failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, authdto.ErrorRes{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
