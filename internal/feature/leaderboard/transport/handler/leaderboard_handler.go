package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authdto "tuneeng_backend/internal/feature/auth/transport/http/dto"
	"tuneeng_backend/internal/feature/leaderboard/usecase"
)

// LeaderboardHandler serves the leaderboard endpoints.
type LeaderboardHandler struct {
	leaderboard usecase.LeaderboardUsecase
}

func NewLeaderboardHandler(leaderboard usecase.LeaderboardUsecase) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// Rankings handles GET /api/leaderboard.
func (h *LeaderboardHandler) Rankings(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, authdto.ErrorRes{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboard.Rankings(c.Request.Context(), c.Query("skill_type"), limit)
	if err != nil {
		slog.Error("leaderboard fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, authdto.ErrorRes{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UserRank handles GET /api/leaderboard/user/:id/rank.
func (h *LeaderboardHandler) UserRank(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, authdto.ErrorRes{Error: "invalid user id"})
		return
	}

	rank, err := h.leaderboard.UserRank(c.Request.Context(), uint(userID))
	if err != nil {
		slog.Error("user rank fetch failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, authdto.ErrorRes{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, rank)
}
