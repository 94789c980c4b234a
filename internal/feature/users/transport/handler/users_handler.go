package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tuneeng_backend/internal/feature/auth/transport/http/dto"
	"tuneeng_backend/internal/feature/users/usecase"
	jwtmw "tuneeng_backend/internal/platform/jwt"
)

// UsersHandler serves the user directory endpoints.
type UsersHandler struct {
	users usecase.UsersUsecase
}

func NewUsersHandler(users usecase.UsersUsecase) *UsersHandler {
	return &UsersHandler{users: users}
}

// List handles GET /api/users.
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("user list failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}

	res := make([]dto.UserRes, 0, len(users))
	for _, u := range users {
		res = append(res, dto.NewUserRes(u))
	}
	c.JSON(http.StatusOK, res)
}

// Get handles GET /api/users/:id. Users may only read their own record.
func (h *UsersHandler) Get(c *gin.Context) {
	requesterID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid or expired token"})
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid user id"})
		return
	}

	user, err := h.users.Get(c.Request.Context(), requesterID, uint(targetID))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			slog.Warn("cross-user lookup rejected", "requester_id", requesterID, "target_id", targetID, "remote_addr", c.ClientIP())
			c.JSON(http.StatusForbidden, dto.ErrorRes{Error: "not authorized to access this user"})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "user not found"})
		default:
			slog.Error("user lookup failed", "error", err, "target_id", targetID)
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewUserRes(user))
}
