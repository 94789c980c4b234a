// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tuneeng_backend/internal/feature/auth/domain/entity"
	"tuneeng_backend/internal/feature/auth/transport/http/dto"
	"tuneeng_backend/internal/feature/auth/usecase"
	jwtmw "tuneeng_backend/internal/platform/jwt"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user from validated registration input.
	Register(ctx context.Context, email, password, fullName, username string) (*entity.User, error)
	// Login authenticates a user and returns an access token on success.
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	// CurrentUser resolves a token subject to its user record.
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration endpoint.
// - 400 on malformed input or a failed validation rule
// - 409 on an email/username conflict
// - 201 with the public user projection on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.FullName, req.Username)
	if err != nil {
		var ve *usecase.ValidationError
		switch {
		case errors.As(err, &ve):
			slog.Warn("register rejected", "field", ve.Field, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: ve.Message})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("register conflict", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorRes{Error: "email already registered"})
		case errors.Is(err, usecase.ErrUsernameAlreadyTaken):
			slog.Warn("register conflict", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorRes{Error: "username already taken"})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		}
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserRes(user))
}

// Login handles the user login endpoint.
// The error surface is identical for an unknown email and a wrong password
// to prevent account enumeration.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenRes{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.NewUserRes(user),
	})
}

// Logout handles the logout endpoint. Tokens are stateless, so logout is a
// client-side operation; the endpoint exists for API symmetry and future
// extension such as token blacklisting.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageRes{Message: "logged out successfully"})
}

// Me returns the authenticated user's public projection. A token whose
// subject no longer exists gets the same generic 401 as an invalid token.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid or expired token"})
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			slog.Warn("token subject no longer exists", "user_id", userID, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid or expired token"})
			return
		}
		slog.Error("current user lookup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserRes(user))
}
