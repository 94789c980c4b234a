package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "tuneeng_backend/internal/feature/auth/transport/http/dto"
	"tuneeng_backend/internal/feature/contact/usecase"
)

// submitReq is the contact form body.
type submitReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// submitRes acknowledges a stored submission.
type submitRes struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submission_id"`
}

// ContactHandler serves the contact form endpoints.
type ContactHandler struct {
	contact usecase.ContactUsecase
}

func NewContactHandler(contact usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit handles POST /api/contact/submit.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, authdto.ErrorRes{Error: "invalid request"})
		return
	}

	submission, err := h.contact.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		slog.Error("contact submission failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, authdto.ErrorRes{Error: "failed to process your submission, please try again later"})
		return
	}

	slog.Info("contact submission received", "submission_id", submission.SubmissionID, "email", req.Email)
	c.JSON(http.StatusCreated, submitRes{
		Success:      true,
		Message:      "Thank you for contacting us! We'll get back to you soon.",
		SubmissionID: submission.SubmissionID,
	})
}

// Health handles GET /api/contact/health.
func (h *ContactHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "contact"})
}
