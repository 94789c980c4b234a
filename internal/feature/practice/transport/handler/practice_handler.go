package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "tuneeng_backend/internal/feature/auth/transport/http/dto"
	"tuneeng_backend/internal/feature/practice/domain/entity"
	"tuneeng_backend/internal/feature/practice/transport/http/dto"
	"tuneeng_backend/internal/feature/practice/usecase"
)

// PracticeHandler serves the practice exercise and session endpoints.
type PracticeHandler struct {
	practice usecase.PracticeUsecase
}

func NewPracticeHandler(practice usecase.PracticeUsecase) *PracticeHandler {
	return &PracticeHandler{practice: practice}
}

// Exercises handles GET /api/practice/exercises.
func (h *PracticeHandler) Exercises(c *gin.Context) {
	skill := entity.SkillType(c.Query("skill_type"))

	exercises, err := h.practice.Exercises(c.Request.Context(), skill)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownSkillType) {
			c.JSON(http.StatusBadRequest, authdto.ErrorRes{Error: "unknown skill type"})
			return
		}
		slog.Error("exercise listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, authdto.ErrorRes{Error: "internal server error"})
		return
	}

	res := make([]dto.ExerciseRes, 0, len(exercises))
	for _, e := range exercises {
		res = append(res, dto.NewExerciseRes(e))
	}
	c.JSON(http.StatusOK, res)
}

// StartSession handles POST /api/practice/sessions.
func (h *PracticeHandler) StartSession(c *gin.Context) {
	var req dto.SessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, authdto.ErrorRes{Error: "invalid request"})
		return
	}

	session, err := h.practice.StartSession(c.Request.Context(), req.SkillType, req.ExerciseID)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownSkillType) {
			c.JSON(http.StatusBadRequest, authdto.ErrorRes{Error: "unknown skill type"})
			return
		}
		slog.Error("session start failed", "error", err)
		c.JSON(http.StatusInternalServerError, authdto.ErrorRes{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewSessionRes(session))
}

// Feedback handles POST /api/practice/feedback.
func (h *PracticeHandler) Feedback(c *gin.Context) {
	var req dto.FeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, authdto.ErrorRes{Error: "invalid request"})
		return
	}

	feedback, err := h.practice.Feedback(c.Request.Context(), req.SessionID)
	if err != nil {
		slog.Error("feedback evaluation failed", "error", err, "session_id", req.SessionID)
		c.JSON(http.StatusInternalServerError, authdto.ErrorRes{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewFeedbackRes(feedback))
}

// Session handles GET /api/practice/sessions/:id.
func (h *PracticeHandler) Session(c *gin.Context) {
	session, err := h.practice.Session(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error("session lookup failed", "error", err, "session_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, authdto.ErrorRes{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewSessionRes(session))
}
