package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/AlfonsoMarC/RogalikLessons/internal/model"
	"github.com/AlfonsoMarC/RogalikLessons/internal/response"
	"github.com/AlfonsoMarC/RogalikLessons/internal/service"
	"github.com/AlfonsoMarC/RogalikLessons/internal/validator"
)

// LessonHandler handles lesson management (CRUD).
type LessonHandler struct {
	lessonService *service.LessonService
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(lessonService *service.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

// ListLessons godoc
// GET /api/v1/lessons?from=RFC3339&to=RFC3339
// Lists lessons, most recent first. With both from and to set, only lessons
// starting inside [from, to) are returned (the calendar fetches one visible
// window at a time).
func (h *LessonHandler) ListLessons(c *gin.Context) {
	fromStr, toStr := c.Query("from"), c.Query("to")

	var (
		lessons []model.Lesson
		err     error
	)
	switch {
	case fromStr == "" && toStr == "":
		lessons, err = h.lessonService.List(c.Request.Context())
	default:
		var from, to time.Time
		if from, err = time.Parse(time.RFC3339, fromStr); err != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"from": "must be an RFC 3339 timestamp"})
			return
		}
		if to, err = time.Parse(time.RFC3339, toStr); err != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"to": "must be an RFC 3339 timestamp"})
			return
		}
		lessons, err = h.lessonService.ListInRange(c.Request.Context(), from, to)
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lessons": lessons})
}

// GetLesson godoc
// GET /api/v1/lessons/:id
// Returns one lesson.
func (h *LessonHandler) GetLesson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	lesson, err := h.lessonService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lesson": lesson})
}

// CreateLesson godoc
// POST /api/v1/lessons
// Creates a new lesson attached to either a student or a group.
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var req model.SaveLessonRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lesson := req.Lesson()
	if err := h.lessonService.Create(c.Request.Context(), lesson); err != nil {
		failLessonWrite(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lesson": lesson})
}

// UpdateLesson godoc
// PUT /api/v1/lessons/:id
// Replaces an existing lesson.
func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SaveLessonRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lesson := req.Lesson()
	lesson.ID = id
	if err := h.lessonService.Update(c.Request.Context(), lesson); err != nil {
		failLessonWrite(c, err)
		return
	}

	updated, err := h.lessonService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lesson": updated})
}

// DeleteLesson godoc
// DELETE /api/v1/lessons/:id
// Deletes a lesson.
func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.lessonService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "lesson deleted successfully"})
}

// failLessonWrite maps persistence errors on lesson writes: a foreign key
// violation means the referenced student/group does not exist, a check
// violation means the reference does not match the lesson type.
func failLessonWrite(c *gin.Context, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		case "23514": // check_violation
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
	}
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
