package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/reorder"
	"github.com/thenoetrevino/dragboard/internal/services/task"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// TitleRequest is the body of board and column create/rename
type TitleRequest struct {
	Title string `json:"title"`
}

// MoveColumnRequest is the body of POST /api/columns/:id/move
type MoveColumnRequest struct {
	DestIndex *int `json:"destIndex"`
}

// MoveTaskRequest is the body of POST /api/tasks/move
type MoveTaskRequest struct {
	TaskID         types.TaskID   `json:"taskId"`
	SourceColumnID types.ColumnID `json:"sourceColumnId"`
	DestColumnID   types.ColumnID `json:"destColumnId"`
	DestIndex      *int           `json:"destIndex"`
}

// CreateTaskRequest is the body of POST /api/tasks
type CreateTaskRequest struct {
	ColumnID    types.ColumnID `json:"columnId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
}

type handler struct {
	svc    Services
	logger *slog.Logger
}

func (h *handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) GetBoard(c *gin.Context) {
	b, err := h.svc.Board.GetBoard(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *handler) CreateBoard(c *gin.Context) {
	var req TitleRequest
	if !bind(c, &req) {
		return
	}
	b, err := h.svc.Board.CreateBoard(c.Request.Context(), req.Title)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *handler) UpdateBoard(c *gin.Context) {
	var req TitleRequest
	if !bind(c, &req) {
		return
	}
	b, err := h.svc.Board.UpdateBoard(c.Request.Context(), req.Title)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *handler) CreateColumn(c *gin.Context) {
	var req TitleRequest
	if !bind(c, &req) {
		return
	}
	col, err := h.svc.Column.CreateColumn(c.Request.Context(), req.Title)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, col)
}

func (h *handler) UpdateColumn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req TitleRequest
	if !bind(c, &req) {
		return
	}
	col, err := h.svc.Column.UpdateColumn(c.Request.Context(), types.ColumnID(id), req.Title)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

func (h *handler) DeleteColumn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Column.DeleteColumn(c.Request.Context(), types.ColumnID(id)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) MoveColumn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req MoveColumnRequest
	if !bind(c, &req) {
		return
	}
	if req.DestIndex == nil {
		abortWithError(c, fmt.Errorf("%w: destIndex is required", models.ErrValidation))
		return
	}
	m := reorder.ColumnMove{ColumnID: types.ColumnID(id), DestIndex: *req.DestIndex}
	if err := h.svc.Column.MoveColumn(c.Request.Context(), m); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if !bind(c, &req) {
		return
	}
	t, err := h.svc.Task.CreateTask(c.Request.Context(), task.CreateTaskRequest{
		ColumnID:    req.ColumnID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *handler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch models.TaskPatch
	if !bind(c, &patch) {
		return
	}
	t, err := h.svc.Task.UpdateTask(c.Request.Context(), types.TaskID(id), patch)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *handler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Task.DeleteTask(c.Request.Context(), types.TaskID(id)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) MoveTask(c *gin.Context) {
	var req MoveTaskRequest
	if !bind(c, &req) {
		return
	}
	if req.DestIndex == nil {
		abortWithError(c, fmt.Errorf("%w: destIndex is required", models.ErrValidation))
		return
	}
	m := reorder.TaskMove{
		TaskID:         req.TaskID,
		SourceColumnID: req.SourceColumnID,
		DestColumnID:   req.DestColumnID,
		DestIndex:      *req.DestIndex,
	}
	if err := h.svc.Task.MoveTask(c.Request.Context(), m); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bind decodes the JSON body into dst, answering 400 on malformed input
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, fmt.Errorf("%w: invalid request body: %v", models.ErrValidation, err))
		return false
	}
	return true
}

// pathID parses the :id path parameter, answering 400 when it is not a positive integer
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		abortWithError(c, fmt.Errorf("%w: %q is not a valid id", models.ErrValidation, c.Param("id")))
		return 0, false
	}
	return id, true
}
