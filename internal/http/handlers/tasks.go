package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"taskboard/internal/domain"
	"taskboard/internal/logger"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	maxTitleLen     = 255
)

type TaskCreateRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description *string `json:"description"`
	Status      string  `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

// optionalField distinguishes an absent JSON field from an explicit null.
// Absent means "leave unchanged"; null means "explicitly cleared".
type optionalField struct {
	set   bool
	valid bool
	value string
}

func (o *optionalField) UnmarshalJSON(b []byte) error {
	o.set = true
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(b, &o.value); err != nil {
		return err
	}
	o.valid = true
	return nil
}

type TaskUpdateRequest struct {
	Title       optionalField `json:"title"`
	Description optionalField `json:"description"`
	Status      optionalField `json:"status"`
}

// ListTasks handles GET /tasks with page/page_size pagination. skip is
// derived here; the service only ever sees skip and limit.
func (h *Handler) ListTasks(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		validationError(c, []fieldError{{Field: "page", Error: "must be an integer >= 1"}})
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 || pageSize > maxPageSize {
		validationError(c, []fieldError{{Field: "page_size", Error: "must be an integer between 1 and 100"}})
		return
	}

	skip := (page - 1) * pageSize
	tasks, err := h.Tasks.List(c.Request.Context(), skip, pageSize)
	if err != nil {
		logger.Error("list tasks failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "task not found"})
			return
		}
		logger.Error("get task failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, bindingDetail(err))
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), req.Title, req.Description, domain.TaskStatus(req.Status))
	if err != nil {
		logger.Error("create task failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /tasks/:id. The body may carry any subset of title,
// description and status; omitted fields keep their value. An explicit null
// clears description but is rejected for title and status.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, bindingDetail(err))
		return
	}

	patch, detail := buildPatch(req)
	if detail != nil {
		validationError(c, detail)
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "task not found"})
			return
		}
		logger.Error("update task failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "task not found"})
			return
		}
		logger.Error("delete task failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		validationError(c, []fieldError{{Field: "id", Error: "must be an integer"}})
		return 0, false
	}
	return id, true
}

// buildPatch validates the tri-state update request and converts it into a
// domain patch. Returns non-nil detail on validation failure.
func buildPatch(req TaskUpdateRequest) (domain.TaskPatch, any) {
	var patch domain.TaskPatch
	var detail []fieldError

	if req.Title.set {
		if !req.Title.valid {
			detail = append(detail, fieldError{Field: "title", Error: "must not be null"})
		} else if n := utf8.RuneCountInString(req.Title.value); n < 1 || n > maxTitleLen {
			detail = append(detail, fieldError{Field: "title", Error: "must be between 1 and 255 characters"})
		} else {
			title := req.Title.value
			patch.Title = &title
		}
	}

	if req.Description.set {
		patch.DescriptionSet = true
		if req.Description.valid {
			desc := req.Description.value
			patch.Description = &desc
		}
	}

	if req.Status.set {
		if !req.Status.valid {
			detail = append(detail, fieldError{Field: "status", Error: "must not be null"})
		} else if status := domain.TaskStatus(req.Status.value); !status.Valid() {
			detail = append(detail, fieldError{Field: "status", Error: "must be one of: pending, in_progress, completed"})
		} else {
			patch.Status = &status
		}
	}

	if detail != nil {
		return domain.TaskPatch{}, detail
	}
	return patch, nil
}
