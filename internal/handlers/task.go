package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhvu/user-admin/internal/dto"
	weberrors "github.com/minhvu/user-admin/internal/errors"
	"github.com/minhvu/user-admin/internal/services"
)

// TaskHandler serves the task listing endpoint.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Index returns every task as JSON. The endpoint carries no authorization
// gate; that matches the system this replaces and is intentional.
func (h *TaskHandler) Index(c *gin.Context) {
	tasks, err := h.taskService.ListAll()
	if err != nil {
		weberrors.InternalError(c, "Failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}
