package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"warcat/internal/model"
	"warcat/internal/service"
	"warcat/internal/storage"
)

// TaskHandler handles task create/edit.
type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create handles task creation
// @Router /api/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req model.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": err.Error()})
		return
	}
	if _, err := h.tasks.Create(c.Request.Context(), &req); err != nil {
		log.Printf("[handler] create task: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"statusTxt": "success", "message": "Task added successfully"})
}

// Edit handles a partial task update keyed by the taskId query
// @Router /api/tasks [put]
func (h *TaskHandler) Edit(c *gin.Context) {
	taskID := c.Query("taskId")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": "taskId is required"})
		return
	}
	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": err.Error()})
		return
	}
	task, err := h.tasks.Edit(c.Request.Context(), taskID, &patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"statusTxt": "error", "message": "Task not found"})
			return
		}
		log.Printf("[handler] edit task %s: %v", taskID, err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"statusTxt": "success",
		"message":   "Task updated successfully",
		"task":      task,
	})
}
