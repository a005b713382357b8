package handler

import (
	"net/http"

	"hotel_management/internal/middleware"
	"hotel_management/internal/model"
	"hotel_management/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles housekeeping task requests
type TaskHandler struct {
	service service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{service: s}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req model.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create task")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Task created successfully", "id": task.ID})
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	tasks, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "retrieve tasks")
		return
	}
	c.JSON(http.StatusOK, mapSlice(tasks, newTaskResponse))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := paramID(c, "task")
	if !ok {
		return
	}

	task, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve task")
		return
	}
	c.JSON(http.StatusOK, newTaskResponse(*task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := paramID(c, "task")
	if !ok {
		return
	}
	var req model.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "update task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully"})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := paramID(c, "task")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// RegisterTaskRoutes registers the /tasks routes. Staff can read and update
// tasks but only admins create or delete them.
func (h *TaskHandler) RegisterTaskRoutes(rg *gin.RouterGroup, verifier middleware.TokenVerifier) {
	adminOnly := middleware.Authorize(verifier, model.RoleAdmin)
	adminOrStaff := middleware.Authorize(verifier, model.RoleAdmin, model.RoleStaff)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("/create", adminOnly, h.CreateTask)
		tasks.GET("/", adminOrStaff, h.GetTasks)
		tasks.GET("/:id", adminOrStaff, h.GetTask)
		tasks.PUT("/:id", adminOrStaff, h.UpdateTask)
		tasks.DELETE("/:id", adminOnly, h.DeleteTask)
	}
}
