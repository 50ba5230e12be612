package handlers

import (
	"net/http"

	"teamwork-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// TaskHandler handles HTTP requests for tasks
type TaskHandler struct {
	taskService service.TaskServiceInterface
	validator   *validator.Validate
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface, validator *validator.Validate) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator,
	}
}

// Create handles POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), sess, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Get handles GET /tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// List handles GET /tasks. The team query parameter switches between the
// authoritative manager listing and one team partition's copies.
func (h *TaskHandler) List(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	if teamID := c.Query("team"); teamID != "" {
		tasks, err := h.taskService.ListForTeam(c.Request.Context(), sess, teamID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
		return
	}

	tasks, err := h.taskService.ListMaster(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// AssignTeamRequest represents the request to assign a task to a team
type AssignTeamRequest struct {
	TeamID *string `json:"team_id"`
}

// AssignTeam handles PUT /tasks/:id/team. A null team id returns the task
// to the unassigned pool.
func (h *TaskHandler) AssignTeam(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req AssignTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.taskService.AssignTeam(c.Request.Context(), sess, c.Param("id"), req.TeamID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task assignment updated"})
}

// RemoveFromTeam handles DELETE /tasks/:id/team
func (h *TaskHandler) RemoveFromTeam(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	if err := h.taskService.RemoveFromTeam(c.Request.Context(), sess, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task returned to unassigned pool"})
}

// Update handles PATCH /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), sess, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CompleteRequest represents the request to complete a task
type CompleteRequest struct {
	TeamID *string `json:"team_id"`
}

// Complete handles POST /tasks/:id/complete. Workers must name the team
// whose copy they are completing.
func (h *TaskHandler) Complete(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.taskService.Complete(c.Request.Context(), sess, c.Param("id"), req.TeamID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task completed"})
}

// Delete handles DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// History handles GET /tasks/:id/history
func (h *TaskHandler) History(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	history, err := h.taskService.History(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
