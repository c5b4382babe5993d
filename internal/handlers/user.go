package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gitchest/gitchest/internal/apperror"
	"github.com/gitchest/gitchest/internal/services"
)

type UserHandler struct {
	userService   *services.UserService
	exportService *services.ExportService
}

func NewUserHandler(userService *services.UserService, exportService *services.ExportService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		exportService: exportService,
	}
}

// GetFullUser returns the unified view for one tracked user
func (h *UserHandler) GetFullUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.userService.GetFullUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// AddUser registers a new user for tracking
func (h *UserHandler) AddUser(c *gin.Context) {
	var req struct {
		User     string `json:"user" binding:"required"`
		Platform string `json:"platform" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user and platform are required"})
		return
	}

	exists, err := h.userService.Exists(c.Request.Context(), req.User)
	if err != nil {
		respondError(c, err)
		return
	}
	if exists {
		respondError(c, apperror.Conflict(req.User))
		return
	}

	id, err := h.userService.AddUser(c.Request.Context(), req.User, req.Platform)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Exists probes whether an external username is already tracked
func (h *UserHandler) Exists(c *gin.Context) {
	username := c.Query("user")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user query parameter is required"})
		return
	}

	exists, err := h.userService.Exists(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// RemoveUser deletes a tracked user
func (h *UserHandler) RemoveUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.userService.RemoveUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportUsers streams the tracked-user report as an xlsx attachment
func (h *UserHandler) ExportUsers(c *gin.Context) {
	f, err := h.exportService.ExportUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="users.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// respondError maps the error taxonomy onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperror.ErrFetch):
		status = http.StatusBadGateway
	case errors.Is(err, apperror.ErrUnknownPlatform), errors.Is(err, apperror.ErrStorage):
		// Corrupted state and storage failures are both server-side faults.
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{"error": fmt.Sprintf("%v", err)})
}
