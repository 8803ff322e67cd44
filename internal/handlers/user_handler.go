package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weblanjutan/jobseeker-api/internal/auth"
	"github.com/weblanjutan/jobseeker-api/internal/models"
)

// CreateUser lets an admin provision accounts directly.
func (h *Handler) CreateUser(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionCreateUser, 0) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admin can create users"})
		return
	}

	var req models.UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user, err := h.Users.Create(c.Request.Context(), req, hashed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) ListUsers(c *gin.Context) {
	skip, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	users, total, err := h.Users.List(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPage(users, total, skip, limit))
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := h.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial update; admins may edit anyone, others
// only themselves. A new password is re-hashed before storage.
func (h *Handler) UpdateUser(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionManageUser, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this user"})
		return
	}

	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	var hashed string
	if req.Password != nil {
		hashed, err = auth.HashPassword(*req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
	}

	user, err := h.Users.Update(c.Request.Context(), id, req, hashed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionManageUser, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this user"})
		return
	}

	if err := h.Users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %d deleted successfully", id)})
}

func (h *Handler) ListUsersByRole(c *gin.Context) {
	role := models.Role(c.Param("role"))
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}
	skip, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	users, total, err := h.Users.ListByRole(c.Request.Context(), role, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPage(users, total, skip, limit))
}
