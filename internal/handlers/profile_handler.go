package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weblanjutan/jobseeker-api/internal/auth"
	"github.com/weblanjutan/jobseeker-api/internal/models"
)

func (h *Handler) CreateProfile(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.ProfileCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionManageProfile, req.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to create this profile"})
		return
	}

	profile, err := h.Profiles.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *Handler) ListProfiles(c *gin.Context) {
	skip, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	profiles, total, err := h.Profiles.List(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPage(profiles, total, skip, limit))
}

func (h *Handler) GetProfile(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	profile, err := h.Profiles.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) GetProfileByUser(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, err)
		return
	}
	profile, err := h.Profiles.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	existing, err := h.Profiles.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionManageProfile, existing.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this profile"})
		return
	}

	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	profile, err := h.Profiles.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateProfileByUser(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, err)
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionManageProfile, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this profile"})
		return
	}

	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	profile, err := h.Profiles.UpdateByUser(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) DeleteProfile(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	existing, err := h.Profiles.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionManageProfile, existing.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this profile"})
		return
	}

	if err := h.Profiles.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Profile %d deleted successfully", id)})
}

func (h *Handler) DeleteProfileByUser(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, err)
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionManageProfile, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this profile"})
		return
	}

	if err := h.Profiles.DeleteByUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Profile for user %d deleted successfully", userID)})
}
