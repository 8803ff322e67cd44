package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weblanjutan/jobseeker-api/internal/apperror"
	"github.com/weblanjutan/jobseeker-api/internal/auth"
	"github.com/weblanjutan/jobseeker-api/internal/models"
)

func (h *Handler) CreateApplication(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.ApplicationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionCreateApplication, req.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only job seekers can apply for jobs, and only as themselves"})
		return
	}

	application, err := h.Applications.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *Handler) ListApplications(c *gin.Context) {
	skip, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	status, err := applicationStatusFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	applications, total, err := h.Applications.List(c.Request.Context(), status, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPage(applications, total, skip, limit))
}

// applicationStatusFromQuery reads the optional status filter; unknown
// values are rejected rather than silently matching nothing.
func applicationStatusFromQuery(c *gin.Context) (models.ApplicationStatus, error) {
	status := models.ApplicationStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return "", apperror.Newf(apperror.ErrBadRequest, "status must be one of: Pending, Accepted, Rejected")
	}
	return status, nil
}

func (h *Handler) GetApplication(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	application, err := h.Applications.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *Handler) ListApplicationsByUser(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, err)
		return
	}
	skip, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	applications, total, err := h.Applications.ListByUser(c.Request.Context(), userID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPage(applications, total, skip, limit))
}

func (h *Handler) ListApplicationsByJobPost(c *gin.Context) {
	jobPostID, err := pathID(c, "job_post_id")
	if err != nil {
		respondError(c, err)
		return
	}
	skip, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	applications, total, err := h.Applications.ListByJobPost(c.Request.Context(), jobPostID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPage(applications, total, skip, limit))
}

// UpdateApplication allows the owning seeker, an employer whose job
// post the application targets, or an admin to apply changes.
func (h *Handler) UpdateApplication(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	existing, err := h.Applications.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	allowed := auth.Can(caller.Role, caller.ID, auth.ActionManageApplication, existing.UserID)
	if !allowed && caller.Role == models.RoleEmployer {
		post, err := h.JobPosts.Get(c.Request.Context(), existing.JobPostID)
		if err == nil {
			allowed = auth.Can(caller.Role, caller.ID, auth.ActionReviewApplication, post.UserID)
		}
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this application"})
		return
	}

	var req models.ApplicationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	application, err := h.Applications.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *Handler) DeleteApplication(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	existing, err := h.Applications.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionManageApplication, existing.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this application"})
		return
	}

	if err := h.Applications.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Application %d deleted successfully", id)})
}
