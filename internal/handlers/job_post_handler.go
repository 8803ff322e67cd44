package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/weblanjutan/jobseeker-api/internal/apperror"
	"github.com/weblanjutan/jobseeker-api/internal/auth"
	"github.com/weblanjutan/jobseeker-api/internal/models"
)

func (h *Handler) CreateJobPost(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionCreateJobPost, caller.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only employers can create job posts"})
		return
	}

	var req models.JobPostCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	post, err := h.JobPosts.Create(c.Request.Context(), caller.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *Handler) ListJobPosts(c *gin.Context) {
	skip, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	filter, err := jobPostFilterFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	posts, total, err := h.JobPosts.List(c.Request.Context(), filter, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPage(posts, total, skip, limit))
}

func (h *Handler) GetJobPost(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	post, err := h.JobPosts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) ListJobPostsByUser(c *gin.Context) {
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
	posts, total, err := h.JobPosts.ListByUser(c.Request.Context(), userID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPage(posts, total, skip, limit))
}

func (h *Handler) UpdateJobPost(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	existing, err := h.JobPosts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionManageJobPost, existing.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to edit this job post"})
		return
	}

	var req models.JobPostUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	post, err := h.JobPosts.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) DeleteJobPost(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	existing, err := h.JobPosts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !auth.Can(caller.Role, caller.ID, auth.ActionManageJobPost, existing.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this job post"})
		return
	}

	if err := h.JobPosts.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Job post %d deleted successfully", id)})
}

func jobPostFilterFromQuery(c *gin.Context) (models.JobPostFilter, error) {
	filter := models.JobPostFilter{
		JobType: c.Query("job_type"),
		Title:   c.Query("title"),
	}
	var err error
	if filter.MinSalary, err = optionalSalary(c, "min_salary"); err != nil {
		return filter, err
	}
	if filter.MaxSalary, err = optionalSalary(c, "max_salary"); err != nil {
		return filter, err
	}
	return filter, nil
}

func optionalSalary(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return nil, apperror.Newf(apperror.ErrBadRequest, "%s must be a non-negative integer", name)
	}
	return &val, nil
}
