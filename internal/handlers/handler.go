package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weblanjutan/jobseeker-api/internal/apperror"
	"github.com/weblanjutan/jobseeker-api/internal/auth"
	"github.com/weblanjutan/jobseeker-api/internal/middleware"
	"github.com/weblanjutan/jobseeker-api/internal/models"
	"github.com/weblanjutan/jobseeker-api/internal/sequence"
	"github.com/weblanjutan/jobseeker-api/internal/store"
	"github.com/weblanjutan/jobseeker-api/internal/validation"
)

// Handler bundles the entity stores and the token manager for the
// HTTP layer.
type Handler struct {
	Users        *store.Users
	Profiles     *store.Profiles
	JobPosts     *store.JobPosts
	Applications *store.Applications
	Tokens       *auth.TokenManager
}

func NewHandler(db *mongo.Database, tokens *auth.TokenManager) *Handler {
	seq := sequence.NewStore(db)
	return &Handler{
		Users:        store.NewUsers(db, seq),
		Profiles:     store.NewProfiles(db, seq),
		JobPosts:     store.NewJobPosts(db, seq),
		Applications: store.NewApplications(db, seq),
		Tokens:       tokens,
	}
}

func respondError(c *gin.Context, err error) {
	status := apperror.MapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": validation.FormatError(err)})
}

func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
	}
	return user, ok
}

// parsePagination reads skip (>=0, default 0) and limit (1-100,
// default 10) query parameters.
func parsePagination(c *gin.Context) (skip, limit int, err error) {
	skip, err = queryIntDefault(c, "skip", 0)
	if err != nil || skip < 0 {
		return 0, 0, apperror.Newf(apperror.ErrBadRequest, "skip must be a non-negative integer")
	}
	limit, err = queryIntDefault(c, "limit", 10)
	if err != nil || limit < 1 || limit > 100 {
		return 0, 0, apperror.Newf(apperror.ErrBadRequest, "limit must be an integer between 1 and 100")
	}
	return skip, limit, nil
}

func queryIntDefault(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apperror.Newf(apperror.ErrBadRequest, "Invalid %s", name)
	}
	return id, nil
}
