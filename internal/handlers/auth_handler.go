package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weblanjutan/jobseeker-api/internal/auth"
	"github.com/weblanjutan/jobseeker-api/internal/models"
)

// Register creates a new account. Open to anyone; the hashed password
// never appears in the response.
func (h *Handler) Register(c *gin.Context) {
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

type tokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Token exchanges form-encoded credentials for a bearer token. The
// username field carries the email.
func (h *Handler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), req.Username)
	if err != nil || !auth.CheckPasswordHash(req.Password, user.HashedPassword) {
		respondInvalidCredentials(c)
		return
	}

	token, err := h.Tokens.Issue(user.ID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func respondInvalidCredentials(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
}

// Me returns the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

type verifyPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyPassword checks credentials without issuing a token.
func (h *Handler) VerifyPassword(c *gin.Context) {
	var req verifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"verified": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": auth.CheckPasswordHash(req.Password, user.HashedPassword)})
}
