package handler

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"warcat/internal/model"
	"warcat/internal/service"
	"warcat/internal/storage"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserHandler handles registration, login, password reset and
// profile reads.
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles user registration
// @Router /api/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"statusTxt": "error", "message": err.Error()})
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	token, user, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": "User already registered with this email."})
			return
		}
		log.Printf("[handler] register %s: %v", req.Email, err)
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"statusTxt": "success",
		"message":   "Registration successful!",
		"token":     token,
		"payment":   user.Payment,
	})
}

// Login handles user login
// @Router /api/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"statusTxt": "error", "message": err.Error()})
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	token, user, err := h.users.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"statusTxt": "error", "message": "This Email Is not registered!"})
		case errors.Is(err, service.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"statusTxt": "error", "message": "Wrong password!"})
		default:
			log.Printf("[handler] login %s: %v", req.Email, err)
			internalError(c)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"statusTxt": "success",
		"message":   "Login successful!",
		"token":     token,
		"payment":   user.Payment,
	})
}

// ResetPassword handles password reset for the email in the query
// @Router /api/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": err.Error()})
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": "Passwords do not match."})
		return
	}
	email := strings.TrimSpace(strings.ToLower(c.Query("email")))
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": "Email is required."})
		return
	}
	if !emailRegex.MatchString(email) {
		c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": "Invalid email format."})
		return
	}

	if err := h.users.ResetPassword(c.Request.Context(), email, req.Password); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"statusTxt": "error", "message": "This Email Is not registered!"})
			return
		}
		log.Printf("[handler] reset password %s: %v", email, err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statusTxt": "success", "message": "Password changed!"})
}

// Profile returns the public profile of a user
// @Router /api/profile [post]
func (h *UserHandler) Profile(c *gin.Context) {
	var req model.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": err.Error()})
		return
	}
	profile, err := h.users.Profile(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"statusTxt": "error", "message": "User not found."})
			return
		}
		log.Printf("[handler] profile %s: %v", req.ID, err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"statusTxt":   "success",
		"message":     "Profile retrieved successfully.",
		"profileData": profile,
	})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"statusTxt": "error",
		"message":   "An error occurred while processing your request.",
	})
}
