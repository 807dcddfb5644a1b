package api

import (
	"alcyxob/fitness-recommender/internal/domain"
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, login and the caller's profile.
type AuthHandler struct {
	authService    service.AuthService
	profileService service.ProfileService
	log            *logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, profileService service.ProfileService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, profileService: profileService, log: log}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Name         string              `json:"name" binding:"required"`
	Email        string              `json:"email" binding:"required,email"`
	Password     string              `json:"password" binding:"required,min=8"`
	Goal         domain.Goal         `json:"goal"`
	FitnessLevel domain.FitnessLevel `json:"fitnessLevel"`
}

// UserResponse excludes sensitive info like password hash
type UserResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Role         domain.Role         `json:"role"`
	Goal         domain.Goal         `json:"goal"`
	FitnessLevel domain.FitnessLevel `json:"fitnessLevel"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	Goal         domain.Goal         `json:"goal" binding:"required"`
	FitnessLevel domain.FitnessLevel `json:"fitnessLevel" binding:"required"`
}

type SetRoleRequest struct {
	Role domain.Role `json:"role" binding:"required"`
}

func mapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID.Hex(),
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		Goal:         user.Goal,
		FitnessLevel: user.FitnessLevel,
		CreatedAt:    user.CreatedAt,
	}
}

// --- Handler Methods ---

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 201 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Goal:         req.Goal,
		FitnessLevel: req.FitnessLevel,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidGoal),
			errors.Is(err, service.ErrInvalidFitnessLevel),
			errors.Is(err, service.ErrMissingCredentials):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("Registration failed", "error", err)
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, mapUserToResponse(user))
}

// Login godoc
// @Summary Log in and receive a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} gin.H "Authentication failed"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			h.log.Error("Login failed", "error", err)
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: mapUserToResponse(user)})
}

// Me returns the authenticated user's profile.
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	user, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.writeProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapUserToResponse(user))
}

// UpdateProfile sets the authenticated user's goal and fitness level.
// @Router /me/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	user, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req.Goal, req.FitnessLevel)
	if err != nil {
		h.writeProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapUserToResponse(user))
}

// SetRole grants a role to another user. Admin only.
// @Router /users/{id}/role [put]
func (h *AuthHandler) SetRole(c *gin.Context) {
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.profileService.SetRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		h.writeProfileError(c, err)
		return
	}
	h.log.Info("Role changed", "user_id", user.ID.Hex(), "role", user.Role)
	c.JSON(http.StatusOK, mapUserToResponse(user))
}

func (h *AuthHandler) writeProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidGoal), errors.Is(err, service.ErrInvalidFitnessLevel), errors.Is(err, service.ErrInvalidRole):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidUserID):
		abortWithError(c, http.StatusNotFound, "User not found")
	default:
		h.log.Error("Profile request failed", "error", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load profile")
	}
}
