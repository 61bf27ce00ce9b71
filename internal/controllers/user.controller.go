package controllers

import (
	"net/http"

	"fitnessforge/internal/metrics"
	"fitnessforge/internal/services"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" example:"jdoe@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

type UserController struct {
	accounts *services.AccountService
	metrics  *metrics.Manager
}

func NewUserController(accounts *services.AccountService, m *metrics.Manager) *UserController {
	return &UserController{accounts: accounts, metrics: m}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account together with a placeholder profile
// @Tags users
// @Accept json
// @Produce json
// @Param user body services.RegisterInput true "Account data"
// @Success 201 {object} map[string]interface{} "User registered successfully"
// @Failure 400 {object} map[string]interface{} "Missing fields or user already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users/register [post]
func (uc *UserController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	user, err := uc.accounts.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	uc.metrics.CounterRegistrations.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User registered successfully",
		"data":    user,
	})
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a bearer token valid for one hour
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} map[string]interface{} "Invalid credentials"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Router /users/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, user, err := uc.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data": gin.H{
			"token": token,
			"user":  user,
		},
	})
}

// Current godoc
// @Summary Current user
// @Description Return the authenticated user and their profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/current [get]
func (uc *UserController) Current(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, profile, err := uc.accounts.Current(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data": gin.H{
			"user":    user,
			"profile": profile,
		},
	})
}
