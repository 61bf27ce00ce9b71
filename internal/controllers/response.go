package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"fitnessforge/internal/middleware"
	"fitnessforge/internal/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondError maps a service error onto the response envelope.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   verr.Error(),
		})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Username or Email already exists",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Email or password is incorrect",
		})
	case errors.Is(err, services.ErrUserNotFound):
		notFound(c, "User not found")
	case errors.Is(err, services.ErrProfileNotFound):
		notFound(c, "Profile not found")
	case errors.Is(err, services.ErrNotFound):
		notFound(c, "Not found")
	default:
		log.Errorf("%s %s: %s", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
			"error":   "Something went wrong, please try again later",
		})
	}
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":  "error",
		"message": message,
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request data",
		"error":   err.Error(),
	})
}

// currentUser reads the identity set by AuthMiddleware and answers 401 when
// it is missing.
func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return 0, false
	}
	return userID, true
}

// ownPathUser resolves :userId and rejects ids that are not the caller's.
func ownPathUser(c *gin.Context) (uint, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return 0, false
	}

	pathID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil || pathID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return 0, false
	}
	if uint(pathID) != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Forbidden",
			"error":   "You can only access your own data",
		})
		return 0, false
	}
	return userID, true
}
