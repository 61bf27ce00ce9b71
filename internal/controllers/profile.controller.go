package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fitnessforge/internal/services"
	"fitnessforge/internal/units"

	"github.com/gin-gonic/gin"
)

const (
	profilePhotoField = "profilePhoto"
	maxPhotoSize      = 5 << 20
)

// ProfileForm is the multipart body of the profile upsert.
type ProfileForm struct {
	Fname      string  `form:"fname" json:"fname" example:"Jane"`
	Lname      string  `form:"lname" json:"lname" example:"Doe"`
	Height     float64 `form:"height" json:"height" example:"175"`
	HeightUnit string  `form:"heightUnit" json:"heightUnit" example:"cm"`
	Feet       float64 `form:"feet" json:"feet" example:"0"`
	Inches     float64 `form:"inches" json:"inches" example:"0"`
	Weight     float64 `form:"weight" json:"weight" example:"70"`
	WeightUnit string  `form:"weightUnit" json:"weightUnit" example:"kg"`
	Birthdate  string  `form:"birthdate" json:"birthdate" example:"1990-05-01"`
	Gender     string  `form:"gender" json:"gender" example:"female"`
}

type UpdateWeightRequest struct {
	Weight     float64 `json:"weight" example:"72"`
	WeightUnit string  `json:"weightUnit" example:"kg"`
}

type ProfileController struct {
	profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

// CreateOrUpdate godoc
// @Summary Create or update the profile
// @Description Upsert the authenticated user's profile. Omitted fields keep their stored values. A supplied weight is also written to the weight log.
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param fname formData string false "First name"
// @Param lname formData string false "Last name"
// @Param height formData number false "Height"
// @Param heightUnit formData string false "m, cm or ft"
// @Param feet formData number false "Feet, with heightUnit=ft"
// @Param inches formData number false "Inches, with heightUnit=ft"
// @Param weight formData number false "Weight"
// @Param weightUnit formData string false "kg or lbs"
// @Param birthdate formData string false "Birthdate (YYYY-MM-DD)"
// @Param gender formData string false "male or female"
// @Param profilePhoto formData file false "Profile photo"
// @Success 201 {object} map[string]interface{} "Profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /profiles/create [post]
func (pc *ProfileController) CreateOrUpdate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var form ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}

	birthdate, err := parseDate(form.Birthdate)
	if err != nil {
		badRequest(c, err)
		return
	}

	photo, closePhoto, err := formPhoto(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	defer closePhoto()

	in := services.ProfileInput{
		Fname:      form.Fname,
		Lname:      form.Lname,
		Height:     form.Height,
		HeightUnit: units.HeightUnit(strings.ToLower(form.HeightUnit)),
		Feet:       form.Feet,
		Inches:     form.Inches,
		Weight:     form.Weight,
		WeightUnit: units.WeightUnit(strings.ToLower(form.WeightUnit)),
		Birthdate:  birthdate,
		Gender:     form.Gender,
	}

	profile, err := pc.profiles.CreateOrUpdate(c.Request.Context(), userID, in, photo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data":    profile,
	})
}

// UpdateWeight godoc
// @Summary Update weight
// @Description Correct the current weight on the profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weight body UpdateWeightRequest true "New weight"
// @Success 200 {object} map[string]interface{} "Weight updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profiles/update-weight [put]
func (pc *ProfileController) UpdateWeight(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	profile, err := pc.profiles.UpdateWeight(c.Request.Context(), userID, req.Weight, units.WeightUnit(strings.ToLower(req.WeightUnit)))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weight updated successfully",
		"data":    profile,
	})
}

// GetProfile godoc
// @Summary Get a profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profiles/{userId} [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID, ok := ownPathUser(c)
	if !ok {
		return
	}

	profile, err := pc.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("birthdate %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// formPhoto opens the optional profile photo. The returned close func is
// always safe to call.
func formPhoto(c *gin.Context) (*services.Upload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(profilePhotoField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, err
	}
	if header.Size > maxPhotoSize {
		return nil, noop, fmt.Errorf("profile photo exceeds %d MB", maxPhotoSize>>20)
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &services.Upload{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	}, func() { _ = file.Close() }, nil
}
