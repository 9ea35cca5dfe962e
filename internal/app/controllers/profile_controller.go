package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolly/enrolly/internal/app/models"
	"github.com/enrolly/enrolly/internal/app/models/dto"
	"github.com/enrolly/enrolly/internal/app/services"
	"github.com/enrolly/enrolly/internal/middleware"
)

// ProfileController handles profile-related requests
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// CreateProfile attaches a profile to a student
// @Summary Create a profile
// @Accept json
// @Produce json
// @Param request body dto.CreateProfileRequest true "Profile information"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student already has a profile"
// @Router /profile [post]
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	var req dto.CreateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	profile := &models.Profile{
		Age:       *req.Age,
		Bio:       req.Bio,
		StudentID: req.StudentID,
	}

	if err := c.profileService.CreateProfile(ctx, profile); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewProfileResponse(profile))
}

// GetProfileByID retrieves a profile by ID
func (c *ProfileController) GetProfileByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	profile, err := c.profileService.GetProfileByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// UpdateProfile applies a partial update to a profile
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !decodePartial(ctx, &req) {
		return
	}

	profile, err := c.profileService.UpdateProfile(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}
