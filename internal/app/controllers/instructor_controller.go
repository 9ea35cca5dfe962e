package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolly/enrolly/internal/app/models"
	"github.com/enrolly/enrolly/internal/app/models/dto"
	"github.com/enrolly/enrolly/internal/app/services"
	"github.com/enrolly/enrolly/internal/middleware"
)

// InstructorController handles instructor-related requests
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// CreateInstructor handles instructor creation
// @Summary Create a new instructor
// @Accept json
// @Produce json
// @Param request body dto.CreateInstructorRequest true "Instructor information"
// @Success 201 {object} dto.InstructorResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Router /instructor [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if !bindJSON(ctx, &req) {
		return
	}

	instructor := &models.Instructor{Name: req.Name}

	if err := c.instructorService.CreateInstructor(ctx, instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewInstructorResponse(instructor))
}

// GetInstructorByID retrieves an instructor by ID
func (c *InstructorController) GetInstructorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	instructor, err := c.instructorService.GetInstructorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInstructorResponse(instructor))
}

// GetAllInstructors retrieves all instructors
func (c *InstructorController) GetAllInstructors(ctx *gin.Context) {
	instructors, err := c.instructorService.GetAllInstructors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInstructorListResponse(instructors))
}

// UpdateInstructor applies a partial update to an instructor
func (c *InstructorController) UpdateInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateInstructorRequest
	if !decodePartial(ctx, &req) {
		return
	}

	instructor, err := c.instructorService.UpdateInstructor(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInstructorResponse(instructor))
}

// DeleteInstructor deletes an instructor, cascading to its courses and
// their enrollments
// @Summary Delete an instructor
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructor/{id} [delete]
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.instructorService.DeleteInstructor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("instructor deleted successfully"))
}
