package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolly/enrolly/internal/app/models"
	"github.com/enrolly/enrolly/internal/app/models/dto"
	"github.com/enrolly/enrolly/internal/app/services"
	"github.com/enrolly/enrolly/internal/middleware"
)

// EnrollmentController handles enrollment-related requests
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// CreateEnrollment enrolls a student in a course
// @Summary Create a new enrollment
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.EnrollmentResponse
// @Failure 400 {object} dto.ErrorResponse "Missing student_id or course_id"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled in course"
// @Router /enrollment [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment := &models.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Grade:     req.Grade,
	}

	created, err := c.enrollmentService.CreateEnrollment(ctx, enrollment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnrollmentResponse(created))
}

// GetEnrollmentByID retrieves an enrollment by ID
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnrollmentResponse(enrollment))
}

// GetAllEnrollments retrieves all enrollments
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnrollmentListResponse(enrollments))
}

// DeleteEnrollment deletes an enrollment
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("enrollment deleted successfully"))
}
