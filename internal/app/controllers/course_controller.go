package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolly/enrolly/internal/app/models"
	"github.com/enrolly/enrolly/internal/app/models/dto"
	"github.com/enrolly/enrolly/internal/app/services"
	"github.com/enrolly/enrolly/internal/middleware"
)

// CourseController handles course-related requests
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /course [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course := &models.Course{
		Title:        req.Title,
		InstructorID: req.InstructorID,
	}

	created, err := c.courseService.CreateCourse(ctx, course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCourseResponse(created))
}

// GetCourseByID retrieves a course by ID
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// GetAllCourses retrieves all courses
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseListResponse(courses))
}

// UpdateCourse applies a partial update to a course
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !decodePartial(ctx, &req) {
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// DeleteCourse deletes a course, cascading to its enrollments
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("course deleted successfully"))
}
