package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolly/enrolly/internal/app/models"
	"github.com/enrolly/enrolly/internal/app/models/dto"
	"github.com/enrolly/enrolly/internal/app/services"
	"github.com/enrolly/enrolly/internal/middleware"
)

// StudentController handles student-related requests
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.StudentResponse "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /student [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student := &models.Student{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := c.studentService.CreateStudent(ctx, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStudentResponse(student))
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /student/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentResponse(student))
}

// GetAllStudents retrieves all students
// @Summary List students
// @Produce json
// @Success 200 {array} dto.StudentResponse
// @Failure 404 {object} dto.ErrorResponse "No students exist"
// @Router /student [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentListResponse(students))
}

// CountStudents returns the total number of students
// @Summary Count students
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Failure 404 {object} dto.ErrorResponse "No students exist"
// @Router /student_count [get]
func (c *StudentController) CountStudents(ctx *gin.Context) {
	count, err := c.studentService.CountStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// UpdateStudent applies a partial update to a student
// @Summary Update a student
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /student/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if !decodePartial(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentResponse(student))
}

// DeleteStudent deletes a student and its profile and enrollments
// @Summary Delete a student
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /student/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("student deleted successfully"))
}
