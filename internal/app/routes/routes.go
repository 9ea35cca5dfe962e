package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/enrolly/enrolly/internal/app/controllers"
)

// SetupRouter configures all application routes. Paths are flat and
// unversioned: the surface is a compatibility contract with an existing
// client.
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	studentController *controllers.StudentController,
	profileController *controllers.ProfileController,
	instructorController *controllers.InstructorController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
) {
	router.GET("/", healthController.Index)

	// Student routes
	router.GET("/student", studentController.GetAllStudents)
	router.POST("/student", studentController.CreateStudent)
	router.GET("/student/:id", studentController.GetStudentByID)
	router.PUT("/student/:id", studentController.UpdateStudent)
	router.DELETE("/student/:id", studentController.DeleteStudent)
	router.GET("/student_count", studentController.CountStudents)

	// Profile routes
	router.POST("/profile", profileController.CreateProfile)
	router.GET("/profile/:id", profileController.GetProfileByID)
	router.PUT("/profile/:id", profileController.UpdateProfile)

	// Instructor routes
	router.GET("/instructor", instructorController.GetAllInstructors)
	router.POST("/instructor", instructorController.CreateInstructor)
	router.GET("/instructor/:id", instructorController.GetInstructorByID)
	router.PUT("/instructor/:id", instructorController.UpdateInstructor)
	router.DELETE("/instructor/:id", instructorController.DeleteInstructor)

	// Course routes
	router.GET("/course", courseController.GetAllCourses)
	router.POST("/course", courseController.CreateCourse)
	router.GET("/course/:id", courseController.GetCourseByID)
	router.PUT("/course/:id", courseController.UpdateCourse)
	router.DELETE("/course/:id", courseController.DeleteCourse)

	// Enrollment routes
	router.GET("/enrollment", enrollmentController.GetAllEnrollments)
	router.POST("/enrollment", enrollmentController.CreateEnrollment)
	router.GET("/enrollment/:id", enrollmentController.GetEnrollmentByID)
	router.DELETE("/enrollment/:id", enrollmentController.DeleteEnrollment)
}
