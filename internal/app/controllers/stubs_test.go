package controllers_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/enrolly/enrolly/internal/app/controllers"
	"github.com/enrolly/enrolly/internal/app/models"
	"github.com/enrolly/enrolly/internal/app/models/dto"
	"github.com/enrolly/enrolly/internal/app/routes"
	"github.com/enrolly/enrolly/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Stub services for handler tests. Unset funcs answer not found.

type stubStudentService struct {
	createFn  func(ctx context.Context, student *models.Student) error
	getByIDFn func(ctx context.Context, id int64) (*models.Student, error)
	getAllFn  func(ctx context.Context) ([]*models.Student, error)
	countFn   func(ctx context.Context) (int64, error)
	updateFn  func(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubStudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if s.createFn != nil {
		return s.createFn(ctx, student)
	}
	return nil
}

func (s *stubStudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, apperrors.NewResourceNotFoundError("student not found")
}

func (s *stubStudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, apperrors.NewResourceNotFoundError("no students found")
}

func (s *stubStudentService) CountStudents(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, apperrors.NewResourceNotFoundError("no students found")
}

func (s *stubStudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, req)
	}
	return nil, apperrors.NewResourceNotFoundError("student not found")
}

func (s *stubStudentService) DeleteStudent(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return apperrors.NewResourceNotFoundError("student not found")
}

type stubProfileService struct {
	createFn  func(ctx context.Context, profile *models.Profile) error
	getByIDFn func(ctx context.Context, id int64) (*models.Profile, error)
	updateFn  func(ctx context.Context, id int64, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

func (s *stubProfileService) CreateProfile(ctx context.Context, profile *models.Profile) error {
	if s.createFn != nil {
		return s.createFn(ctx, profile)
	}
	return nil
}

func (s *stubProfileService) GetProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, apperrors.NewResourceNotFoundError("profile not found")
}

func (s *stubProfileService) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, req)
	}
	return nil, apperrors.NewResourceNotFoundError("profile not found")
}

type stubInstructorService struct {
	createFn  func(ctx context.Context, instructor *models.Instructor) error
	getByIDFn func(ctx context.Context, id int64) (*models.Instructor, error)
	getAllFn  func(ctx context.Context) ([]*models.Instructor, error)
	updateFn  func(ctx context.Context, id int64, req *dto.UpdateInstructorRequest) (*models.Instructor, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubInstructorService) CreateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if s.createFn != nil {
		return s.createFn(ctx, instructor)
	}
	return nil
}

func (s *stubInstructorService) GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, apperrors.NewResourceNotFoundError("instructor not found")
}

func (s *stubInstructorService) GetAllInstructors(ctx context.Context) ([]*models.Instructor, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, apperrors.NewResourceNotFoundError("no instructors found")
}

func (s *stubInstructorService) UpdateInstructor(ctx context.Context, id int64, req *dto.UpdateInstructorRequest) (*models.Instructor, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, req)
	}
	return nil, apperrors.NewResourceNotFoundError("instructor not found")
}

func (s *stubInstructorService) DeleteInstructor(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return apperrors.NewResourceNotFoundError("instructor not found")
}

type stubCourseService struct {
	createFn  func(ctx context.Context, course *models.Course) (*models.Course, error)
	getByIDFn func(ctx context.Context, id int64) (*models.Course, error)
	getAllFn  func(ctx context.Context) ([]*models.Course, error)
	updateFn  func(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubCourseService) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if s.createFn != nil {
		return s.createFn(ctx, course)
	}
	return course, nil
}

func (s *stubCourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, apperrors.NewResourceNotFoundError("course not found")
}

func (s *stubCourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, apperrors.NewResourceNotFoundError("no courses found")
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, req)
	}
	return nil, apperrors.NewResourceNotFoundError("course not found")
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return apperrors.NewResourceNotFoundError("course not found")
}

type stubEnrollmentService struct {
	createFn  func(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error)
	getByIDFn func(ctx context.Context, id int64) (*models.Enrollment, error)
	getAllFn  func(ctx context.Context) ([]*models.Enrollment, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubEnrollmentService) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	if s.createFn != nil {
		return s.createFn(ctx, enrollment)
	}
	return enrollment, nil
}

func (s *stubEnrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, apperrors.NewResourceNotFoundError("enrollment not found")
}

func (s *stubEnrollmentService) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, apperrors.NewResourceNotFoundError("no enrollments found")
}

func (s *stubEnrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return apperrors.NewResourceNotFoundError("enrollment not found")
}

// testServices bundles the stub services behind a router built with the
// real route table.
type testServices struct {
	students    *stubStudentService
	profiles    *stubProfileService
	instructors *stubInstructorService
	courses     *stubCourseService
	enrollments *stubEnrollmentService
}

func newTestRouter(t *testing.T, svcs testServices) *gin.Engine {
	t.Helper()

	if svcs.students == nil {
		svcs.students = &stubStudentService{}
	}
	if svcs.profiles == nil {
		svcs.profiles = &stubProfileService{}
	}
	if svcs.instructors == nil {
		svcs.instructors = &stubInstructorService{}
	}
	if svcs.courses == nil {
		svcs.courses = &stubCourseService{}
	}
	if svcs.enrollments == nil {
		svcs.enrollments = &stubEnrollmentService{}
	}

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewHealthController(),
		controllers.NewStudentController(svcs.students),
		controllers.NewProfileController(svcs.profiles),
		controllers.NewInstructorController(svcs.instructors),
		controllers.NewCourseController(svcs.courses),
		controllers.NewEnrollmentController(svcs.enrollments),
	)
	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func int64Ptr(v int64) *int64 { return &v }
