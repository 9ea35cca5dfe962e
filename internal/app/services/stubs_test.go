package services

import (
	"context"

	"github.com/enrolly/enrolly/internal/app/models"
	"github.com/enrolly/enrolly/internal/app/repositories"
)

// Stub stores for service tests. Unset getter funcs answer the package's
// not-found sentinel, unset mutator funcs succeed.

type stubStudentStore struct {
	createFn  func(ctx context.Context, student *models.Student) error
	getByIDFn func(ctx context.Context, id int64) (*models.Student, error)
	getAllFn  func(ctx context.Context) ([]*models.Student, error)
	countFn   func(ctx context.Context) (int64, error)
	updateFn  func(ctx context.Context, id int64, name, email *string) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubStudentStore) Create(ctx context.Context, student *models.Student) error {
	if s.createFn != nil {
		return s.createFn(ctx, student)
	}
	return nil
}

func (s *stubStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repositories.ErrStudentNotFound
}

func (s *stubStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, nil
}

func (s *stubStudentStore) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

func (s *stubStudentStore) Update(ctx context.Context, id int64, name, email *string) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, name, email)
	}
	return nil
}

func (s *stubStudentStore) Delete(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubProfileStore struct {
	createFn         func(ctx context.Context, profile *models.Profile) error
	getByIDFn        func(ctx context.Context, id int64) (*models.Profile, error)
	getByStudentIDFn func(ctx context.Context, studentID int64) (*models.Profile, error)
	updateFn         func(ctx context.Context, id int64, age *int, bio *string) error
}

func (s *stubProfileStore) Create(ctx context.Context, profile *models.Profile) error {
	if s.createFn != nil {
		return s.createFn(ctx, profile)
	}
	return nil
}

func (s *stubProfileStore) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repositories.ErrProfileNotFound
}

func (s *stubProfileStore) GetByStudentID(ctx context.Context, studentID int64) (*models.Profile, error) {
	if s.getByStudentIDFn != nil {
		return s.getByStudentIDFn(ctx, studentID)
	}
	return nil, nil
}

func (s *stubProfileStore) Update(ctx context.Context, id int64, age *int, bio *string) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, age, bio)
	}
	return nil
}

type stubInstructorStore struct {
	createFn  func(ctx context.Context, instructor *models.Instructor) error
	getByIDFn func(ctx context.Context, id int64) (*models.Instructor, error)
	getAllFn  func(ctx context.Context) ([]*models.Instructor, error)
	updateFn  func(ctx context.Context, id int64, name *string) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubInstructorStore) Create(ctx context.Context, instructor *models.Instructor) error {
	if s.createFn != nil {
		return s.createFn(ctx, instructor)
	}
	return nil
}

func (s *stubInstructorStore) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repositories.ErrInstructorNotFound
}

func (s *stubInstructorStore) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, nil
}

func (s *stubInstructorStore) Update(ctx context.Context, id int64, name *string) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, name)
	}
	return nil
}

func (s *stubInstructorStore) Delete(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubCourseStore struct {
	createFn            func(ctx context.Context, course *models.Course) error
	getByIDFn           func(ctx context.Context, id int64) (*models.Course, error)
	getAllFn            func(ctx context.Context) ([]*models.Course, error)
	getByInstructorIDFn func(ctx context.Context, instructorID int64) ([]models.Course, error)
	updateFn            func(ctx context.Context, id int64, title *string, instructorID models.OptionalInt64) error
	deleteFn            func(ctx context.Context, id int64) error
}

func (s *stubCourseStore) Create(ctx context.Context, course *models.Course) error {
	if s.createFn != nil {
		return s.createFn(ctx, course)
	}
	return nil
}

func (s *stubCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repositories.ErrCourseNotFound
}

func (s *stubCourseStore) GetAll(ctx context.Context) ([]*models.Course, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, nil
}

func (s *stubCourseStore) GetByInstructorID(ctx context.Context, instructorID int64) ([]models.Course, error) {
	if s.getByInstructorIDFn != nil {
		return s.getByInstructorIDFn(ctx, instructorID)
	}
	return nil, nil
}

func (s *stubCourseStore) Update(ctx context.Context, id int64, title *string, instructorID models.OptionalInt64) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, title, instructorID)
	}
	return nil
}

func (s *stubCourseStore) Delete(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubEnrollmentStore struct {
	createFn         func(ctx context.Context, enrollment *models.Enrollment) error
	getByIDFn        func(ctx context.Context, id int64) (*models.Enrollment, error)
	getAllFn         func(ctx context.Context) ([]*models.Enrollment, error)
	getByStudentIDFn func(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	existsFn         func(ctx context.Context, studentID, courseID int64) (bool, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (s *stubEnrollmentStore) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if s.createFn != nil {
		return s.createFn(ctx, enrollment)
	}
	return nil
}

func (s *stubEnrollmentStore) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, repositories.ErrEnrollmentNotFound
}

func (s *stubEnrollmentStore) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, nil
}

func (s *stubEnrollmentStore) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	if s.getByStudentIDFn != nil {
		return s.getByStudentIDFn(ctx, studentID)
	}
	return nil, nil
}

func (s *stubEnrollmentStore) ExistsByStudentAndCourse(ctx context.Context, studentID, courseID int64) (bool, error) {
	if s.existsFn != nil {
		return s.existsFn(ctx, studentID, courseID)
	}
	return false, nil
}

func (s *stubEnrollmentStore) Delete(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func ptrString(v string) *string { return &v }
func ptrInt64(v int64) *int64    { return &v }
