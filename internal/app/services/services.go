package services

import (
	"context"

	"github.com/enrolly/enrolly/internal/app/models"
)

// Services defined in this package:
// - StudentService: students, their profiles and enrollments, row counts
// - ProfileService: student profiles (1:1 with students)
// - InstructorService: instructors and their owned courses
// - CourseService: courses with instructor and student-count expansion
// - EnrollmentService: the student/course link table
//
// Each service consumes the narrow store interfaces below; the concrete
// implementations live in the repositories package.

type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id int64, name, email *string) error
	Delete(ctx context.Context, id int64) error
}

type profileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id int64) (*models.Profile, error)
	GetByStudentID(ctx context.Context, studentID int64) (*models.Profile, error)
	Update(ctx context.Context, id int64, age *int, bio *string) error
}

type instructorStore interface {
	Create(ctx context.Context, instructor *models.Instructor) error
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetAll(ctx context.Context) ([]*models.Instructor, error)
	Update(ctx context.Context, id int64, name *string) error
	Delete(ctx context.Context, id int64) error
}

type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByInstructorID(ctx context.Context, instructorID int64) ([]models.Course, error)
	Update(ctx context.Context, id int64, title *string, instructorID models.OptionalInt64) error
	Delete(ctx context.Context, id int64) error
}

type enrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	ExistsByStudentAndCourse(ctx context.Context, studentID, courseID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}
