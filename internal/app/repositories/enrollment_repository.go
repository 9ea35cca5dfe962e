package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enrolly/enrolly/internal/app/models"
	"github.com/enrolly/enrolly/internal/pkg/dberrors"
)

// Enrollment error types
var (
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrDuplicateEnrollment = errors.New("student is already enrolled in this course")
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment. Grade and date_enrolled fall back to
// their column defaults when unset.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.Grade == "" {
		enrollment.Grade = models.DefaultGrade
	}

	query := `
		INSERT INTO enrollments (grade, student_id, course_id)
		VALUES ($1, $2, $3)
		RETURNING id, date_enrolled
	`

	err := r.db.QueryRow(ctx, query, enrollment.Grade, enrollment.StudentID, enrollment.CourseID).
		Scan(&enrollment.ID, &enrollment.DateEnrolled)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "uq_enrollments_student_id_course_id"):
			return ErrDuplicateEnrollment
		case dberrors.IsForeignKeyViolation(err, "fk_enrollments_student_id_students"):
			return ErrStudentNotFound
		case dberrors.IsForeignKeyViolation(err, "fk_enrollments_course_id_courses"):
			return ErrCourseNotFound
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

const enrollmentSelect = `
	SELECT e.id, e.grade, e.date_enrolled, e.student_id, e.course_id,
		c.id, c.title, c.instructor_id, i.name
	FROM enrollments e
	LEFT JOIN courses c ON c.id = e.course_id
	LEFT JOIN instructors i ON i.id = c.instructor_id
`

// scanEnrollment reads one joined enrollment row. The course branch stays
// nil if the course row is gone; the serializer tolerates that.
func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	var courseID *int64
	var courseTitle *string
	var courseInstructorID *int64
	var instructorName *string

	if err := row.Scan(
		&enrollment.ID,
		&enrollment.Grade,
		&enrollment.DateEnrolled,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&courseID,
		&courseTitle,
		&courseInstructorID,
		&instructorName,
	); err != nil {
		return nil, err
	}

	if courseID != nil && courseTitle != nil {
		enrollment.Course = &models.Course{
			ID:           *courseID,
			Title:        *courseTitle,
			InstructorID: courseInstructorID,
		}
		if courseInstructorID != nil && instructorName != nil {
			enrollment.Course.Instructor = &models.Instructor{
				ID:   *courseInstructorID,
				Name: *instructorName,
			}
		}
	}

	return &enrollment, nil
}

// GetByID retrieves an enrollment by ID with its course and instructor
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, enrollmentSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// GetAll retrieves all enrollments ordered by id
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	return r.queryMany(ctx, enrollmentSelect+` ORDER BY e.id`)
}

// GetByStudentID retrieves all enrollments of a student
func (r *EnrollmentRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return r.queryMany(ctx, enrollmentSelect+` WHERE e.student_id = $1 ORDER BY e.id`, studentID)
}

func (r *EnrollmentRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// ExistsByStudentAndCourse checks whether an enrollment already links the
// given student and course.
func (r *EnrollmentRepository) ExistsByStudentAndCourse(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

// Delete removes an enrollment. Nothing depends on enrollments, so no
// cascade is needed.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrEnrollmentNotFound
	}

	return nil
}
