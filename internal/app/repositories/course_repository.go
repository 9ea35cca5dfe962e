package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enrolly/enrolly/internal/app/models"
	"github.com/enrolly/enrolly/internal/pkg/dberrors"
)

// Course error types
var (
	ErrCourseNotFound = errors.New("course not found")
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, instructor_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, course.Title, course.InstructorID).Scan(&course.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "fk_courses_instructor_id_instructors") {
			return ErrInstructorNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

const courseSelect = `
	SELECT c.id, c.title, c.instructor_id, i.name,
		(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id)
	FROM courses c
	LEFT JOIN instructors i ON i.id = c.instructor_id
`

// scanCourse reads one joined course row, materializing the instructor
// relation when the course has one.
func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	var instructorName *string

	if err := row.Scan(
		&course.ID,
		&course.Title,
		&course.InstructorID,
		&instructorName,
		&course.StudentCount,
	); err != nil {
		return nil, err
	}

	if course.InstructorID != nil && instructorName != nil {
		course.Instructor = &models.Instructor{
			ID:   *course.InstructorID,
			Name: *instructorName,
		}
	}

	return &course, nil
}

// GetByID retrieves a course by ID with its instructor and student count
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := scanCourse(r.db.QueryRow(ctx, courseSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses ordered by id
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, courseSelect+` ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByInstructorID retrieves all courses owned by an instructor
func (r *CourseRepository) GetByInstructorID(ctx context.Context, instructorID int64) ([]models.Course, error) {
	query := `
		SELECT id, title, instructor_id
		FROM courses
		WHERE instructor_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.InstructorID,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update overwrites only the provided fields in a single UPDATE statement.
// An instructor id that is set but not valid writes NULL, detaching the
// course from its instructor.
func (r *CourseRepository) Update(ctx context.Context, id int64, title *string, instructorID models.OptionalInt64) error {
	set := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if title != nil {
		args = append(args, *title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if instructorID.Set {
		if instructorID.Valid {
			args = append(args, instructorID.Value)
			set = append(set, fmt.Sprintf("instructor_id = $%d", len(args)))
		} else {
			set = append(set, "instructor_id = NULL")
		}
	}

	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE courses SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "fk_courses_instructor_id_instructors") {
			return ErrInstructorNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// Delete removes a course together with its enrollments. The cascade runs
// depth-first inside one transaction.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("error checking course existence: %w", err)
	}
	if !exists {
		return ErrCourseNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE course_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting course enrollments: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
