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

// Student error types
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrDuplicateEmail  = errors.New("student with this email already exists")
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, student.Name, student.Email).Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_students_email") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student row by ID. Relations are loaded separately.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, email
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves all students ordered by id
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, name, email
		FROM students
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Count returns the total number of student rows
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// Update overwrites only the provided fields in a single UPDATE statement.
// A call with no fields set is a no-op.
func (r *StudentRepository) Update(ctx context.Context, id int64, name, email *string) error {
	set := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if name != nil {
		args = append(args, *name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if email != nil {
		args = append(args, *email)
		set = append(set, fmt.Sprintf("email = $%d", len(args)))
	}

	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE students SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_students_email") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// Delete removes a student together with its profile and enrollments.
// The cascade runs depth-first inside one transaction.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("error checking student existence: %w", err)
	}
	if !exists {
		return ErrStudentNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM profiles WHERE student_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting student profile: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE student_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting student enrollments: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
