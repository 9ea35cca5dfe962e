package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enrolly/enrolly/internal/app/models"
)

// Instructor error types
var (
	ErrInstructorNotFound = errors.New("instructor not found")
)

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
	}
}

// Create inserts a new instructor
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	query := `
		INSERT INTO instructors (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, instructor.Name).Scan(&instructor.ID)
	if err != nil {
		return fmt.Errorf("error creating instructor: %w", err)
	}

	return nil
}

// GetByID retrieves an instructor row by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	query := `
		SELECT id, name
		FROM instructors
		WHERE id = $1
	`

	var instructor models.Instructor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&instructor.ID,
		&instructor.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	return &instructor, nil
}

// GetAll retrieves all instructors ordered by id
func (r *InstructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	query := `
		SELECT id, name
		FROM instructors
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		var instructor models.Instructor
		if err := rows.Scan(
			&instructor.ID,
			&instructor.Name,
		); err != nil {
			return nil, err
		}
		instructors = append(instructors, &instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return instructors, nil
}

// Update overwrites only the provided fields.
func (r *InstructorRepository) Update(ctx context.Context, id int64, name *string) error {
	if name == nil {
		return nil
	}

	cmdTag, err := r.db.Exec(ctx, `UPDATE instructors SET name = $1 WHERE id = $2`, *name, id)
	if err != nil {
		return fmt.Errorf("error updating instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrInstructorNotFound
	}

	return nil
}

// Delete removes an instructor together with its courses and their
// enrollments. The cascade runs depth-first inside one transaction.
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM instructors WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("error checking instructor existence: %w", err)
	}
	if !exists {
		return ErrInstructorNotFound
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM enrollments
		WHERE course_id IN (SELECT id FROM courses WHERE instructor_id = $1)`, id); err != nil {
		return fmt.Errorf("error deleting enrollments of instructor courses: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM courses WHERE instructor_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting instructor courses: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting instructor: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
