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

// Profile error types
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrDuplicateProfile = errors.New("student already has a profile")
)

// ProfileRepository handles database operations for student profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// Create inserts a new profile. The unique constraint on student_id keeps
// the student/profile relation one-to-one.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (age, bio, student_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, profile.Age, profile.Bio, profile.StudentID).Scan(&profile.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_profiles_student_id") {
			return ErrDuplicateProfile
		}
		if dberrors.IsForeignKeyViolation(err, "fk_profiles_student_id_students") {
			return ErrStudentNotFound
		}
		return fmt.Errorf("error creating profile: %w", err)
	}

	return nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	query := `
		SELECT id, age, bio, student_id
		FROM profiles
		WHERE id = $1
	`

	var profile models.Profile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Age,
		&profile.Bio,
		&profile.StudentID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return &profile, nil
}

// GetByStudentID retrieves the profile owned by a student. A student
// without a profile yields (nil, nil), not an error.
func (r *ProfileRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.Profile, error) {
	query := `
		SELECT id, age, bio, student_id
		FROM profiles
		WHERE student_id = $1
	`

	var profile models.Profile
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&profile.ID,
		&profile.Age,
		&profile.Bio,
		&profile.StudentID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving profile by student: %w", err)
	}

	return &profile, nil
}

// Update overwrites only the provided fields in a single UPDATE statement.
func (r *ProfileRepository) Update(ctx context.Context, id int64, age *int, bio *string) error {
	set := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if age != nil {
		args = append(args, *age)
		set = append(set, fmt.Sprintf("age = $%d", len(args)))
	}
	if bio != nil {
		args = append(args, *bio)
		set = append(set, fmt.Sprintf("bio = $%d", len(args)))
	}

	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE profiles SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}
