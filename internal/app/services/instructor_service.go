package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/enrolly/enrolly/internal/app/models"
	"github.com/enrolly/enrolly/internal/app/models/dto"
	"github.com/enrolly/enrolly/internal/app/repositories"
	"github.com/enrolly/enrolly/internal/pkg/apperrors"
)

// InstructorService handles instructor-related operations
type InstructorService interface {
	CreateInstructor(ctx context.Context, instructor *models.Instructor) error
	GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetAllInstructors(ctx context.Context) ([]*models.Instructor, error)
	UpdateInstructor(ctx context.Context, id int64, req *dto.UpdateInstructorRequest) (*models.Instructor, error)
	DeleteInstructor(ctx context.Context, id int64) error
}

type instructorService struct {
	instructorRepo instructorStore
	courseRepo     courseStore
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo instructorStore, courseRepo courseStore) InstructorService {
	return &instructorService{
		instructorRepo: instructorRepo,
		courseRepo:     courseRepo,
	}
}

// CreateInstructor creates a new instructor
func (s *instructorService) CreateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if strings.TrimSpace(instructor.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if err := s.instructorRepo.Create(ctx, instructor); err != nil {
		return fmt.Errorf("error creating instructor: %w", err)
	}

	return nil
}

// GetInstructorByID retrieves an instructor with its courses
func (s *instructorService) GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error) {
	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInstructorNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("instructor with id %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	courses, err := s.courseRepo.GetByInstructorID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading instructor courses: %w", err)
	}
	instructor.Courses = courses

	return instructor, nil
}

// GetAllInstructors retrieves all instructors with their courses. An empty
// table is reported as not found, matching the API contract.
func (s *instructorService) GetAllInstructors(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.instructorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructors: %w", err)
	}

	if len(instructors) == 0 {
		return nil, apperrors.NewResourceNotFoundError("no instructors found")
	}

	for _, instructor := range instructors {
		courses, err := s.courseRepo.GetByInstructorID(ctx, instructor.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading instructor courses: %w", err)
		}
		instructor.Courses = courses
	}

	return instructors, nil
}

// UpdateInstructor overwrites only the fields present in the request and
// returns the updated instructor with its courses.
func (s *instructorService) UpdateInstructor(ctx context.Context, id int64, req *dto.UpdateInstructorRequest) (*models.Instructor, error) {
	err := s.instructorRepo.Update(ctx, id, req.Name)
	if err != nil {
		if errors.Is(err, repositories.ErrInstructorNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("instructor with id %d not found", id))
		}
		return nil, fmt.Errorf("error updating instructor: %w", err)
	}

	return s.GetInstructorByID(ctx, id)
}

// DeleteInstructor removes an instructor and cascades to its courses and
// their enrollments.
func (s *instructorService) DeleteInstructor(ctx context.Context, id int64) error {
	if err := s.instructorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrInstructorNotFound) {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("instructor with id %d not found", id))
		}
		return fmt.Errorf("error deleting instructor: %w", err)
	}

	return nil
}
