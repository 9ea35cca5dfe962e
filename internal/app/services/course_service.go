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

// CourseService handles course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type courseService struct {
	courseRepo     courseStore
	instructorRepo instructorStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseStore, instructorRepo instructorStore) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		instructorRepo: instructorRepo,
	}
}

// checkInstructor verifies that a referenced instructor exists.
func (s *courseService) checkInstructor(ctx context.Context, instructorID int64) error {
	if _, err := s.instructorRepo.GetByID(ctx, instructorID); err != nil {
		if errors.Is(err, repositories.ErrInstructorNotFound) {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("instructor with id %d not found", instructorID))
		}
		return fmt.Errorf("error checking instructor: %w", err)
	}
	return nil
}

// CreateCourse creates a new course, optionally owned by an instructor,
// and returns it fully expanded.
func (s *courseService) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if strings.TrimSpace(course.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	if course.InstructorID != nil {
		if err := s.checkInstructor(ctx, *course.InstructorID); err != nil {
			return nil, err
		}
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrInstructorNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("instructor with id %d not found", *course.InstructorID))
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return s.GetCourseByID(ctx, course.ID)
}

// GetCourseByID retrieves a course with its instructor and student count
func (s *courseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("course with id %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAllCourses retrieves all courses. An empty table is reported as not
// found, matching the API contract.
func (s *courseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	if len(courses) == 0 {
		return nil, apperrors.NewResourceNotFoundError("no courses found")
	}

	return courses, nil
}

// UpdateCourse overwrites only the fields present in the request and
// returns the updated course. An explicit null instructor_id detaches the
// course without a referential check.
func (s *courseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if req.InstructorID.Set && req.InstructorID.Valid {
		if err := s.checkInstructor(ctx, req.InstructorID.Value); err != nil {
			return nil, err
		}
	}

	err := s.courseRepo.Update(ctx, id, req.Title, req.InstructorID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrCourseNotFound):
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("course with id %d not found", id))
		case errors.Is(err, repositories.ErrInstructorNotFound):
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("instructor with id %d not found", req.InstructorID.Value))
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return s.GetCourseByID(ctx, id)
}

// DeleteCourse removes a course and cascades to its enrollments.
func (s *courseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("course with id %d not found", id))
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	return nil
}
