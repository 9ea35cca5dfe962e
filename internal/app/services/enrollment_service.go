package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/enrolly/enrolly/internal/app/models"
	"github.com/enrolly/enrolly/internal/app/repositories"
	"github.com/enrolly/enrolly/internal/pkg/apperrors"
)

// EnrollmentService handles enrollment-related operations
type EnrollmentService interface {
	CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

type enrollmentService struct {
	enrollmentRepo enrollmentStore
	studentRepo    studentStore
	courseRepo     courseStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo enrollmentStore, studentRepo studentStore, courseRepo courseStore) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

// CreateEnrollment enrolls a student in a course. Both sides of the link
// must exist and the pair must be unique; the unique constraint backs the
// pre-check under concurrent writers.
func (s *enrollmentService) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	if _, err := s.studentRepo.GetByID(ctx, enrollment.StudentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("student with id %d not found", enrollment.StudentID))
		}
		return nil, fmt.Errorf("error checking student: %w", err)
	}

	if _, err := s.courseRepo.GetByID(ctx, enrollment.CourseID); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("course with id %d not found", enrollment.CourseID))
		}
		return nil, fmt.Errorf("error checking course: %w", err)
	}

	exists, err := s.enrollmentRepo.ExistsByStudentAndCourse(ctx, enrollment.StudentID, enrollment.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError(fmt.Sprintf(
			"student %d is already enrolled in course %d", enrollment.StudentID, enrollment.CourseID))
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateEnrollment):
			return nil, apperrors.NewConflictError(fmt.Sprintf(
				"student %d is already enrolled in course %d", enrollment.StudentID, enrollment.CourseID))
		case errors.Is(err, repositories.ErrStudentNotFound):
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("student with id %d not found", enrollment.StudentID))
		case errors.Is(err, repositories.ErrCourseNotFound):
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("course with id %d not found", enrollment.CourseID))
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	return s.GetEnrollmentByID(ctx, enrollment.ID)
}

// GetEnrollmentByID retrieves an enrollment with its course branch
func (s *enrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEnrollmentNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("enrollment with id %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// GetAllEnrollments retrieves all enrollments. An empty table is reported
// as not found, matching the API contract.
func (s *enrollmentService) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}

	if len(enrollments) == 0 {
		return nil, apperrors.NewResourceNotFoundError("no enrollments found")
	}

	return enrollments, nil
}

// DeleteEnrollment removes an enrollment
func (s *enrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEnrollmentNotFound) {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("enrollment with id %d not found", id))
		}
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	return nil
}
