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

// StudentService handles student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	CountStudents(ctx context.Context) (int64, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentService struct {
	studentRepo    studentStore
	profileRepo    profileStore
	enrollmentRepo enrollmentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo studentStore, profileRepo profileStore, enrollmentRepo enrollmentStore) StudentService {
	return &studentService{
		studentRepo:    studentRepo,
		profileRepo:    profileRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// CreateStudent creates a new student
func (s *studentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if strings.TrimSpace(student.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.Email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return apperrors.NewConflictError(fmt.Sprintf("student with email %s already exists", student.Email))
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetStudentByID retrieves a student with its profile and enrollments
func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("student with id %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if err := s.loadRelations(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetAllStudents retrieves all students with their relations. An empty
// table is reported as not found, matching the API contract.
func (s *studentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	if len(students) == 0 {
		return nil, apperrors.NewResourceNotFoundError("no students found")
	}

	for _, student := range students {
		if err := s.loadRelations(ctx, student); err != nil {
			return nil, err
		}
	}

	return students, nil
}

// CountStudents returns the total number of students. Zero is reported as
// not found, matching the API contract.
func (s *studentService) CountStudents(ctx context.Context) (int64, error) {
	count, err := s.studentRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	if count == 0 {
		return 0, apperrors.NewResourceNotFoundError("no students found")
	}

	return count, nil
}

// UpdateStudent overwrites only the fields present in the request and
// returns the updated student with its relations.
func (s *studentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	err := s.studentRepo.Update(ctx, id, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("student with id %d not found", id))
		}
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, apperrors.NewConflictError("another student already uses this email")
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return s.GetStudentByID(ctx, id)
}

// DeleteStudent removes a student and cascades to its profile and
// enrollments.
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("student with id %d not found", id))
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	return nil
}

// loadRelations attaches the profile and enrollments of a student.
func (s *studentService) loadRelations(ctx context.Context, student *models.Student) error {
	profile, err := s.profileRepo.GetByStudentID(ctx, student.ID)
	if err != nil {
		return fmt.Errorf("error loading student profile: %w", err)
	}
	student.Profile = profile

	enrollments, err := s.enrollmentRepo.GetByStudentID(ctx, student.ID)
	if err != nil {
		return fmt.Errorf("error loading student enrollments: %w", err)
	}

	student.Enrollments = make([]models.Enrollment, 0, len(enrollments))
	for _, enrollment := range enrollments {
		student.Enrollments = append(student.Enrollments, *enrollment)
	}

	return nil
}
