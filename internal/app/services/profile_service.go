package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/enrolly/enrolly/internal/app/models"
	"github.com/enrolly/enrolly/internal/app/models/dto"
	"github.com/enrolly/enrolly/internal/app/repositories"
	"github.com/enrolly/enrolly/internal/pkg/apperrors"
)

// ProfileService handles profile-related operations
type ProfileService interface {
	CreateProfile(ctx context.Context, profile *models.Profile) error
	GetProfileByID(ctx context.Context, id int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id int64, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

type profileService struct {
	profileRepo profileStore
	studentRepo studentStore
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileRepo profileStore, studentRepo studentStore) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		studentRepo: studentRepo,
	}
}

// CreateProfile creates a profile for an existing student. A student can
// own at most one profile.
func (s *profileService) CreateProfile(ctx context.Context, profile *models.Profile) error {
	if _, err := s.studentRepo.GetByID(ctx, profile.StudentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("student with id %d not found", profile.StudentID))
		}
		return fmt.Errorf("error checking student: %w", err)
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateProfile):
			return apperrors.NewConflictError(fmt.Sprintf("student with id %d already has a profile", profile.StudentID))
		case errors.Is(err, repositories.ErrStudentNotFound):
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("student with id %d not found", profile.StudentID))
		}
		return fmt.Errorf("error creating profile: %w", err)
	}

	return nil
}

// GetProfileByID retrieves a profile by ID
func (s *profileService) GetProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("profile with id %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile overwrites only the fields present in the request and
// returns the updated profile.
func (s *profileService) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	err := s.profileRepo.Update(ctx, id, req.Age, req.Bio)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("profile with id %d not found", id))
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	return s.GetProfileByID(ctx, id)
}
