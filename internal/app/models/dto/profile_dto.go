package dto

import "github.com/enrolly/enrolly/internal/app/models"

// CreateProfileRequest is the payload for POST /profile
type CreateProfileRequest struct {
	Age       *int   `json:"age" binding:"required" example:"21"`
	Bio       string `json:"bio" binding:"required" example:"Loves graph theory"`
	StudentID int64  `json:"student_id" binding:"required" example:"1"`
}

// UpdateProfileRequest is the partial payload for PUT /profile/{id}.
// The student binding is fixed at creation; only age and bio are writable.
type UpdateProfileRequest struct {
	Age *int    `json:"age,omitempty"`
	Bio *string `json:"bio,omitempty"`
}

// ProfileResponse is the serialized form of a profile. The owning student
// is reduced to its id to keep the payload acyclic.
type ProfileResponse struct {
	Age       int    `json:"age"`
	Bio       string `json:"bio"`
	StudentID int64  `json:"student_id"`
}

// NewProfileResponse serializes a profile.
func NewProfileResponse(profile *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		Age:       profile.Age,
		Bio:       profile.Bio,
		StudentID: profile.StudentID,
	}
}
