package dto

import "github.com/enrolly/enrolly/internal/app/models"

// CreateStudentRequest is the payload for POST /student
type CreateStudentRequest struct {
	Name  string `json:"name" binding:"required" example:"Bo"`
	Email string `json:"email" binding:"required" example:"bo@x.com"`
}

// UpdateStudentRequest is the partial payload for PUT /student/{id}.
// Only non-nil fields are written; unknown keys are rejected at decode time.
type UpdateStudentRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// StudentResponse is the serialized form of a student. The profile and
// enrollment branches never expand their back-reference to the student.
type StudentResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Profile     *ProfileResponse     `json:"profile"`
	Enrollments []EnrollmentResponse `json:"enrollments"`
}

// NewStudentResponse serializes a student with its loaded relations.
func NewStudentResponse(student *models.Student) *StudentResponse {
	resp := &StudentResponse{
		ID:          student.ID,
		Name:        student.Name,
		Email:       student.Email,
		Enrollments: make([]EnrollmentResponse, 0, len(student.Enrollments)),
	}

	if student.Profile != nil {
		resp.Profile = NewProfileResponse(student.Profile)
	}

	for i := range student.Enrollments {
		resp.Enrollments = append(resp.Enrollments, *NewEnrollmentResponse(&student.Enrollments[i]))
	}

	return resp
}

// NewStudentListResponse serializes a list of students.
func NewStudentListResponse(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		out = append(out, *NewStudentResponse(student))
	}
	return out
}
