package dto

import "github.com/enrolly/enrolly/internal/app/models"

// CreateInstructorRequest is the payload for POST /instructor
type CreateInstructorRequest struct {
	Name string `json:"name" binding:"required" example:"Ada"`
}

// UpdateInstructorRequest is the partial payload for PUT /instructor/{id}
type UpdateInstructorRequest struct {
	Name *string `json:"name,omitempty"`
}

// InstructorSummary is the scalar form an instructor takes when nested
// inside a course or enrollment payload.
type InstructorSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CourseSummary is the reduced form a course takes when nested inside an
// instructor payload; enrollments and the instructor back-reference are
// suppressed.
type CourseSummary struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	InstructorID *int64 `json:"instructor_id"`
}

// InstructorResponse is the serialized form of an instructor.
type InstructorResponse struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Courses []CourseSummary `json:"courses"`
}

// NewInstructorResponse serializes an instructor with its loaded courses.
func NewInstructorResponse(instructor *models.Instructor) *InstructorResponse {
	resp := &InstructorResponse{
		ID:      instructor.ID,
		Name:    instructor.Name,
		Courses: make([]CourseSummary, 0, len(instructor.Courses)),
	}

	for _, course := range instructor.Courses {
		resp.Courses = append(resp.Courses, CourseSummary{
			ID:           course.ID,
			Title:        course.Title,
			InstructorID: course.InstructorID,
		})
	}

	return resp
}

// NewInstructorListResponse serializes a list of instructors.
func NewInstructorListResponse(instructors []*models.Instructor) []InstructorResponse {
	out := make([]InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		out = append(out, *NewInstructorResponse(instructor))
	}
	return out
}
