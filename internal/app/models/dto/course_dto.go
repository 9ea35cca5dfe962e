package dto

import "github.com/enrolly/enrolly/internal/app/models"

// CreateCourseRequest is the payload for POST /course
type CreateCourseRequest struct {
	Title        string `json:"title" binding:"required" example:"Algorithms"`
	InstructorID *int64 `json:"instructor_id" example:"1"`
}

// UpdateCourseRequest is the partial payload for PUT /course/{id}.
// instructor_id is the one nullable column: an explicit null detaches the
// course from its instructor, an absent key leaves it untouched.
type UpdateCourseRequest struct {
	Title        *string              `json:"title,omitempty"`
	InstructorID models.OptionalInt64 `json:"instructor_id"`
}

// CourseResponse is the serialized form of a course. The instructor is
// reduced to a summary and enrollments are collapsed into student_count.
type CourseResponse struct {
	ID           int64              `json:"id"`
	Title        string             `json:"title"`
	Instructor   *InstructorSummary `json:"instructor"`
	StudentCount int                `json:"student_count"`
}

// NewCourseResponse serializes a course with its loaded instructor.
func NewCourseResponse(course *models.Course) *CourseResponse {
	resp := &CourseResponse{
		ID:           course.ID,
		Title:        course.Title,
		StudentCount: course.StudentCount,
	}

	if course.Instructor != nil {
		resp.Instructor = &InstructorSummary{
			ID:   course.Instructor.ID,
			Name: course.Instructor.Name,
		}
	}

	return resp
}

// NewCourseListResponse serializes a list of courses.
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, *NewCourseResponse(course))
	}
	return out
}
