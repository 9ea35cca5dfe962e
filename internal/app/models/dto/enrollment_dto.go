package dto

import (
	"time"

	"github.com/enrolly/enrolly/internal/app/models"
)

// CreateEnrollmentRequest is the payload for POST /enrollment
type CreateEnrollmentRequest struct {
	StudentID int64  `json:"student_id" binding:"required" example:"1"`
	CourseID  int64  `json:"course_id" binding:"required" example:"1"`
	Grade     string `json:"grade" example:"A"`
}

// EnrollmentCourse is the form a course takes when nested inside an
// enrollment payload: its own enrollments are suppressed, the instructor
// is reduced to a summary.
type EnrollmentCourse struct {
	ID           int64              `json:"id"`
	Title        string             `json:"title"`
	InstructorID *int64             `json:"instructor_id"`
	Instructor   *InstructorSummary `json:"instructor"`
}

// EnrollmentResponse is the serialized form of an enrollment. The student
// side of the relation is reduced to student_id.
type EnrollmentResponse struct {
	ID           int64             `json:"id"`
	StudentID    int64             `json:"student_id"`
	CourseID     int64             `json:"course_id"`
	DateEnrolled time.Time         `json:"date_enrolled"`
	Grade        string            `json:"grade"`
	Course       *EnrollmentCourse `json:"course"`
}

// NewEnrollmentResponse serializes an enrollment with its loaded course.
// A missing course serializes as null rather than failing.
func NewEnrollmentResponse(enrollment *models.Enrollment) *EnrollmentResponse {
	resp := &EnrollmentResponse{
		ID:           enrollment.ID,
		StudentID:    enrollment.StudentID,
		CourseID:     enrollment.CourseID,
		DateEnrolled: enrollment.DateEnrolled,
		Grade:        enrollment.Grade,
	}

	if course := enrollment.Course; course != nil {
		resp.Course = &EnrollmentCourse{
			ID:           course.ID,
			Title:        course.Title,
			InstructorID: course.InstructorID,
		}
		if course.Instructor != nil {
			resp.Course.Instructor = &InstructorSummary{
				ID:   course.Instructor.ID,
				Name: course.Instructor.Name,
			}
		}
	}

	return resp
}

// NewEnrollmentListResponse serializes a list of enrollments.
func NewEnrollmentListResponse(enrollments []*models.Enrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		out = append(out, *NewEnrollmentResponse(enrollment))
	}
	return out
}
