package models

import "time"

// DefaultGrade is assigned to an enrollment created without an explicit grade.
const DefaultGrade = "N/A"

// Enrollment links a student to a course. The unique constraint on
// (student_id, course_id) guarantees a student enrolls in a course at
// most once.
type Enrollment struct {
	ID           int64     `json:"id" db:"id"`
	Grade        string    `json:"grade" db:"grade"`
	DateEnrolled time.Time `json:"date_enrolled" db:"date_enrolled"`
	StudentID    int64     `json:"student_id" db:"student_id"`
	CourseID     int64     `json:"course_id" db:"course_id"`

	// Relation (populated when needed). The student side stays collapsed
	// to StudentID in every payload.
	Course *Course `json:"course,omitempty"`
}
