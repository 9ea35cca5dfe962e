package models

// Course represents a course offered by an instructor.
type Course struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	InstructorID *int64 `json:"instructor_id,omitempty" db:"instructor_id"` // Nullable

	// Relation (populated when needed)
	Instructor *Instructor `json:"instructor,omitempty"`

	// StudentCount is the number of students enrolled in this course,
	// derived from the enrollments table.
	StudentCount int `json:"student_count" db:"-"`
}
