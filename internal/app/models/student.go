package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`

	// Relations (populated when needed)
	Profile     *Profile     `json:"profile,omitempty"`
	Enrollments []Enrollment `json:"enrollments,omitempty"`
}
