package models

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	// Relations (populated when needed)
	Courses []Course `json:"courses,omitempty"`
}
