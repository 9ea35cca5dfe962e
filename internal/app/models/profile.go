package models

// Profile defines the profile model based on the 'profiles' table.
// The unique constraint on student_id keeps the relation one-to-one.
type Profile struct {
	ID        int64  `json:"id" db:"id"`
	Age       int    `json:"age" db:"age"`
	Bio       string `json:"bio" db:"bio"`
	StudentID int64  `json:"student_id" db:"student_id"`
}
