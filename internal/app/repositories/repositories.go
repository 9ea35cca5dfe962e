package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	ProfileRepository    *ProfileRepository
	InstructorRepository *InstructorRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		ProfileRepository:    NewProfileRepository(db),
		InstructorRepository: NewInstructorRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
