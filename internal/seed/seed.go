package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/enrolly/enrolly/internal/app/models"
	appRepos "github.com/enrolly/enrolly/internal/app/repositories"
)

// CreateSampleData inserts a small demo data set for development
// environments. It is a no-op when students already exist, and individual
// failures are collected rather than aborting the remaining inserts.
func CreateSampleData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	count, err := repos.StudentRepository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Msg("Sample data already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding sample data...")
	var finalErr error

	ada := &appModels.Instructor{Name: "Ada Lovelace"}
	if err := repos.InstructorRepository.Create(ctx, ada); err != nil {
		lgr.Error().Err(err).Msg("Error seeding instructor")
		finalErr = errors.Join(finalErr, err)
	}

	algorithms := &appModels.Course{Title: "Algorithms"}
	databases := &appModels.Course{Title: "Databases"}
	if ada.ID > 0 {
		algorithms.InstructorID = &ada.ID
		databases.InstructorID = &ada.ID
	}
	for _, course := range []*appModels.Course{algorithms, databases} {
		if err := repos.CourseRepository.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("title", course.Title).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	bo := &appModels.Student{Name: "Bo", Email: "bo@example.com"}
	lin := &appModels.Student{Name: "Lin", Email: "lin@example.com"}
	for _, student := range []*appModels.Student{bo, lin} {
		if err := repos.StudentRepository.Create(ctx, student); err != nil {
			lgr.Error().Err(err).Str("email", student.Email).Msg("Error seeding student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if bo.ID > 0 {
		profile := &appModels.Profile{Age: 21, Bio: "Exchange student", StudentID: bo.ID}
		if err := repos.ProfileRepository.Create(ctx, profile); err != nil {
			lgr.Error().Err(err).Msg("Error seeding profile")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if bo.ID > 0 && algorithms.ID > 0 {
		enrollment := &appModels.Enrollment{StudentID: bo.ID, CourseID: algorithms.ID, Grade: "A"}
		if err := repos.EnrollmentRepository.Create(ctx, enrollment); err != nil {
			lgr.Error().Err(err).Msg("Error seeding enrollment")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Sample data seeded")
	}
	return finalErr
}
