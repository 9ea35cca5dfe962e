package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrolly/enrolly/internal/app/models"
)

func mustMarshal(t *testing.T, v interface{}) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

func TestNewStudentResponseWithoutRelations(t *testing.T) {
	student := &models.Student{ID: 1, Name: "Bo", Email: "bo@x.com"}

	resp := NewStudentResponse(student)

	assert.JSONEq(t, `{
		"id": 1,
		"name": "Bo",
		"email": "bo@x.com",
		"profile": null,
		"enrollments": []
	}`, mustMarshal(t, resp))
}

func TestNewStudentResponseWithRelations(t *testing.T) {
	enrolled := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	student := &models.Student{
		ID:    1,
		Name:  "Bo",
		Email: "bo@x.com",
		Profile: &models.Profile{
			ID:        7,
			Age:       21,
			Bio:       "Loves graph theory",
			StudentID: 1,
		},
		Enrollments: []models.Enrollment{
			{
				ID:           3,
				StudentID:    1,
				CourseID:     2,
				DateEnrolled: enrolled,
				Grade:        models.DefaultGrade,
				Course: &models.Course{
					ID:           2,
					Title:        "Algorithms",
					InstructorID: ptrInt64(5),
					Instructor:   &models.Instructor{ID: 5, Name: "Ada"},
				},
			},
		},
	}

	resp := NewStudentResponse(student)

	require.NotNil(t, resp.Profile)
	assert.Equal(t, int64(1), resp.Profile.StudentID)
	require.Len(t, resp.Enrollments, 1)

	nested := resp.Enrollments[0]
	assert.Equal(t, "N/A", nested.Grade)
	require.NotNil(t, nested.Course)
	assert.Equal(t, "Algorithms", nested.Course.Title)
	require.NotNil(t, nested.Course.Instructor)
	assert.Equal(t, "Ada", nested.Course.Instructor.Name)

	// The nested course never expands its own enrollments, so marshaling
	// a fully loaded student terminates.
	raw := mustMarshal(t, resp)
	assert.NotContains(t, raw, `"student_count"`)
	assert.NotContains(t, raw, `"enrollments":[{"enrollments"`)
}

func TestNewProfileResponse(t *testing.T) {
	profile := &models.Profile{ID: 7, Age: 21, Bio: "Loves graph theory", StudentID: 1}

	assert.JSONEq(t, `{
		"age": 21,
		"bio": "Loves graph theory",
		"student_id": 1
	}`, mustMarshal(t, NewProfileResponse(profile)))
}

func TestNewInstructorResponseEmptyCourses(t *testing.T) {
	instructor := &models.Instructor{ID: 5, Name: "Ada"}

	assert.JSONEq(t, `{
		"id": 5,
		"name": "Ada",
		"courses": []
	}`, mustMarshal(t, NewInstructorResponse(instructor)))
}

func TestNewInstructorResponseWithCourses(t *testing.T) {
	instructor := &models.Instructor{
		ID:   5,
		Name: "Ada",
		Courses: []models.Course{
			{ID: 2, Title: "Algorithms", InstructorID: ptrInt64(5)},
		},
	}

	assert.JSONEq(t, `{
		"id": 5,
		"name": "Ada",
		"courses": [{"id": 2, "title": "Algorithms", "instructor_id": 5}]
	}`, mustMarshal(t, NewInstructorResponse(instructor)))
}

func TestNewCourseResponseWithoutInstructor(t *testing.T) {
	course := &models.Course{ID: 2, Title: "Algorithms", StudentCount: 0}

	assert.JSONEq(t, `{
		"id": 2,
		"title": "Algorithms",
		"instructor": null,
		"student_count": 0
	}`, mustMarshal(t, NewCourseResponse(course)))
}

func TestNewCourseResponseWithInstructor(t *testing.T) {
	course := &models.Course{
		ID:           2,
		Title:        "Algorithms",
		InstructorID: ptrInt64(5),
		Instructor:   &models.Instructor{ID: 5, Name: "Ada"},
		StudentCount: 12,
	}

	assert.JSONEq(t, `{
		"id": 2,
		"title": "Algorithms",
		"instructor": {"id": 5, "name": "Ada"},
		"student_count": 12
	}`, mustMarshal(t, NewCourseResponse(course)))
}

func TestNewEnrollmentResponseWithCourse(t *testing.T) {
	enrolled := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	enrollment := &models.Enrollment{
		ID:           3,
		StudentID:    1,
		CourseID:     2,
		DateEnrolled: enrolled,
		Grade:        "A",
		Course: &models.Course{
			ID:           2,
			Title:        "Algorithms",
			InstructorID: ptrInt64(5),
			Instructor:   &models.Instructor{ID: 5, Name: "Ada"},
		},
	}

	assert.JSONEq(t, `{
		"id": 3,
		"student_id": 1,
		"course_id": 2,
		"date_enrolled": "2024-03-01T12:00:00Z",
		"grade": "A",
		"course": {
			"id": 2,
			"title": "Algorithms",
			"instructor_id": 5,
			"instructor": {"id": 5, "name": "Ada"}
		}
	}`, mustMarshal(t, NewEnrollmentResponse(enrollment)))
}

func TestNewEnrollmentResponseNilCourse(t *testing.T) {
	enrollment := &models.Enrollment{ID: 3, StudentID: 1, CourseID: 2, Grade: "N/A"}

	resp := NewEnrollmentResponse(enrollment)

	assert.Nil(t, resp.Course)
	assert.Contains(t, mustMarshal(t, resp), `"course":null`)
}

func TestNewEnrollmentResponseCourseWithoutInstructor(t *testing.T) {
	enrollment := &models.Enrollment{
		ID:        3,
		StudentID: 1,
		CourseID:  2,
		Grade:     "N/A",
		Course:    &models.Course{ID: 2, Title: "Algorithms"},
	}

	resp := NewEnrollmentResponse(enrollment)

	require.NotNil(t, resp.Course)
	assert.Nil(t, resp.Course.InstructorID)
	assert.Nil(t, resp.Course.Instructor)

	raw := mustMarshal(t, resp)
	assert.Contains(t, raw, `"instructor_id":null`)
	assert.Contains(t, raw, `"instructor":null`)
}

func TestUpdateCourseRequestInstructorIDStates(t *testing.T) {
	var absent UpdateCourseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Algorithms"}`), &absent))
	assert.False(t, absent.InstructorID.Set)

	var null UpdateCourseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"instructor_id":null}`), &null))
	assert.True(t, null.InstructorID.Set)
	assert.False(t, null.InstructorID.Valid)

	var value UpdateCourseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"instructor_id":5}`), &value))
	assert.True(t, value.InstructorID.Set)
	assert.True(t, value.InstructorID.Valid)
	assert.Equal(t, int64(5), value.InstructorID.Value)
}

func TestListConvertersNeverMarshalNull(t *testing.T) {
	assert.Equal(t, "[]", mustMarshal(t, NewStudentListResponse(nil)))
	assert.Equal(t, "[]", mustMarshal(t, NewInstructorListResponse(nil)))
	assert.Equal(t, "[]", mustMarshal(t, NewCourseListResponse(nil)))
	assert.Equal(t, "[]", mustMarshal(t, NewEnrollmentListResponse(nil)))
}

func ptrInt64(v int64) *int64 { return &v }
