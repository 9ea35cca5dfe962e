package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_students_email"}

	assert.True(t, IsDuplicateConstraintError(dup, "uq_students_email"))
	assert.True(t, IsDuplicateConstraintError(fmt.Errorf("insert failed: %w", dup), "uq_students_email"))
	assert.False(t, IsDuplicateConstraintError(dup, "uq_profiles_student_id"))
	assert.False(t, IsDuplicateConstraintError(errors.New("not a pg error"), "uq_students_email"))
	assert.False(t, IsDuplicateConstraintError(nil, "uq_students_email"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_enrollments_student_id_students"}

	assert.True(t, IsForeignKeyViolation(fk, "fk_enrollments_student_id_students"))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("insert failed: %w", fk), "fk_enrollments_student_id_students"))
	assert.False(t, IsForeignKeyViolation(fk, "fk_enrollments_course_id_courses"))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505", ConstraintName: "fk_enrollments_student_id_students"}, "fk_enrollments_student_id_students"))
	assert.False(t, IsForeignKeyViolation(nil, "fk_enrollments_student_id_students"))
}
