package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrolly/enrolly/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respondWith(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/student/42", nil)

	HandleAPIError(ctx, err)
	return recorder
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	w := respondWith(t, apperrors.NewResourceNotFoundError("student with id 42 not found"))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message": "student with id 42 not found"}`, w.Body.String())
}

func TestHandleAPIErrorConflict(t *testing.T) {
	w := respondWith(t, apperrors.NewConflictError("student 1 is already enrolled in course 2"))

	require.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message": "student 1 is already enrolled in course 2"}`, w.Body.String())
}

func TestHandleAPIErrorValidation(t *testing.T) {
	w := respondWith(t, apperrors.ErrValidationFailed)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAPIErrorBadRequest(t *testing.T) {
	w := respondWith(t, apperrors.NewBadRequestError("id must be a valid number"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAPIErrorUnknownIsInternal(t *testing.T) {
	w := respondWith(t, errors.New("pq: connection reset"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message": "internal server error"}`, w.Body.String())
}
