package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/enrolly/enrolly/internal/app/models/dto"
)

// parseIDParam parses the :id path parameter, answering 400 on garbage.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("id must be a valid number"))
		return 0, false
	}
	return id, true
}

// bindJSON binds and validates a create payload, answering 400 with a
// readable message on failure.
func bindJSON(ctx *gin.Context, out interface{}) bool {
	if err := ctx.ShouldBindJSON(out); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return false
	}
	return true
}

// bindingErrorMessage turns a binding failure into a human-readable message.
func bindingErrorMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		messages := make([]string, 0, len(fieldErrors))
		for _, fieldError := range fieldErrors {
			switch fieldError.Tag() {
			case "required":
				messages = append(messages, fieldError.Field()+" is required")
			default:
				messages = append(messages, fieldError.Field()+" failed "+fieldError.Tag()+" validation")
			}
		}
		return strings.Join(messages, ", ")
	}
	return "invalid request body"
}

// decodePartial decodes a partial-update payload. Unknown keys are
// rejected so internal columns can never be written by accident.
func decodePartial(ctx *gin.Context, out interface{}) bool {
	decoder := json.NewDecoder(ctx.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid update payload: "+err.Error()))
		return false
	}
	return true
}
