package dto

// ErrorResponse is the standard error body: a human-readable message
// alongside the HTTP status code of the response.
type ErrorResponse struct {
	Message string `json:"message" example:"student with id 42 not found"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// MessageResponse is the confirmation body returned by delete operations
// and the health endpoint.
type MessageResponse struct {
	Message string `json:"message" example:"course deleted successfully"`
}

// NewMessageResponse creates a confirmation response
func NewMessageResponse(message string) *MessageResponse {
	return &MessageResponse{Message: message}
}

// CountResponse carries a bare row count, e.g. for /student_count.
type CountResponse struct {
	Count int64 `json:"count" example:"12"`
}
