package v1

import (
	"fmt"

	"github.com/yola1107/kratos/v2/errors"
)

// Error reasons returned in the body of failed requests.
const (
	// ErrorReason_LINE_TOO_LONG: the line exceeds biz.max_line_length (400).
	ErrorReason_LINE_TOO_LONG = "LINE_TOO_LONG"
	// ErrorReason_EVALUATION_NOT_FOUND: no evaluation with the requested id (404).
	ErrorReason_EVALUATION_NOT_FOUND = "EVALUATION_NOT_FOUND"
)

// IsLineTooLong reports whether err carries ErrorReason_LINE_TOO_LONG.
func IsLineTooLong(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReason_LINE_TOO_LONG && e.Code == 400
}

// ErrorLineTooLong builds a 400 error with ErrorReason_LINE_TOO_LONG.
func ErrorLineTooLong(format string, args ...interface{}) *errors.Error {
	return errors.New(400, ErrorReason_LINE_TOO_LONG, fmt.Sprintf(format, args...))
}

// IsEvaluationNotFound reports whether err carries ErrorReason_EVALUATION_NOT_FOUND.
func IsEvaluationNotFound(err error) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == ErrorReason_EVALUATION_NOT_FOUND && e.Code == 404
}

// ErrorEvaluationNotFound builds a 404 error with ErrorReason_EVALUATION_NOT_FOUND.
func ErrorEvaluationNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(404, ErrorReason_EVALUATION_NOT_FOUND, fmt.Sprintf(format, args...))
}
