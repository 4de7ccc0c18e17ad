package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorCodeActivityNotFound    ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrorCodeParticipantNotFound ErrorCode = "PARTICIPANT_NOT_FOUND"
	ErrorCodeAlreadySignedUp     ErrorCode = "ALREADY_SIGNED_UP"
	ErrorCodeActivityFull        ErrorCode = "ACTIVITY_FULL"
	ErrorCodeInvalidActivity     ErrorCode = "INVALID_ACTIVITY"
)

// DomainError is a business rule violation that carries the HTTP status it
// should surface with.
type DomainError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsCode reports whether err is a DomainError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}
