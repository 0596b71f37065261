package services

import (
	"errors"

	"gorm.io/gorm"
)

// Kind classifies a ServiceError.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindForbidden
	KindInvalid
)

// ServiceError is a user-visible failure scoped to a single request.
type ServiceError struct {
	Kind    Kind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Is matches any ServiceError of the same Kind, so callers can write
// errors.Is(err, services.ErrNotFound).
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotFound  = &ServiceError{Kind: KindNotFound, Message: "not found"}
	ErrConflict  = &ServiceError{Kind: KindConflict, Message: "already exists"}
	ErrForbidden = &ServiceError{Kind: KindForbidden, Message: "forbidden"}
	ErrInvalid   = &ServiceError{Kind: KindInvalid, Message: "invalid request"}
)

func NotFound(msg string) error {
	return &ServiceError{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &ServiceError{Kind: KindConflict, Message: msg}
}

func Forbidden(msg string) error {
	return &ServiceError{Kind: KindForbidden, Message: msg}
}

func Invalid(msg string) error {
	return &ServiceError{Kind: KindInvalid, Message: msg}
}

// translate maps storage errors onto the service taxonomy. Unique index
// violations become conflicts and missing rows become not-found errors; any
// other error is returned unchanged.
func translate(err error, notFoundMsg, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound) && notFoundMsg != "":
		return NotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey) && conflictMsg != "":
		return Conflict(conflictMsg)
	default:
		return err
	}
}

// Messages shared by several services.
const (
	msgResourceNotFound = "The resource with this id does not exist"
	msgResourceExists   = "The resource with this name already exists"
	msgNodeExists       = "The resource node with this url already exists"
	msgReportNotFound   = "The report with this id does not exist"
	msgReportExists     = "The report with this id already exists"
)
