package pkg

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies every failure the lifecycle core can report.
//
// The kinds are stable contract values:
//   - validation:    malformed input, never retried
//   - forbidden:     caller is not the authorized owner/role
//   - not_found:     referenced entity does not exist in caller's scope
//   - invalid_state: operation not permitted in the entity's current state
//   - blocked:       completion gated by pending change requests (subtype of invalid_state)
//   - conflict:      concurrent-mutation detected; caller should reload and re-decide

type ErrorKind string

const (
	ErrorKindValidation   ErrorKind = "validation"
	ErrorKindForbidden    ErrorKind = "forbidden"
	ErrorKindNotFound     ErrorKind = "not_found"
	ErrorKindInvalidState ErrorKind = "invalid_state"
	ErrorKindBlocked      ErrorKind = "blocked"
	ErrorKindConflict     ErrorKind = "conflict"
	ErrorKindInternal     ErrorKind = "internal"
)

// AppError is the structured error returned by use cases and rendered by handlers.
//
// State-transition failures carry RequiredState/ActualState so the presentation
// layer can build an actionable message without parsing the text.
type AppError struct {
	Kind          ErrorKind
	Code          string
	Message       string
	Entity        string
	EntityID      string
	RequiredState string
	ActualState   string
	HTTPStatus    int
	Err           error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// Is lets errors.Is match two AppErrors by Kind and Code, so sentinel-style
// comparisons keep working across wrapping.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Code == "" || e.Code == t.Code)
}

// HTTPError is the JSON body written by handlers.
type HTTPError struct {
	Kind          string `json:"kind"`
	Code          string `json:"code"`
	Message       string `json:"message"`
	Entity        string `json:"entity,omitempty"`
	EntityID      string `json:"entity_id,omitempty"`
	RequiredState string `json:"required_state,omitempty"`
	ActualState   string `json:"actual_state,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Kind:          string(e.Kind),
		Code:          e.Code,
		Message:       e.Message,
		Entity:        e.Entity,
		EntityID:      e.EntityID,
		RequiredState: e.RequiredState,
		ActualState:   e.ActualState,
	}
}

func NewValidationError(code, message string) *AppError {
	return &AppError{Kind: ErrorKindValidation, Code: code, Message: message, HTTPStatus: http.StatusBadRequest}
}

func NewForbiddenError(entity, entityID string) *AppError {
	return &AppError{
		Kind:       ErrorKindForbidden,
		Code:       "FORBIDDEN",
		Message:    "caller is not authorized to act on this " + entity,
		Entity:     entity,
		EntityID:   entityID,
		HTTPStatus: http.StatusForbidden,
	}
}

// WithMessage overrides the default message, keeping kind/code/status.
func (e *AppError) WithMessage(message string) *AppError {
	e.Message = message
	return e
}

func NewNotFoundError(entity, entityID string) *AppError {
	return &AppError{
		Kind:       ErrorKindNotFound,
		Code:       entityCode(entity) + "_NOT_FOUND",
		Message:    entity + " not found",
		Entity:     entity,
		EntityID:   entityID,
		HTTPStatus: http.StatusNotFound,
	}
}

func NewInvalidStateError(entity, entityID, required, actual string) *AppError {
	return &AppError{
		Kind:          ErrorKindInvalidState,
		Code:          "INVALID_STATE",
		Message:       fmt.Sprintf("%s must be %s, but is %s", entity, required, actual),
		Entity:        entity,
		EntityID:      entityID,
		RequiredState: required,
		ActualState:   actual,
		HTTPStatus:    http.StatusUnprocessableEntity,
	}
}

// NewBlockedError is reserved for the pending-change-request completion gate.
// Kept distinct from InvalidState so callers can render "resolve pending changes first".
func NewBlockedError(workOrderID string, pendingChanges int) *AppError {
	return &AppError{
		Kind:          ErrorKindBlocked,
		Code:          "PENDING_CHANGE_REQUESTS",
		Message:       fmt.Sprintf("work order has %d pending change request(s) awaiting rider decision", pendingChanges),
		Entity:        "work_order",
		EntityID:      workOrderID,
		RequiredState: "no pending change requests",
		HTTPStatus:    http.StatusUnprocessableEntity,
	}
}

func NewConflictError(entity, entityID, message string) *AppError {
	return &AppError{
		Kind:       ErrorKindConflict,
		Code:       "CONFLICT",
		Message:    message,
		Entity:     entity,
		EntityID:   entityID,
		HTTPStatus: http.StatusConflict,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Kind:       ErrorKindInternal,
		Code:       "INTERNAL_ERROR",
		Message:    "An internal error occurred",
		Err:        err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func entityCode(entity string) string {
	out := make([]byte, 0, len(entity))
	for i := 0; i < len(entity); i++ {
		c := entity[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c == ' ' {
			c = '_'
		}
		out = append(out, c)
	}
	return string(out)
}
