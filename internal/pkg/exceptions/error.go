package exceptions

import (
	"clinic-booking-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

// Kind classifies an error for propagation and for the status code shown at the HTTP boundary.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindTransientNetwork Kind = "transient_network"
	KindConfiguration    Kind = "configuration"
	KindRejected         Kind = "rejected"
	KindInternal         Kind = "internal"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	Kind          Kind     `json:"kind"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
	Err           error    `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the location of its caller's caller, which is the
// site that invoked one of the Err* constructors.
func BuildNewCustomError(err error, kind Kind, clientMessage, devMessage string) *CustomError {
	return buildCustomError(err, kind, clientMessage, devMessage, 4)
}

func buildCustomError(err error, kind Kind, clientMessage, devMessage string, skip int) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    StatusCodeForKind(kind),
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(skip),
		Err:           err,
	}
}

func StatusCodeForKind(kind Kind) int {
	switch kind {
	case KindValidation:
		return constvars.StatusBadRequest
	case KindNotFound:
		return constvars.StatusNotFound
	case KindConflict:
		return constvars.StatusConflict
	case KindConfiguration:
		return constvars.StatusUnauthorized
	case KindTransientNetwork:
		return constvars.StatusServiceUnavailable
	case KindRejected:
		return constvars.StatusUnprocessableEntity
	default:
		return constvars.StatusInternalServerError
	}
}

// KindOf returns the kind of the first CustomError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ErrFileLocationUnknown,
			Line:         0,
			FunctionName: constvars.ErrFunctionNameUnknown,
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
