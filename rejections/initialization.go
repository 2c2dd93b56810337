package rejections

import (
	uuid "github.com/satori/go.uuid"
	"golang.org/x/xerrors"
	"runtime/debug"
)

// Returns a rejection type definition. Each definition should only need to be declared
// once in a shared library for any given ecosystem, ensuring consistent api codes and
// names for the rejection type across all services / libraries of a given language.
func NewRejectionType(
	name string,
	apiCode int,
	httpCode int,
) *RejectionType {
	rejectionType := &RejectionType{
		name:     name,
		apiCode:  apiCode,
		httpCode: httpCode,
	}
	return rejectionType
}

// Returns a new rejection to be handed back by body extraction or rendered directly.
// Equivalent to calling rejectionType.New().
func NewRejection(
	rejectionType *RejectionType,
	message string,
	errorData map[string]any,
	source error,
) *Rejection {
	rejection := Rejection{
		RejectionType: rejectionType,
		Message:       message,
		ID:            uuid.NewV4(),
		ErrorData:     errorData,
		sourceErr:     source,
		sourceStack:   debug.Stack(),
		frame:         xerrors.Caller(0),
	}
	return &rejection
}
