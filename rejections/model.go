package rejections

import (
	"fmt"
	"github.com/illuscio-dev/spanxml-go/mimetype"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/xerrors"
	"net/http"
	"runtime/debug"
	"strconv"
)

// HTTPCodeDynamic marks a RejectionType whose http code cannot be known until an
// actual rejection instance exists. See Rejection.ResponseCode.
const HTTPCodeDynamic = -1

/*
Used to define a kind of terminal failure the xml body tooling can hand back. Think of
it as a TYPE of rejection that CAN be produced while pulling a request body into a Go
value or rendering one back out.

Each RejectionType for a given ecosystem should have a unique Name and ApiCode.

Codes 2000-2099 are reserved for the default xml body rejection definitions.

Since types are declared as pointers, to protect against accidental mutation of the
rejection type by other packages, the underlying fields of this struct are private and
accessed through functions. Define new rejection types using NewRejectionType().
*/
type RejectionType struct {
	// Unique human-readable name of the rejection type for the API ecosystem.
	name string

	// Unique number to identify the rejection type in the API ecosystem.
	apiCode int

	// HTTP code that should be returned when this rejection type is produced. Set to
	// HTTPCodeDynamic if the http code is determined per-instance.
	httpCode int
}

// Returns a new rejection to be handed back by body extraction or rendered directly.
func (rejectionType *RejectionType) New(
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

// Unique human-readable name of the rejection type for the API ecosystem.
func (rejectionType *RejectionType) Name() string {
	return rejectionType.name
}

// Unique number to identify the rejection type in the API ecosystem.
func (rejectionType *RejectionType) ApiCode() int {
	return rejectionType.apiCode
}

// HTTP code that should be returned when this rejection type is produced. Returns
// HTTPCodeDynamic if the http code is determined per-instance.
func (rejectionType *RejectionType) HttpCode() int {
	return rejectionType.httpCode
}

// Returns a copy of the rejection type with the given http code replaced.
func (rejectionType *RejectionType) WithHttpCode(newHttpCode int) *RejectionType {
	return &RejectionType{
		name:     rejectionType.name,
		apiCode:  rejectionType.apiCode,
		httpCode: newHttpCode,
	}
}

// Allows the rejection type definition itself to also be a valid error for things like
// testing error equality.
func (rejectionType *RejectionType) Error() string {
	return rejectionType.name +
		" (" + strconv.Itoa(rejectionType.apiCode) + ")"
}

// Used to return a specific rejection instance.
type Rejection struct {
	// The type of rejection we are returning.
	*RejectionType

	// A message detailing what caused the rejection. This is also the full response
	// body a client receives when the rejection is rendered.
	Message string

	// An id for the rejection being returned.
	ID uuid.UUID

	// A string / any mapping of data related to the rejection.
	ErrorData map[string]any

	// If this rejection was produced because of another error, the original error is
	// stored here.
	sourceErr error

	// The debug.Stack() from where this rejection was instantiated.
	sourceStack []byte

	// The xerrors.Frame from where this rejection was instantiated.
	frame xerrors.Frame
}

// Returns true if the underlying type of this rejection is the same as rejectionType.
// Some rejections may have multiple http codes possible, so we can't just compare
// RejectionType field equality directly.
func (rejection *Rejection) IsType(rejectionType *RejectionType) bool {
	return rejection.RejectionType.Error() == rejectionType.Error()
}

// Error string to conform to builtin error interface.
func (rejection *Rejection) Error() string {
	return rejection.RejectionType.Error() + " - " + rejection.Message
}

// Implements xerrors.Wrapper interface. Part of how errors are being considered for
// implementation in future Go versions with more traceback support.
func (rejection *Rejection) Unwrap() error {
	// implements xerrors.Wrapper
	return rejection.sourceErr
}

// More verbose error message that includes a debug.Stack() and source error
// information. This is not part of the Error(), Message, or ErrorData by default since
// it may contain sensitive information that is not desirable to return to the client.
func (rejection *Rejection) LogMessage() string {
	loggerMessage := fmt.Sprint(
		// print the error
		"\nMESSAGE: ",
		rejection.Error(),
		"\nORIGINAL: ",
		rejection.sourceErr,
		"\nSOURCE STACK:\n",
		string(rejection.sourceStack),
	)
	return loggerMessage
}

// Resolves the http status code to send for this rejection instance. Most types carry
// a fixed HttpCode and that is what comes back. Types declared with HTTPCodeDynamic
// inspect the source error chain instead: a body read capped by http.MaxBytesReader
// resolves to 413, any other read failure to 400.
func (rejection *Rejection) ResponseCode() int {
	httpCode := rejection.HttpCode()
	if httpCode != HTTPCodeDynamic {
		return httpCode
	}

	var maxBytesErr *http.MaxBytesError
	if xerrors.As(rejection, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// Writes the rejection to writer as a complete response: ResponseCode() for the
// status, a plain text content type, and Message as the entire body. Name, ApiCode
// and ID stay out of the response so the body text matches the documented contract
// for each rejection type.
func (rejection *Rejection) WriteResponse(writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", string(mimetype.PlainText))
	writer.WriteHeader(rejection.ResponseCode())
	_, _ = writer.Write([]byte(rejection.Message))
}
