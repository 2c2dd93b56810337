package spanxml

import (
	"bytes"
	"encoding/xml"
	"github.com/illuscio-dev/spanxml-go/encoding"
	"github.com/illuscio-dev/spanxml-go/mimetype"
	"github.com/illuscio-dev/spanxml-go/rejections"
	"golang.org/x/xerrors"
	"net/http"
)

/*
XML wraps a value bound to an xml http body.

On the request side, FromRequest yields an XML[T] holding the decoded body. On
the response side, WriteResponse renders the held value back out with the
content type and status codes clients expect. The zero value wraps the zero
value of T and is ready to use.
*/
type XML[T any] struct {
	// The application value bound to the body.
	Value T
}

// New wraps an already-built value for response rendering.
func New[T any](value T) *XML[T] {
	return &XML[T]{Value: value}
}

/*
FromRequest decodes the body of request into a new XML[T].

The request's declared content type has to be xml-shaped (see
mimetype.MediaType.IsXML) before the body is touched; requests that fail the
check are rejected without consuming the body. The body is then buffered in
full and decoded through engine, honoring a charset parameter on the content
type for payloads not already in utf-8.

The error return is always a *rejections.Rejection carrying exactly one of the
default rejection types (MissingXMLContentType, BodyReadFailure or
InvalidXMLBody) and can be rendered directly with WriteRejection.
*/
func FromRequest[T any](
	request *http.Request, engine encoding.Engine,
) (*XML[T], error) {
	mimeType := mimetype.FromHeader(request.Header)

	mediaType, err := mimetype.Parse(mimeType)
	if err != nil || !mediaType.IsXML() {
		return nil, rejections.MissingXMLContentType.New(
			rejections.MissingXMLContentTypeMessage,
			map[string]any{"received": string(mimeType)},
			nil,
		)
	}

	body := new(bytes.Buffer)
	if _, readErr := body.ReadFrom(request.Body); readErr != nil {
		return nil, rejections.BodyReadFailure.New(
			"Failed to buffer the request body: "+readErr.Error(),
			nil,
			readErr,
		)
	}

	var value T
	err = engine.DecodeBytesCharset(
		&value, body.Bytes(), mediaType.Params["charset"],
	)
	if err != nil {
		return nil, rejections.InvalidXMLBody.New(
			"Failed to parse the request body as XML: "+err.Error(),
			syntaxErrorData(err),
			err,
		)
	}

	return &XML[T]{Value: value}, nil
}

// Pulls line information out of parser syntax errors so hosts logging a
// rejection can point at the offending spot in the document.
func syntaxErrorData(err error) map[string]any {
	var syntaxErr *xml.SyntaxError
	if xerrors.As(err, &syntaxErr) {
		return map[string]any{"line": syntaxErr.Line}
	}

	return nil
}

/*
WriteResponse renders the held value to writer as a complete response.

The payload is encoded up front so a failure can still pick the status line: a
successful encode is written as 200 with Content-Type application/xml, while an
encode failure is written as 500 text/plain with the engine's error text as the
body.

The returned error reports what went wrong for the host to log. By the time it
is returned the response has already been written, so it should not be rendered
again.
*/
func (wrapper *XML[T]) WriteResponse(
	writer http.ResponseWriter, engine encoding.Engine,
) error {
	payload, err := engine.EncodeBytes(wrapper.Value)
	if err != nil {
		writer.Header().Set("Content-Type", string(mimetype.PlainText))
		writer.WriteHeader(http.StatusInternalServerError)
		_, _ = writer.Write([]byte(err.Error()))
		return err
	}

	writer.Header().Set("Content-Type", string(mimetype.XML))
	writer.WriteHeader(http.StatusOK)
	_, writeErr := writer.Write(payload)

	return writeErr
}

// WriteRejection renders err to writer as a complete response. Rejections
// carry their own status code and body text (see rejections.Rejection); any
// other error value is rendered as a plain 500 so the client never receives a
// half-finished exchange.
func WriteRejection(writer http.ResponseWriter, err error) {
	var rejection *rejections.Rejection
	if xerrors.As(err, &rejection) {
		rejection.WriteResponse(writer)
		return
	}

	writer.Header().Set("Content-Type", string(mimetype.PlainText))
	writer.WriteHeader(http.StatusInternalServerError)
	_, _ = writer.Write([]byte(err.Error()))
}
