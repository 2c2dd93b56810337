// Enumeration-like type for content mimetypes.
package mimetype

import (
	"strings"
)

/*
MimeType is used to enumerate the default representation for content encoding types.
Non default MimeTypes can be used by wrapping a custom string:

	MimeType("application/cloudevents+xml")
*/
type MimeType string

const (
	// XML is the mimetype stamped on successful response payloads.
	XML = MimeType("application/xml")

	// TextXML is the legacy xml mimetype. Accepted for incoming requests, never
	// written to responses.
	TextXML = MimeType("text/xml")

	// PlainText is the mimetype stamped on rejection and encode-failure payloads.
	PlainText = MimeType("text/plain; charset=utf-8")

	// UNKNOWN is used when the incoming string is blank.
	UNKNOWN = MimeType("")
)

// Interface for object used to fetch headers such as http.Request.Header or
// http.Response.Header
type headerFetcher interface {
	Get(string) string
}

// Extract content type from a message / request header.
func FromHeader(headers headerFetcher) MimeType {
	return FromString(headers.Get("Content-Type"))
}

// Convert MimeType from a string. Surrounding whitespace is ignored. A blank value
// yields UNKNOWN. Case is preserved here; Parse handles case folding.
func FromString(incoming string) MimeType {
	incoming = strings.TrimSpace(incoming)

	if incoming == "" {
		return UNKNOWN
	}

	return MimeType(incoming)
}
