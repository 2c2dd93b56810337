package mimetype

import (
	"golang.org/x/xerrors"
	"mime"
	"strings"
)

/*
MediaType is the parsed form of a MimeType, split per the standard media-type
grammar:

	type "/" subtype ["+" suffix] *[";" parameter]

For "application/cloudevents+xml; charset=utf-8" the fields come out as:

• Type: "application"

• Subtype: "cloudevents"

• Suffix: "xml"

• Params: {"charset": "utf-8"}

Type, Subtype and Suffix are always lower-cased. A suffix is only recognized
after the LAST '+' in the subtype, so "application/vnd.a+b+xml" has suffix
"xml".
*/
type MediaType struct {
	Type    string
	Subtype string
	Suffix  string
	Params  map[string]string
}

// Parse converts a MimeType into its MediaType form. Blank values and values
// that do not conform to the media-type grammar return an error, which callers
// should treat as "matches nothing" rather than a failure they need to surface.
func Parse(mimeType MimeType) (*MediaType, error) {
	value, params, err := mime.ParseMediaType(string(mimeType))
	if err != nil {
		return nil, xerrors.Errorf("error parsing mimetype %q: %w", mimeType, err)
	}

	// mime.ParseMediaType accepts bare types like "text". We need the full
	// type/subtype form.
	split := strings.Split(value, "/")
	if len(split) != 2 || split[0] == "" || split[1] == "" {
		return nil, xerrors.New("mimetype " + string(mimeType) + " is not type/subtype")
	}

	parsed := &MediaType{
		Type:    split[0],
		Subtype: split[1],
		Params:  params,
	}

	if plus := strings.LastIndex(parsed.Subtype, "+"); plus != -1 {
		parsed.Suffix = parsed.Subtype[plus+1:]
		parsed.Subtype = parsed.Subtype[:plus]
	}

	return parsed, nil
}

// IsXML reports whether the media type is xml-shaped: the type must be
// 'application' or 'text', and either the subtype or the structured suffix must
// be 'xml'. Parameters play no part in the decision, so
// "application/xml; charset=utf-8" and "application/cloudevents+xml" both
// qualify while "application/json" and "image/svg+xml" do not.
func (mediaType *MediaType) IsXML() bool {
	if mediaType.Type != "application" && mediaType.Type != "text" {
		return false
	}

	return mediaType.Subtype == "xml" || mediaType.Suffix == "xml"
}

// IsXML parses mimeType and reports whether it is xml-shaped. Blank and
// malformed values report false.
func IsXML(mimeType MimeType) bool {
	mediaType, err := Parse(mimeType)
	if err != nil {
		return false
	}

	return mediaType.IsXML()
}
