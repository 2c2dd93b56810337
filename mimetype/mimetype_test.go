package mimetype_test

//revive:disable:import-shadowing reason: Disabled for assert := assert.New(), which is
// the preferred method of using multiple asserts in a test.

import (
	"github.com/illuscio-dev/spanxml-go/mimetype"
	"github.com/stretchr/testify/assert"
	"net/http"
	"testing"
)

func ParameterizeFromString(
	test *testing.T, testStrings []string, mimeTypeExpected mimetype.MimeType,
) {
	for _, mimeTypeString := range testStrings {
		mimeTypeExtracted := mimetype.FromString(mimeTypeString)
		assert.Equal(test, mimeTypeExpected, mimeTypeExtracted)
	}
}

func ParameterizeFromHeader(
	test *testing.T, testStrings []string, mimeTypeExpected mimetype.MimeType,
) {
	for _, mimeTypeString := range testStrings {
		req := http.Request{
			Header: make(http.Header),
		}
		req.Header.Set("Content-Type", mimeTypeString)
		mimeTypeExtracted := mimetype.FromHeader(req.Header)
		assert.Equal(test, mimeTypeExpected, mimeTypeExtracted)
	}
}

func TestFromXML(test *testing.T) {
	stringValues := []string{
		"application/xml",
		" application/xml ",
		"\tapplication/xml",
	}

	testFromString := func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, mimetype.XML)
	}
	testFromHeader := func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, mimetype.XML)
	}

	test.Run("XML From String", testFromString)
	test.Run("XML From Header", testFromHeader)
}

func TestFromTextXML(test *testing.T) {
	stringValues := []string{
		"text/xml",
		" text/xml ",
	}

	testFromString := func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, mimetype.TextXML)
	}
	testFromHeader := func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, mimetype.TextXML)
	}

	test.Run("TextXML From String", testFromString)
	test.Run("TextXML From Header", testFromHeader)
}

func TestFromUnknown(test *testing.T) {
	stringValues := []string{"", "   ", "\t"}

	testFromString := func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, mimetype.UNKNOWN)
	}
	testFromHeader := func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, mimetype.UNKNOWN)
	}

	test.Run("UNKNOWN From String", testFromString)
	test.Run("UNKNOWN From Header", testFromHeader)
}

func TestFromHeaderMissing(test *testing.T) {
	req := http.Request{
		Header: make(http.Header),
	}

	assert.Equal(test, mimetype.UNKNOWN, mimetype.FromHeader(req.Header))
}

// Values that are not one of the default mimetypes come through with case and
// parameters untouched. Parse is where normalization happens.
func TestFromStringOther(test *testing.T) {
	assert := assert.New(test)

	assert.Equal(
		mimetype.MimeType("text/csv"), mimetype.FromString(" text/csv "),
	)
	assert.Equal(
		mimetype.MimeType("TEXT/CSV"), mimetype.FromString("TEXT/CSV"),
	)
	assert.Equal(
		mimetype.MimeType("application/xml; charset=ISO-8859-1"),
		mimetype.FromString("application/xml; charset=ISO-8859-1"),
	)
}

func TestParse(test *testing.T) {
	assert := assert.New(test)

	mediaType, err := mimetype.Parse(mimetype.XML)
	if err != nil {
		test.Error(err)
	}

	assert.Equal("application", mediaType.Type)
	assert.Equal("xml", mediaType.Subtype)
	assert.Equal("", mediaType.Suffix)
	assert.Empty(mediaType.Params)
}

func TestParseParams(test *testing.T) {
	assert := assert.New(test)

	mediaType, err := mimetype.Parse("application/xml; charset=ISO-8859-1")
	if err != nil {
		test.Error(err)
	}

	assert.Equal("application", mediaType.Type)
	assert.Equal("xml", mediaType.Subtype)
	assert.Equal("ISO-8859-1", mediaType.Params["charset"])
}

func TestParseCaseFolds(test *testing.T) {
	assert := assert.New(test)

	mediaType, err := mimetype.Parse("APPLICATION/XML; CHARSET=utf-8")
	if err != nil {
		test.Error(err)
	}

	assert.Equal("application", mediaType.Type)
	assert.Equal("xml", mediaType.Subtype)
	assert.Equal("utf-8", mediaType.Params["charset"])
}

func TestParseSuffix(test *testing.T) {
	assert := assert.New(test)

	mediaType, err := mimetype.Parse("application/cloudevents+xml")
	if err != nil {
		test.Error(err)
	}

	assert.Equal("application", mediaType.Type)
	assert.Equal("cloudevents", mediaType.Subtype)
	assert.Equal("xml", mediaType.Suffix)
}

// Only the last '+' opens a suffix.
func TestParseMultiPlusSuffix(test *testing.T) {
	assert := assert.New(test)

	mediaType, err := mimetype.Parse("application/vnd.task+v1+xml")
	if err != nil {
		test.Error(err)
	}

	assert.Equal("vnd.task+v1", mediaType.Subtype)
	assert.Equal("xml", mediaType.Suffix)
}

func ParameterizeParseError(test *testing.T, testStrings []string) {
	for _, mimeTypeString := range testStrings {
		mediaType, err := mimetype.Parse(mimetype.FromString(mimeTypeString))
		assert.Nil(test, mediaType, mimeTypeString)
		assert.Error(test, err, mimeTypeString)
	}
}

func TestParseInvalid(test *testing.T) {
	ParameterizeParseError(
		test,
		[]string{
			"",
			"text",
			"xml",
			"application/",
			"/xml",
		},
	)
}

func ParameterizeIsXML(test *testing.T, testStrings []string, expected bool) {
	for _, mimeTypeString := range testStrings {
		accepted := mimetype.IsXML(mimetype.FromString(mimeTypeString))
		assert.Equal(test, expected, accepted, mimeTypeString)
	}
}

func TestIsXMLAccepted(test *testing.T) {
	ParameterizeIsXML(
		test,
		[]string{
			"application/xml",
			"APPLICATION/XML",
			"application/xml; charset=utf-8",
			"application/xml;charset=utf-8",
			"text/xml",
			"text/xml; charset=ISO-8859-1",
			"application/cloudevents+xml",
			"application/rss+xml",
			"text/foo+xml",
			"application/vnd.task+v1+xml",
		},
		true,
	)
}

func TestIsXMLRejected(test *testing.T) {
	ParameterizeIsXML(
		test,
		[]string{
			"",
			"xml",
			"application/json",
			"text/plain",
			"text/html",
			"image/svg+xml",
			"application/xml-dtd",
			"application/xmlfoo",
			"multipart/form-data",
		},
		false,
	)
}

func TestMediaTypeIsXML(test *testing.T) {
	assert := assert.New(test)

	mediaType, err := mimetype.Parse("application/cloudevents+xml")
	if err != nil {
		test.Error(err)
	}
	assert.True(mediaType.IsXML())

	// The suffix rule does not override the type rule.
	mediaType, err = mimetype.Parse("image/svg+xml")
	if err != nil {
		test.Error(err)
	}
	assert.False(mediaType.IsXML())
}
