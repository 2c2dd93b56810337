package encoding

import (
	"bytes"
	"encoding/xml"
	"github.com/illuscio-dev/spanxml-go/xmltypes"
	"golang.org/x/xerrors"
	"io"
)

// Default xml encoder / decoder for XMLEngine. Delegates data binding to the
// standard library codec, applying engine-level settings.
type xmlCoder struct{}

func (coder *xmlCoder) Encode(
	engine Engine, writer io.Writer, content any,
) error {
	// Pre-encoded documents are relayed verbatim.
	if raw, ok := rawDocument(content); ok {
		_, err := writer.Write(raw)
		return err
	}

	opts := engine.Options()

	if opts.EmitHeader {
		if _, err := io.WriteString(writer, xml.Header); err != nil {
			return err
		}
	}

	encoder := xml.NewEncoder(writer)
	if opts.Indent != "" {
		encoder.Indent("", opts.Indent)
	}

	return encoder.Encode(content)
}

func (coder *xmlCoder) Decode(
	engine Engine, reader io.Reader, contentReceiver any,
) error {
	if receiver, ok := contentReceiver.(*xmltypes.RawDocument); ok {
		return captureRaw(reader, receiver)
	}

	decoder := coder.newDecoder(engine, reader)
	decoder.CharsetReader = engine.Options().CharsetReader

	return decoder.Decode(contentReceiver)
}

// DecodeCharset implements CharsetDecoder. The reader is converted from
// charsetLabel to utf-8 up front; the decoder's own charset hook is then a
// no-op so a document declaration naming the original charset does not trigger
// a second conversion.
func (coder *xmlCoder) DecodeCharset(
	engine Engine, reader io.Reader, contentReceiver any, charsetLabel string,
) error {
	if receiver, ok := contentReceiver.(*xmltypes.RawDocument); ok {
		// Relayed documents keep their original bytes and charset.
		return captureRaw(reader, receiver)
	}

	converted, err := engine.Options().CharsetReader(charsetLabel, reader)
	if err != nil {
		return xerrors.Errorf("converting charset %q: %w", charsetLabel, err)
	}

	decoder := coder.newDecoder(engine, converted)
	decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	return decoder.Decode(contentReceiver)
}

// Builds a decoder carrying the engine-level parser settings. The charset hook
// is left to the caller, since it differs between the document-declared and
// transport-declared paths.
func (coder *xmlCoder) newDecoder(engine Engine, reader io.Reader) *xml.Decoder {
	opts := engine.Options()

	decoder := xml.NewDecoder(reader)
	decoder.Strict = !opts.Lenient
	decoder.Entity = opts.Entity

	return decoder
}

// Extracts the raw payload from RawDocument content passed by value or by
// pointer.
func rawDocument(content any) ([]byte, bool) {
	switch typed := content.(type) {
	case xmltypes.RawDocument:
		return typed, true
	case *xmltypes.RawDocument:
		return *typed, true
	}
	return nil, false
}

// Reads the full payload into receiver without any parsing.
func captureRaw(reader io.Reader, receiver *xmltypes.RawDocument) error {
	buffer := new(bytes.Buffer)
	if _, err := buffer.ReadFrom(reader); err != nil {
		return err
	}

	*receiver = buffer.Bytes()
	return nil
}
