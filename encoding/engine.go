package encoding

import (
	"bytes"
	"golang.org/x/net/html/charset"
	"golang.org/x/xerrors"
	"io"
	"strings"
)

// Interface for defining a content encoder.
type Encoder interface {
	// To be implemented by content encoder. Implementation is expected to write
	// content to writer. The engine which is calling Encode is made available
	// through engine, allowing encoders to access engine-level settings.
	Encode(engine Engine, writer io.Writer, content any) error
}

// Interface for defining a content decoder.
type Decoder interface {
	// To be implemented by content decoder. Implementation is expected to read
	// content from reader and unmarshal it into contentReceiver. The engine which
	// is calling Decode is made available through engine, allowing decoders to
	// access engine-level settings.
	Decode(engine Engine, reader io.Reader, contentReceiver any) error
}

// Optional extension of Decoder for content whose charset is declared by the
// transport rather than by the document itself (e.g. the charset parameter of a
// Content-Type header). Implementations must convert reader from charsetLabel
// to utf-8 before parsing, and must not convert a second time if the document
// declaration names a charset of its own.
type CharsetDecoder interface {
	DecodeCharset(
		engine Engine, reader io.Reader, contentReceiver any, charsetLabel string,
	) error
}

/*
EngineOpts holds the engine-level settings consulted by the default codec.

The zero value matches the defaults of the underlying data-binding library: a
strict parser, standard entities only, compact output with no document
declaration.
*/
type EngineOpts struct {
	// Lenient switches the parser out of strict mode, allowing common mistakes
	// like unmatched attribute quoting to pass. Leave false for wire-facing
	// services.
	Lenient bool

	// Entity is an optional map of non-standard entity names to string
	// replacements used while decoding.
	Entity map[string]string

	// CharsetReader converts content in the named charset to utf-8. It serves
	// both document-level declarations and transport-declared charsets. When nil,
	// NewXMLEngine installs charset.NewReaderLabel, which understands the WHATWG
	// encoding labels.
	CharsetReader func(charset string, input io.Reader) (io.Reader, error)

	// Indent turns on pretty-printed output using the given string per nesting
	// level. Blank writes compact output.
	Indent string

	// EmitHeader prepends the standard xml declaration to encoded output.
	EmitHeader bool
}

/*
Engine details the contract for an xml body engine. The goal of the engine is
to allow a common decoding and encoding methodology for request extraction,
response rendering, and client payload handling, with engine-level settings
declared once.

Implementation is done through an interface so that the engine can be extended
through type wrapping.
*/
type Engine interface {
	// Returns the engine-level settings consulted by the codec. Mutate before
	// the engine is shared between goroutines, not after.
	Options() *EngineOpts

	// Registers a replacement encoder.
	SetEncoder(encoder Encoder)

	// Registers a replacement decoder.
	SetDecoder(decoder Decoder)

	// Encode content to writer.
	Encode(content any, writer io.Writer) error

	// Encode content and return the resulting payload.
	EncodeBytes(content any) ([]byte, error)

	// Decode content from reader into contentReceiver.
	Decode(contentReceiver any, reader io.Reader) error

	// Decode a complete in-memory payload into contentReceiver.
	DecodeBytes(contentReceiver any, content []byte) error

	// Decode a complete in-memory payload whose charset was declared by the
	// transport. A blank or utf-8 label behaves exactly like DecodeBytes.
	DecodeBytesCharset(contentReceiver any, content []byte, charsetLabel string) error
}

/*
XMLEngine is the default implementation of the Engine interface.

Instantiation

Use NewXMLEngine() to create a new XMLEngine.

Data Binding

The default codec delegates to the standard data-binding library, so anything
its struct tags can express (attributes, chardata, renames, nesting) is
supported without additional configuration.

Charset Support

Payloads in charsets other than utf-8 are converted through
EngineOpts.CharsetReader. Document-level declarations are honored during
Decode / DecodeBytes; transport-declared charsets are honored through
DecodeBytesCharset, which takes care not to convert content twice when both
are present.

Raw Passthrough

Content of type xmltypes.RawDocument bypasses data binding entirely: it is
written verbatim on encode and captured verbatim on decode, letting services
relay pre-encoded documents.

Panics

If an encoder or decoder panics during execution, that panic is caught and
returned as an error.
*/
type XMLEngine struct {
	// Active encoder.
	encoder Encoder
	// Active decoder.
	decoder Decoder
	// Engine-level settings.
	opts *EngineOpts
	// Engine to pass to Encoder.Encode() and Decoder.Decode() methods.
	passedEngine Engine
}

// Change the engine passed into Encoder.Encode() and Decoder.Decode(). Used
// when extending the engine through type wrapping.
func (engine *XMLEngine) SetPassedEngine(newEngine Engine) {
	engine.passedEngine = newEngine
}

// Returns the engine-level settings.
func (engine *XMLEngine) Options() *EngineOpts {
	return engine.opts
}

// Register a replacement encoder.
func (engine *XMLEngine) SetEncoder(encoder Encoder) {
	engine.encoder = encoder
}

// Register a replacement decoder.
func (engine *XMLEngine) SetDecoder(decoder Decoder) {
	engine.decoder = decoder
}

// Select what engine to pass into the encoder / decoder in case we are
// extending the engine type.
func (engine *XMLEngine) getEngine() (passEngine Engine) {
	if engine.passedEngine != nil {
		passEngine = engine.passedEngine
	} else {
		passEngine = engine
	}

	return passEngine
}

// Converts a recovered panic value into an error.
func recoveredErr(operation string, recovered any) error {
	if recoveredErr, ok := recovered.(error); ok {
		return xerrors.Errorf("panic during "+operation+": %w", recoveredErr)
	}
	return xerrors.Errorf("panic during "+operation+": %v", recovered)
}

// Uses the encoder while catching panics to return as errors.
func (engine *XMLEngine) safeEncode(writer io.Writer, content any) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = recoveredErr("encode", recovered)
		}
	}()

	err = engine.encoder.Encode(engine.getEngine(), writer, content)
	return err
}

// Uses the decoder while catching panics to return as errors.
func (engine *XMLEngine) safeDecode(reader io.Reader, contentReceiver any) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = recoveredErr("decode", recovered)
		}
	}()

	err = engine.decoder.Decode(engine.getEngine(), reader, contentReceiver)
	return err
}

// Uses the decoder's charset extension while catching panics to return as
// errors.
func (engine *XMLEngine) safeDecodeCharset(
	decoder CharsetDecoder,
	reader io.Reader,
	contentReceiver any,
	charsetLabel string,
) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = recoveredErr("decode", recovered)
		}
	}()

	err = decoder.DecodeCharset(
		engine.getEngine(), reader, contentReceiver, charsetLabel,
	)
	return err
}

func (engine *XMLEngine) Encode(content any, writer io.Writer) error {
	err := engine.safeEncode(writer, content)
	if err != nil {
		return xerrors.Errorf("encode err: %w", err)
	}
	return nil
}

func (engine *XMLEngine) EncodeBytes(content any) ([]byte, error) {
	buffer := new(bytes.Buffer)
	if err := engine.Encode(content, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (engine *XMLEngine) Decode(contentReceiver any, reader io.Reader) error {
	// Close the reader if it's a closer.
	if readCloser, ok := reader.(io.ReadCloser); ok {
		defer func() {
			_ = readCloser.Close()
		}()
	}

	err := engine.safeDecode(reader, contentReceiver)
	if err != nil {
		return xerrors.Errorf("decode err: %w", err)
	}

	return nil
}

func (engine *XMLEngine) DecodeBytes(contentReceiver any, content []byte) error {
	return engine.Decode(contentReceiver, bytes.NewReader(content))
}

func (engine *XMLEngine) DecodeBytesCharset(
	contentReceiver any, content []byte, charsetLabel string,
) error {
	if !needsCharsetConversion(charsetLabel) {
		return engine.DecodeBytes(contentReceiver, content)
	}

	charsetDecoder, ok := engine.decoder.(CharsetDecoder)
	if !ok {
		return xerrors.New(
			"decode err: decoder does not handle charset " + charsetLabel,
		)
	}

	err := engine.safeDecodeCharset(
		charsetDecoder, bytes.NewReader(content), contentReceiver, charsetLabel,
	)
	if err != nil {
		return xerrors.Errorf("decode err: %w", err)
	}

	return nil
}

// Labels that name utf-8 or one of its subsets need no conversion pass.
func needsCharsetConversion(charsetLabel string) bool {
	switch strings.ToLower(charsetLabel) {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		return false
	}
	return true
}

// NewXMLEngine creates an XMLEngine with the default codec installed. A nil
// opts selects the zero-value settings; a nil opts.CharsetReader is replaced
// with charset.NewReaderLabel. The passed opts struct is copied, so later
// mutations by the caller do not reach the engine.
func NewXMLEngine(opts *EngineOpts) *XMLEngine {
	engineOpts := EngineOpts{}
	if opts != nil {
		engineOpts = *opts
	}
	if engineOpts.CharsetReader == nil {
		engineOpts.CharsetReader = charset.NewReaderLabel
	}

	coder := &xmlCoder{}

	return &XMLEngine{
		encoder: coder,
		decoder: coder,
		opts:    &engineOpts,
	}
}
