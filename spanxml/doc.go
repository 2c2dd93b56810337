// Typed xml request extraction and response rendering.
/*
Spanxml's goal is to make moving xml http bodies in and out of Go values a
single call on each side of a handler, with every way the exchange can fail
mapped to a complete, documented http response instead of a half-written one.

Specific objectives

1. Handlers declare the shape they expect as a plain Go type and receive either
a decoded value or a rejection that already knows its status code and body.

2. Content negotiation is shape-based, not string-based. Any type/subtype the
media-type grammar reads as xml is accepted, including structured-syntax
suffixes like application/cloudevents+xml, without a lookup table of blessed
strings.

3. Rejections are terminal and never logged here. The host decides what is
worth logging and can pull a full trace from any rejection through its
LogMessage method.

4. The encoding engine is passed in rather than baked in, so services that
extend or replace the codec keep the same extraction and rendering calls.

Extracting

Extraction is a single call against the incoming request:

	func PostSpell(writer http.ResponseWriter, request *http.Request) {
		spell, err := spanxml.FromRequest[Spell](request, engine)
		if err != nil {
			spanxml.WriteRejection(writer, err)
			return
		}

		castSpell(spell.Value)
	}

Rendering

Rendering wraps any value the engine can encode:

	func GetSpell(writer http.ResponseWriter, request *http.Request) {
		response := spanxml.New(lookupSpell(request))
		if err := response.WriteResponse(writer, engine); err != nil {
			logger.Print(err)
		}
	}

Body Limits

Body size limits belong to the host. Wrapping the body before extraction is
enough; the resulting read failure resolves to a 413 on its own:

	request.Body = http.MaxBytesReader(writer, request.Body, 1<<20)
	spell, err := spanxml.FromRequest[Spell](request, engine)
*/
package spanxml
