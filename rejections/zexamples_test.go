package rejections

import (
	"fmt"
	"github.com/illuscio-dev/spanxml-go/encoding"
	"strings"
)

// EXAMPLES ##########

// Lets convert an error thrown from XMLEngine.Decode into an InvalidXMLBody
// rejection as if we are an endpoint handler decoding a request.
func ExampleRejectionType_New() {
	// Set up the engine doing our decoding
	engine := encoding.NewXMLEngine(nil)

	type EvilPlan struct {
		Details string `xml:",chardata"`
	}

	// This document is never closed, so it cannot be parsed.
	data := "<Plan>YOU'LL NEVER DECODE ME, BATMAN! HAHAHAHAHAHA"
	receiver := new(EvilPlan)
	reader := strings.NewReader(data)

	err := engine.Decode(receiver, reader)
	if err != nil {
		// Make a new InvalidXMLBody rejection
		rejection := InvalidXMLBody.New(
			"Failed to parse the request body as XML: "+err.Error(),
			nil,
			err,
		)

		// Print the rejection
		fmt.Println(rejection.Error())

		// Do something with the rejection
		// ...
	}

	fmt.Println()
	// Output:
	// InvalidXMLBody (2002) - Failed to parse the request body as XML: decode err: XML syntax error on line 1: unexpected EOF
}
