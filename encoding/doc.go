// Encode and decode xml message body content.
/*
This package's goal is to make a single interface specification for moving xml
content in and out of application types, so that body handling does not have to
be re-implemented by every service and client in an ecosystem.

Specific objectives

1. Handlers declare plain application types and get xml data binding (element
text, attributes, renamed fields) for free through the underlying data-binding
library.

2. Engine-level settings (charset conversion, lenient parsing, custom entities,
output formatting) are declared once per service rather than at every call
site.

3. Encoding and decoding support is independent of service pattern. The same
engine drives request extraction, response rendering, and client payload
handling.

4. Developers can swap the default codec for their own by implementing the
Encoder / Decoder interfaces, without touching call sites.
*/
package encoding
