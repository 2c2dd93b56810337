/*
Rejection model definition and default xml body rejections.

The Spanreed family strives to have a consistent set of errors (and error
communication) conventions shared between all services and clients. This
package carries that model into xml body handling: every way an exchange can
terminally fail is a declared rejection type with a stable name, api code and
http status, and every occurrence is an identifiable instance that renders as
a complete http response.

This module defines two main objects for handling rejections:

• RejectionType defines a kind of terminal extraction / rendering failure.

• Rejection is an instance of a failure which contains a RejectionType.

Default RejectionType Variables

Pointers to the default RejectionType definitions produced by body extraction
are included in this package. The set is closed: extraction yields exactly one
of them or a decoded value, and none of them is ever retried or logged by this
library (logging belongs to the host, which can use Rejection.LogMessage).
*/
package rejections
