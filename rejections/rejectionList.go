package rejections

// Full response body sent with a MissingXMLContentType rejection. Clients match on
// this exact text, so it is part of the wire contract and must not drift.
const MissingXMLContentTypeMessage = "Expected request with Content-Type: application/xml"

// Request carried no Content-Type header, or carried one that is not xml-shaped. The
// request body is never read before this rejection is produced.
var MissingXMLContentType = NewRejectionType(
	"MissingXMLContentType",
	2001,
	415,
)

// Body was read in full but could not be decoded into the receiving value.
var InvalidXMLBody = NewRejectionType(
	"InvalidXMLBody",
	2002,
	422,
)

// Body could not be pulled off the wire. The http code depends on why the read
// failed, so it is resolved per-instance. See Rejection.ResponseCode.
var BodyReadFailure = NewRejectionType(
	"BodyReadFailure",
	2003,
	HTTPCodeDynamic,
)

// List of default Rejection definitions.
var RejectionList = [3]*RejectionType{
	MissingXMLContentType,
	InvalidXMLBody,
	BodyReadFailure,
}

// Used to make RejectionTypeCodeIndex.
func makeDefaultRejectionCodeIndex() map[int]*RejectionType {
	index := make(map[int]*RejectionType)
	for _, rejectionType := range RejectionList {
		index[rejectionType.apiCode] = rejectionType
	}
	return index
}

// ApiCode:*RejectionType indexing of default rejections.
var RejectionTypeCodeIndex = makeDefaultRejectionCodeIndex()
