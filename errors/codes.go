package errors

// ErrorCode identifies an application error independently of its HTTP status
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_PAYLOAD_TOO_LARGE ErrorCode = 1003
	ErrorCode_REQUEST_REJECTED  ErrorCode = 1004

	// Meeting notes
	ErrorCode_MISSING_NOTES       ErrorCode = 2000
	ErrorCode_NOTES_DECODE_FAILED ErrorCode = 2001

	// AI extraction
	ErrorCode_AI_EXTRACTION_FAILED ErrorCode = 3000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:          "UNSPECIFIED",
	ErrorCode_HTTP_OK:              "HTTP_OK",
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_PAYLOAD:      "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:            "NOT_FOUND",
	ErrorCode_PAYLOAD_TOO_LARGE:    "PAYLOAD_TOO_LARGE",
	ErrorCode_REQUEST_REJECTED:     "REQUEST_REJECTED",
	ErrorCode_MISSING_NOTES:        "MISSING_NOTES",
	ErrorCode_NOTES_DECODE_FAILED:  "NOTES_DECODE_FAILED",
	ErrorCode_AI_EXTRACTION_FAILED: "AI_EXTRACTION_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
