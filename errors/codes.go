package errors

// ErrorCode identifies an application error category.
type ErrorCode int32

const (
	ErrorCode_UNKNOWN          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_FORBIDDEN        ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1005

	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2000
	ErrorCode_AUTH_INVALID_SESSION     ErrorCode = 2001
	ErrorCode_AUTH_USER_ALREADY_EXISTS ErrorCode = 2002

	ErrorCode_INVALID_PAYLOAD   ErrorCode = 3000
	ErrorCode_VALIDATION_FAILED ErrorCode = 3001

	ErrorCode_STORE_FAILED             ErrorCode = 4000
	ErrorCode_INTEGRATION_CACHE_FAILED ErrorCode = 4001
	ErrorCode_STORAGE_FAILED           ErrorCode = 4002

	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 5000
	ErrorCode_AI_EXTRACTION_FAILED    ErrorCode = 5001
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 5002
	ErrorCode_MISSING_AUDIO_DATA      ErrorCode = 5003
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                  "UNKNOWN",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:           "ALREADY_EXISTS",
	ErrorCode_FORBIDDEN:                "FORBIDDEN",
	ErrorCode_UNAUTHENTICATED:          "UNAUTHENTICATED",
	ErrorCode_AUTH_INVALID_CREDENTIALS: "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_INVALID_SESSION:     "AUTH_INVALID_SESSION",
	ErrorCode_AUTH_USER_ALREADY_EXISTS: "AUTH_USER_ALREADY_EXISTS",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:        "VALIDATION_FAILED",
	ErrorCode_STORE_FAILED:             "STORE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED: "INTEGRATION_CACHE_FAILED",
	ErrorCode_STORAGE_FAILED:           "STORAGE_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:        "AI_SUMMARY_FAILED",
	ErrorCode_AI_EXTRACTION_FAILED:     "AI_EXTRACTION_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:  "AI_TRANSCRIPTION_FAILED",
	ErrorCode_MISSING_AUDIO_DATA:       "MISSING_AUDIO_DATA",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
