package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldCarrier         = "carrier"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldErrorCode       = "error-code"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldMissingFields   = "missing-fields"
	FieldPlaces          = "places"
	FieldQuote           = "quote"
	FieldRecognizer      = "recognizer"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTextLength      = "text-length"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
