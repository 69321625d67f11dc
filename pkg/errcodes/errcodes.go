package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	ValidationError      failure.ErrorCode = "ValidationError"
	InvalidJSON          failure.ErrorCode = "InvalidJSON"
	EmailTextRequired    failure.ErrorCode = "EmailTextRequired"
	IncompleteExtraction failure.ErrorCode = "IncompleteExtraction"
	PlaceRecognition     failure.ErrorCode = "PlaceRecognition"
)
