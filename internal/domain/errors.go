package domain

import "errors"

var (
	ErrUploadNotFound    = errors.New("upload not found")
	ErrUploadNotReady    = errors.New("upload still processing")
	ErrUploadFailed      = errors.New("upload failed")
	ErrInvalidCSVFormat  = errors.New("invalid CSV format")
	ErrInvalidSchema     = errors.New("invalid schema")
	ErrDuplicateEvent    = errors.New("duplicate event")
	ErrInvalidPageParams = errors.New("invalid page parameters")
)
