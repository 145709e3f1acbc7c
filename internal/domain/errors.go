package domain

import "errors"

var (
	ErrInvalidDocument       = errors.New("document could not be read")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrProviderNotConfigured = errors.New("llm client is not configured")
)
