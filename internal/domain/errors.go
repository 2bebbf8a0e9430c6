package domain

import "errors"

var (
	ErrNoFile              = errors.New("no file uploaded")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrSpreadsheetFailed   = errors.New("spreadsheet processing failed")
	ErrExtractionFailed    = errors.New("content extraction failed")
)
