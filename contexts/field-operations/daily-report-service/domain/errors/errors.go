package errors

import "errors"

var (
	ErrReportNotFound   = errors.New("daily report not found")
	ErrInvalidEntryType = errors.New("entry type must be photo or note")
	ErrInvalidRequest   = errors.New("invalid daily report request")
)
