package errors

import "errors"

var (
	ErrReceiptRequired = errors.New("debit requires a receipt reference")
	ErrInvalidRequest  = errors.New("invalid wallet request")
)
