package errors

import "errors"

var (
	ErrMaterialNotFound       = errors.New("material not found")
	ErrMasterMaterialNotFound = errors.New("master material not found")
	ErrInvalidUnit            = errors.New("unit is not in the allowed list")
	ErrInvalidRequest         = errors.New("invalid material request")
)
