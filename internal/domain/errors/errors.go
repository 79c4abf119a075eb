package errors

import "errors"

var (
	ErrSourceUnavailable = errors.New("inventory source unavailable")
	ErrDecodeFailed      = errors.New("inventory response decode failed")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrPriceMissing      = errors.New("vehicle price missing")
)
