package models

import (
	"errors"
)

var (
	ErrGeneral                  = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound         = errors.New("there is no")
	ErrReferencedResourceAbsent = errors.New("a resource ID you specified does not identify an existing resource")
	ErrTargetAmountNegative     = errors.New("the target amount must not be negative")
)
