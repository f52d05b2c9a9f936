package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		// Type errors, unrepresentable amounts and invalid dates are
		// returned as is, they tell the user which value is wrong
		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		var timeParseError *time.ParseError
		if errors.As(err, &jsonUnmarshalTypeError) || errors.As(err, &timeParseError) ||
			errors.Is(err, types.ErrAmountPrecision) || errors.Is(err, types.ErrAmountRange) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// UUIDFromString binds a string to a UUID
//
// This is needed because gin does not support form binding to uuid.UUID.
func UUIDFromString(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return u, nil
}

// UUIDPtrFromString binds a string to a UUID pointer. An empty
// string is bound to nil.
func UUIDPtrFromString(s string) (*uuid.UUID, error) {
	u, err := UUIDFromString(s)
	if err != nil || u == uuid.Nil {
		return nil, err
	}

	return &u, nil
}
