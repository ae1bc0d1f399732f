package httputil

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData parses the JSON request body into data.
//
// An empty body and a type mismatch keep their specific errors since callers
// put them verbatim into the response. Everything else is collapsed into
// ErrInvalidBody and the original error is logged with the request ID.
func BindData(c *gin.Context, data interface{}) error {
	err := c.ShouldBindJSON(&data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return err
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

// UUIDFromString parses a query or path parameter into a UUID. An empty
// string maps to uuid.Nil so that optional filter parameters can be bound
// without a pointer type.
//
// gin cannot form-bind uuid.UUID directly, see
// https://github.com/gin-gonic/gin/pull/3045.
func UUIDFromString(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}

	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return parsed, nil
}
