package weezevent

import (
	"encoding/json"
	"fmt"
)

// APIError is a structured error returned by the Weezevent API. The platform
// wraps it either in a top-level "error" object or as top-level fields.
type APIError struct {
	Message    string
	Type       string
	Code       int
	HTTPStatus int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weezevent api error: %s (type=%s, code=%d, http_status=%d)",
		e.Message, e.Type, e.Code, e.HTTPStatus)
}

// ServerError carries a non-200 response whose body could not be parsed as a
// Weezevent error envelope.
type ServerError struct {
	RawBody    []byte
	HTTPStatus int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("weezevent server error: http_status=%d body=%q", e.HTTPStatus, e.RawBody)
}

// PartialUpdateError reports a participant-count mismatch between what was
// submitted and what the platform acknowledged. Reserved: the batch-submit
// flow does not raise it today.
type PartialUpdateError struct {
	Expected  int
	Extracted int
	Updated   int
}

func (e *PartialUpdateError) Error() string {
	return fmt.Sprintf("not all participants have been updated: %d/%d(%d)",
		e.Updated, e.Expected, e.Extracted)
}

type wireError struct {
	Message *string `json:"message"`
	Type    string  `json:"type"`
	Code    *int    `json:"code"`
}

type wireErrorEnvelope struct {
	wireError
	Err *wireError `json:"error"`
}

// parseErrorBody turns a non-200 response body into an *APIError when it is a
// well-formed error envelope (the nested "error" object wins over top-level
// fields), or a *ServerError otherwise.
func parseErrorBody(body []byte, httpStatus int) error {
	var env wireErrorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &ServerError{RawBody: body, HTTPStatus: httpStatus}
	}

	we := env.wireError
	if env.Err != nil {
		we = *env.Err
	}
	if we.Message == nil || we.Code == nil {
		return &ServerError{RawBody: body, HTTPStatus: httpStatus}
	}

	return &APIError{
		Message:    *we.Message,
		Type:       we.Type,
		Code:       *we.Code,
		HTTPStatus: httpStatus,
	}
}
