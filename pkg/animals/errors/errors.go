package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

var ErrAccessDenied = fmt.Errorf("access denied")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrInternal = fmt.Errorf("internal error")
var ErrMalformedInput = fmt.Errorf("malformed input")
var ErrRead = fmt.Errorf("read error")
var ErrRequest = fmt.Errorf("request error")
var ErrSerialization = fmt.Errorf("serialization error")
var ErrUnsupportedFormat = fmt.Errorf("unsupported format")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewMalformedInputError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrMalformedInput,
	}
}

func NewReadError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrRead,
	}
}

func NewSerializationError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrSerialization,
	}
}

func NewUnsupportedFormatError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnsupportedFormat,
	}
}

func NewAccessDeniedError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrAccessDenied,
	}
}

func NewInternalError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInternal,
	}
}

// NewErrorFromProblemReport maps a problem report returned by the animals api to one of
// the errors in this package
func NewErrorFromProblemReport(code int, contentType string, body []byte) error {
	if !strings.HasPrefix(contentType, "application/problem+json") {
		return NewInternalError(fmt.Sprintf("[code: %d] unexpected response of type %s", code, contentType))
	}

	report := &struct {
		Type   string `json:"type"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}{}

	err := json.Unmarshal(body, report)
	if err != nil {
		return NewInternalError(fmt.Sprintf("failed to process problem report: %s", err.Error()))
	}

	switch {
	case code == http.StatusUnauthorized || strings.HasSuffix(report.Type, "/UnauthorizedRequest"):
		return NewAccessDeniedError(report.Detail)
	case strings.HasSuffix(report.Type, "/BadRequestData"):
		return NewMalformedInputError(report.Detail)
	case strings.HasSuffix(report.Type, "/InvalidRequest"):
		return NewUnsupportedFormatError(report.Detail)
	}

	return NewInternalError(
		fmt.Sprintf("[code: %d] unknown problem report of type \"%s\" with detail \"%s\" received",
			code, report.Type, report.Detail,
		),
	)
}
