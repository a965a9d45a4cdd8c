package httpclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

var (
	ErrUnsuccessfulStatus = errors.New("request failed")
	ErrUnsupportedVerb    = errors.New("unsupported verb")
	ErrDecodeResponse     = errors.New("httpclient: failed to decode response")
)

// RequestError is the only error Request returns. HTTPStatusCode is zero when no
// response was received and ResponseData is nil when the response had no body.
type RequestError struct {
	Message        string
	HTTPStatusCode int
	ResponseData   any

	cause error
}

func NewRequestError(message string, httpStatusCode int, responseData any) *RequestError {
	return &RequestError{
		Message:        message,
		HTTPStatusCode: httpStatusCode,
		ResponseData:   responseData,
		cause:          nil,
	}
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.cause
}

func (e *RequestError) HasResponse() bool {
	return e.HTTPStatusCode != 0
}

// IsAuthenticationError reports 401 and 403 only.
func (e *RequestError) IsAuthenticationError() bool {
	return e.HTTPStatusCode == http.StatusUnauthorized || e.HTTPStatusCode == http.StatusForbidden
}

func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}

	return nil, false
}

func IsAuthenticationError(err error) bool {
	reqErr, ok := AsRequestError(err)

	return ok && reqErr.IsAuthenticationError()
}

// newRequestError is the single place that knows how resty reports a failure:
// the error carries the message and the response, when one arrived, carries
// status and body.
func newRequestError(resp *resty.Response, err error) *RequestError {
	reqErr := &RequestError{
		Message:        err.Error(),
		HTTPStatusCode: 0,
		ResponseData:   nil,
		cause:          err,
	}

	if resp == nil || resp.RawResponse == nil {
		return reqErr
	}

	reqErr.HTTPStatusCode = resp.StatusCode()
	reqErr.ResponseData = responseData(resp.Body())

	return reqErr
}

func rejectUnsuccessful(_ *resty.Client, resp *resty.Response) error {
	if IsSuccess(resp) {
		return nil
	}

	return fmt.Errorf("%w with status code %d", ErrUnsuccessfulStatus, resp.StatusCode())
}
