package httpclient

import (
	"encoding/json"
	"net/http"
)

// StatusCoder is satisfied by *resty.Response.
type StatusCoder interface {
	StatusCode() int
}

func IsSuccess(resp StatusCoder) bool {
	return IsSuccessStatus(resp.StatusCode())
}

func IsSuccessStatus(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

// responseData decodes a JSON body and falls back to the raw text.
func responseData(body []byte) any {
	if len(body) == 0 {
		return nil
	}

	if json.Valid(body) {
		var data any
		if err := json.Unmarshal(body, &data); err == nil {
			return data
		}
	}

	return string(body)
}
