package middleware

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
)

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeMissingImage   = "MISSING_IMAGE"
	CodeInvalidImage   = "INVALID_IMAGE"
	CodeMissingQuery   = "MISSING_QUERY"
	CodeNotFound       = "NOT_FOUND"
	CodeUnavailable    = "UNAVAILABLE"
	CodeInternal       = "INTERNAL"
)

var (
	ErrMissingImage = errors.New("no image file provided")
	ErrInvalidImage = errors.New("only image files are allowed")
	ErrMissingQuery = errors.New("query parameter is required")
	ErrServerBusy   = errors.New("too many concurrent requests")
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// HandleError writes err with a code derived from the status.
func HandleError(resp *restful.Response, err error, status int) {
	HandleErrorCode(resp, err, status, codeForStatus(status))
}

func HandleErrorCode(resp *restful.Response, err error, status int, code string) {
	body := ErrorResponse{
		Error: http.StatusText(status),
		Code:  code,
	}
	if err != nil {
		body.Error = err.Error()
	}
	if status >= http.StatusInternalServerError && err != nil {
		body.Error = http.StatusText(status)
		body.Details = err.Error()
	}

	_ = resp.WriteHeaderAndEntity(status, body)
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeInvalidRequest
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusServiceUnavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
