package net

import (
	"net/http"

	perr "github.com/promptandpause/promptandpause-sub003/internal/platform/errors"
)

// Wire is the envelope written by middleware that cannot reach the http package
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func success(status int, data any, reqID string) (int, Wire) {
	return status, Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
}

// OK is a 200 envelope
func OK(data any, reqID string) (int, Wire) { return success(http.StatusOK, data, reqID) }

// Created is a 201 envelope
func Created(data any, reqID string) (int, Wire) { return success(http.StatusCreated, data, reqID) }

// Error maps err to its status and an error envelope; nil err is a 200
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		RequestID:  reqID,
	}
}
