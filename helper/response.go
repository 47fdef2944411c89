package helper

import (
	"github.com/gin-gonic/gin"
)

const (
	ErrInvalidRequest   = "ERR_INVALID_REQUEST"
	ErrInvalidOperation = "ERR_INVALID_OPERATION"
	ErrTooManyRequests  = "ERR_TOO_MANY_REQUESTS"
	ErrInternal         = "ERR_INTERNAL"
)

type APIResponse struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	ErrorCode  string `json:"error_code,omitempty"`
}

func SendSuccess(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, APIResponse{
		StatusCode: statusCode,
		Status:     "success",
		Message:    message,
		Data:       data,
	})
}

func SendError(c *gin.Context, statusCode int, err error, errorCode string) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(statusCode, APIResponse{
		StatusCode: statusCode,
		Status:     "error",
		Error:      msg,
		ErrorCode:  errorCode,
	})
}
