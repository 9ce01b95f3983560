package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the request identifier
// assigned by the server middleware.
const RequestIDKey = "request_id"

// Response is the standard envelope returned by every API endpoint.
// Code is 0 on success; on failure it mirrors the HTTP status code.
type Response struct {
	Code      int         `json:"code" example:"0"`
	Message   string      `json:"message" example:"success"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp" example:"1719482096000"`
	RequestID string      `json:"requestId,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:      0,
		Message:   "success",
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
		RequestID: c.GetString(RequestIDKey),
	})
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code:      status,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
		RequestID: c.GetString(RequestIDKey),
	})
}
