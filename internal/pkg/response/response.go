// Package response writes the JSON envelope every web tier endpoint returns.
package response

import "github.com/gin-gonic/gin"

type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, SuccessEnvelope{Success: true, Data: data})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, ErrorEnvelope{Error: ErrorBody{Code: code, Message: message}})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, ErrorEnvelope{Error: ErrorBody{Code: code, Message: message, Details: details}})
}
