package utils

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the id assigned to each request
const RequestIDKey = "request_id"

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response carrying the request id for correlation
func JSONError(c *gin.Context, status int, err error, message string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	}
	if id := c.GetString(RequestIDKey); id != "" {
		body["request_id"] = id
	}
	c.JSON(status, body)
}

// AttachmentResponse sends a pre-rendered document as a named download
func AttachmentResponse(c *gin.Context, status int, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(status, contentType, body)
}
