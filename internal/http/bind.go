package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxBodyBytes bounds request bodies; a full rate document is well under it.
const maxBodyBytes = 1 << 20

// Validator is implemented by requests that check themselves once decoded.
type Validator interface {
	Validate() error
}

// decodeRequest reads the JSON body of c into a new T.
func decodeRequest[T any](c *gin.Context) (*T, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// bindRequest decodes like decodeRequest and then runs the request's own
// validation when it has one.
func bindRequest[T any](c *gin.Context) (*T, error) {
	req, err := decodeRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}
