package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/domain/dto"
	"github.com/guttosm/print-quote-service/internal/i18n"
	"github.com/guttosm/print-quote-service/internal/middleware"
)

// ResponseBuilder writes the success and error envelopes of the API. Error
// messages are translated for the request's Accept-Language.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	b.c.JSON(statusCode, dto.NewSuccess(data, middleware.GetRequestID(b.c)))
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with a translated error body.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, nil, err)
}

// ErrorWithDetails aborts with a translated error body carrying details,
// such as the product a pricing failure refers to. err is attached to the
// context for the error logging middleware; client errors are marked
// public so they log as warnings.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	if err != nil {
		ginErr := b.c.Error(err)
		if statusCode < http.StatusInternalServerError {
			ginErr.SetType(gin.ErrorTypePublic)
		}
	}

	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.c.AbortWithStatusJSON(statusCode,
		dto.NewErrorResponse(statusCode, message, middleware.GetRequestID(b.c)).WithDetails(details))
}
