package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

// APIError is returned by handlers to short-circuit with a status and message.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string { return e.Message }

type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// ResolveEndpoint adapts a HandlerFunc to gin. A handler that has already
// written its own response (304, 204) is left alone.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		if ctx.Writer.Written() {
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

func BadRequest(msg string) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: msg}
}

// ErrorFrom maps engine and store errors onto HTTP statuses.
func ErrorFrom(err error) *APIError {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return &APIError{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, model.ErrEmptyOrder), errors.Is(err, model.ErrInvalidRotation):
		return &APIError{Code: http.StatusBadRequest, Message: err.Error()}
	default:
		return &APIError{Code: http.StatusInternalServerError, Message: "internal error"}
	}
}

// Controller wraps a gin group so modules register HandlerFuncs directly.
type Controller struct {
	Group *gin.RouterGroup
}

func (c *Controller) GET(path string, h HandlerFunc) {
	c.Group.GET(path, ResolveEndpoint(h))
}

func (c *Controller) POST(path string, h HandlerFunc) {
	c.Group.POST(path, ResolveEndpoint(h))
}

func (c *Controller) PUT(path string, h HandlerFunc) {
	c.Group.PUT(path, ResolveEndpoint(h))
}

func (c *Controller) DELETE(path string, h HandlerFunc) {
	c.Group.DELETE(path, ResolveEndpoint(h))
}
