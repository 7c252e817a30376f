package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/daikiakiyoshi/trivia-api/internal/middleware"
	"github.com/daikiakiyoshi/trivia-api/internal/models"
	"github.com/daikiakiyoshi/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Not Found"`
}

// Type alias so swag can resolve the model in annotations.
type FormattedQuestion = models.FormattedQuestion

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusUnprocessableEntity: "Unprocessable entity",
	http.StatusInternalServerError: "Internal server error",
}

func NewErrorResponse(status int) ErrorResponse {
	msg, ok := errorMessages[status]
	if !ok {
		msg = http.StatusText(status)
	}
	return ErrorResponse{Success: false, Error: status, Message: msg}
}

func abortWithStatus(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, NewErrorResponse(status))
}

// respondError maps a service error kind onto its HTTP status. Detail stays
// in the log.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusUnprocessableEntity {
		log.Printf("[%s] %s %s: %v", c.GetString(middleware.RequestIDKey), c.Request.Method, c.Request.URL.Path, err)
	}
	abortWithStatus(c, status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// NotFound and MethodNotAllowed back the router's fallbacks.
func NotFound(c *gin.Context) {
	abortWithStatus(c, http.StatusNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	abortWithStatus(c, http.StatusMethodNotAllowed)
}

func Recovery(c *gin.Context, recovered any) {
	log.Printf("[%s] panic serving %s %s: %v", c.GetString(middleware.RequestIDKey), c.Request.Method, c.Request.URL.Path, recovered)
	abortWithStatus(c, http.StatusInternalServerError)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithStatus(c, http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

// FlexInt accepts either a JSON number or a numeric string; the trivia
// front-end sends select values as strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("expected integer, got %s", b)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("expected integer, got %q", s)
	}
	*f = FlexInt(n)
	return nil
}

func (f *FlexInt) IntPtr() *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
