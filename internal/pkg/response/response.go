package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/homehub-app/homehub/pkg/errors"
)

// ErrorResponse is the standard error payload returned by the API
type ErrorResponse struct {
	Error string `json:"error" example:"Invite not found"`
	Code  string `json:"code,omitempty" example:"INVITE_NOT_FOUND"`
}

// SuccessResponse is the standard success payload
type SuccessResponse struct {
	Status string      `json:"status" example:"success"`
	Data   interface{} `json:"data"`
}

// PaginatedResponse is a paginated list payload
type PaginatedResponse struct {
	Status string      `json:"status" example:"success"`
	Data   interface{} `json:"data"`
	Total  int64       `json:"total" example:"25"`
	Limit  int         `json:"limit" example:"10"`
}

// Success sends a 200 OK response with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Status: "success", Data: data})
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Status: "success", Data: data})
}

// Paginated sends a paginated list response
func Paginated(c *gin.Context, data interface{}, total int64, limit int) {
	c.JSON(http.StatusOK, PaginatedResponse{
		Status: "success",
		Data:   data,
		Total:  total,
		Limit:  limit,
	})
}

// Error sends an error response with the given status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	code := ""
	if len(errorCode) > 0 {
		code = errorCode[0]
	}
	c.JSON(statusCode, ErrorResponse{Error: message, Code: code})
}

func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

func Unauthorized(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnauthorized, message, errorCode...)
}

func Forbidden(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusForbidden, message, errorCode...)
}

func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

func Conflict(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusConflict, message, errorCode...)
}

// Gone sends a 410 Gone error, used for expired invites
func Gone(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusGone, message, errorCode...)
}

func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// BindJSONError handles JSON decode errors in request bodies
func BindJSONError(c *gin.Context, err error) {
	BadRequest(c, "Invalid request format", "INVALID_JSON")
}

// ValidationFailed handles request validation errors
func ValidationFailed(c *gin.Context, message string) {
	BadRequest(c, message, "VALIDATION_FAILED")
}

// DatabaseError handles storage operation errors
func DatabaseError(c *gin.Context, message string) {
	InternalServerError(c, message, "DATABASE_ERROR")
}

// FromError maps a sentinel error from pkg/errors to its HTTP status
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrExpired):
		Gone(c, err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		ValidationFailed(c, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		Unauthorized(c, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		Forbidden(c, err.Error())
	case errors.Is(err, apperrors.ErrDuplicate):
		Conflict(c, err.Error())
	default:
		InternalServerError(c, "Something went wrong")
	}
}
