// File: /utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventloop-api/models"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PaginatedResponse is the list envelope: data plus 1-indexed page metadata.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	CurrentPage int         `json:"current_page"`
	LastPage    int         `json:"last_page"`
	PerPage     int         `json:"per_page"`
	Total       int64       `json:"total"`
	From        int         `json:"from"`
	To          int         `json:"to"`
}

// NewPaginatedResponse computes the page metadata for count items on the
// given page. From and To are 1-indexed row positions; both are 0 for an
// empty page (including pages past the end), which is not an error.
func NewPaginatedResponse(data interface{}, page, perPage, count int, total int64) PaginatedResponse {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	from, to := 0, 0
	if count > 0 {
		from = (page-1)*perPage + 1
		to = from + count - 1
	}
	return PaginatedResponse{
		Data:        data,
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
		From:        from,
		To:          to,
	}
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

// SendFieldError reports a validation failure naming the offending field.
func SendFieldError(c *gin.Context, err *models.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "Validation failed",
		"field":   err.Field,
		"message": err.Message,
		"code":    http.StatusUnprocessableEntity,
	})
}

func SendSuccess(c *gin.Context, message string, data interface{}) {
	response := SuccessResponse{
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(http.StatusOK, response)
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Message: message,
		Data:    data,
	})
}

func SendPaginated(c *gin.Context, data interface{}, page, perPage, count int, total int64) {
	c.JSON(http.StatusOK, NewPaginatedResponse(data, page, perPage, count, total))
}
