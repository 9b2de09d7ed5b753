package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parthk02/zomato-recommender/internal/dto"
	"github.com/parthk02/zomato-recommender/internal/entity"
)

// Errors sends field-level errors using the shared error envelope.
func Errors(c echo.Context, status int, errs []entity.FieldError) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, dto.ErrorResponse{Errors: errs})
}

// ErrorField sends a single field error using the shared error envelope.
func ErrorField(c echo.Context, status int, field, message string) error {
	return Errors(c, status, []entity.FieldError{{Field: field, Message: message}})
}
