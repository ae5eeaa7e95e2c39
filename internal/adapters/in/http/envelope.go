package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// response is the JSON envelope every endpoint returns.
type response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *pagination `json:"pagination,omitempty"`
}

// pagination describes the page window of a list response.
type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Count int `json:"count"`
}

func ok(ctx echo.Context, message string, data interface{}) error {
	return ctx.JSON(http.StatusOK, response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func okPaged(ctx echo.Context, message string, data interface{}, page pagination) error {
	return ctx.JSON(http.StatusOK, response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &page,
	})
}

func created(ctx echo.Context, message string, data interface{}) error {
	return ctx.JSON(http.StatusCreated, response{
		Success: true,
		Message: message,
		Data:    data,
	})
}
