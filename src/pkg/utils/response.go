package utils

import (
	"net/http"

	httpError "ticketing-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

type httpResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type httpErrorResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func Response(data any, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(httpResponse{
		Success: true,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.Code).JSON(httpErrorResponse{
			Success: false,
			Code:    commonErr.Code,
			Kind:    commonErr.Kind,
			Message: commonErr.Message,
		})
	}

	return ctx.Status(http.StatusInternalServerError).JSON(httpErrorResponse{
		Success: false,
		Code:    http.StatusInternalServerError,
		Kind:    "INTERNAL_SERVER_ERROR",
		Message: err.Error(),
	})
}
