// Package response holds the JSON shapes the API exposes. The frontend
// consumes plain bodies: a bare message object, a bare token object or a
// bare data payload, never an envelope.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the `{"message": "..."}` shape used by mutations and errors.
type MessageBody struct {
	Message string `json:"message"`
}

// TokenBody is the login response shape.
type TokenBody struct {
	Token string `json:"token"`
}

// Message writes a `{"message": ...}` body with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// Token writes the login token body.
func Token(c echo.Context, statusCode int, token string) error {
	return c.JSON(statusCode, TokenBody{Token: token})
}

// Data writes an arbitrary payload as-is with the given status.
func Data(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}
