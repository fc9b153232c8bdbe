// Package errors defines the application error taxonomy. Every error a
// caller can observe maps to an HTTP status, a business error code and a
// user-facing message in Portuguese, matching the product's language.
package errors

import (
	"net/http"

	"financas/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors (400)
	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"E-mail e senha são obrigatórios.",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Senha deve ter pelo menos 6 caracteres.",
		"",
	)

	ErrEntryFieldsMissing = NewBaseError(
		http.StatusBadRequest,
		"ENTRY_FIELDS_MISSING",
		"Campos obrigatórios faltando.",
		"",
	)

	ErrEntryIDRequired = NewBaseError(
		http.StatusBadRequest,
		"ENTRY_ID_REQUIRED",
		"ID do lançamento obrigatório.",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Nível de acesso inválido.",
		"",
	)

	// Authentication errors (401). The credentials message is deliberately
	// identical for unknown email and wrong password so callers cannot
	// enumerate accounts.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-mail ou senha incorretos.",
		"",
	)

	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"Acesso negado - Token não fornecido",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"Token inválido ou mal formatado",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token inválido ou expirado",
		"",
	)

	// Authorization errors (403)
	ErrAdminOnly = NewBaseError(
		http.StatusForbidden,
		"ADMIN_ONLY",
		"Acesso restrito a administradores.",
		"",
	)

	// Conflict errors (409)
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"E-mail já cadastrado.",
		"",
	)

	// Not found (404)
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuário não encontrado.",
		"",
	)

	// Storage errors (500). Internals are logged; callers only ever see
	// these generic messages.
	ErrRegisterFailed = NewBaseError(
		http.StatusInternalServerError,
		"REGISTER_FAILED",
		"Erro ao cadastrar.",
		"",
	)

	ErrEntryListFailed = NewBaseError(
		http.StatusInternalServerError,
		"ENTRY_LIST_FAILED",
		"Erro ao carregar lançamentos.",
		"",
	)

	ErrEntrySaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"ENTRY_SAVE_FAILED",
		"Erro ao salvar lançamento.",
		"",
	)

	ErrEntryDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"ENTRY_DELETE_FAILED",
		"Erro ao excluir lançamento.",
		"",
	)

	ErrRoleUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ROLE_UPDATE_FAILED",
		"Erro ao atualizar nível de acesso.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno no servidor. Tente novamente mais tarde.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Erro ao consultar o banco de dados."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
