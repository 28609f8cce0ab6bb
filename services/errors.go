package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these onto
// HTTP statuses; anything else surfaces as a generic internal error.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrUserNotFound       = errors.New("user not found")
	ErrChatNotFound       = errors.New("chat not found")
	ErrResetTokenInvalid  = errors.New("invalid or expired token")
	ErrInvalidMacroSplit  = errors.New("macro percentages must each be within 0-100 and sum to 100")
	ErrInvalidCSV         = errors.New("invalid CSV")
	ErrGateway            = errors.New("llm request failed")
)
