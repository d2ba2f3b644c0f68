package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// OAuth flow errors, one per failure the callback handler can report
	ErrAuthMissing   = fmt.Errorf("authorization required")
	ErrTokenExchange = fmt.Errorf("token exchange failed")
	ErrProfileFetch  = fmt.Errorf("user profile fetch failed")
	ErrGuildFetch    = fmt.Errorf("user guild fetch failed")
	ErrBotGuildFetch = fmt.Errorf("bot guild fetch failed")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
