package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrTrackLoadFailed = errors.New("track failed to load")
	ErrNoAudio         = errors.New("track has no audio resource")
	ErrHandleReleased  = errors.New("audio handle released")
	ErrClipTooShort    = errors.New("clip too short")
	ErrSearchFailed    = errors.New("search failed")
	ErrRateLimited     = errors.New("rate limited")
	ErrNetworkError    = errors.New("network error")
	ErrTimeout         = errors.New("request timeout")
	ErrConfigNotFound  = errors.New("config file not found")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// SnipError wraps an error with a user-friendly suggestion.
type SnipError struct {
	Err        error
	Suggestion string
}

func (e *SnipError) Error() string {
	return e.Err.Error()
}

func (e *SnipError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &SnipError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's already a SnipError with suggestion
	var snipErr *SnipError
	if errors.As(err, &snipErr) && snipErr.Suggestion != "" {
		return snipErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// Load failures
	if errors.Is(err, ErrTrackLoadFailed) || strings.Contains(errStr, "decode") {
		return "The track could not be loaded. Try another track or check your connection"
	}

	if errors.Is(err, ErrNoAudio) {
		return "This track has no playable audio. Pick a different one"
	}

	// Selection errors
	if errors.Is(err, ErrClipTooShort) || strings.Contains(errStr, "minimum duration") {
		return "Drag the handles further apart: clips must be at least half a second long"
	}

	// Rate limiting
	if errors.Is(err, ErrRateLimited) || strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") {
		return "Too many requests. Wait a moment and try again"
	}

	// Network errors
	if errors.Is(err, ErrNetworkError) || errors.Is(err, ErrTimeout) ||
		strings.Contains(errStr, "network") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection refused") {
		return "Check your internet connection and try again"
	}

	// Config errors
	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) ||
		strings.Contains(errStr, "config") {
		return "Run 'tunesnip config show' to inspect your configuration"
	}

	// Server errors
	if strings.Contains(errStr, "500") || strings.Contains(errStr, "server error") {
		return "The catalog service is having issues. Try again in a moment"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
