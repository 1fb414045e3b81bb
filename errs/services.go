package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Third-Party API & LLM Specific Errors
var (
	ErrServiceUnavailable     = errors.New("service unavailable")
	ErrRateLimitExceeded      = errors.New("rate limit exceeded")
	ErrModelOverloaded        = errors.New("model overloaded")
	ErrContentPolicyViolation = errors.New("content policy violation")
	ErrInvalidAPIKey          = errors.New("invalid API key")
	ErrEmptyModelResponse     = errors.New("empty model response")
)

// Configuration & Environment Errors
var (
	ErrConfigMissing = errors.New("configuration missing")
	ErrConfigInvalid = errors.New("configuration invalid")
)

func NewServiceUnavailableError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrServiceUnavailable,
		Details:    fmt.Sprintf("%s service is not available", service),
		Cause:      cause,
	}
}

func NewRateLimitError(service string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusTooManyRequests,
		err:        ErrRateLimitExceeded,
		Details:    fmt.Sprintf("Rate limit exceeded for %s service", service),
		Field:      "rate_limit",
	}
}

func NewModelOverloadedError(service string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrModelOverloaded,
		Details:    fmt.Sprintf("Model overloaded for %s service", service),
		Field:      "model_capacity",
	}
}

func NewContentPolicyError(service string, violation string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrContentPolicyViolation,
		Details:    fmt.Sprintf("Content policy violation in %s service: %s", service, violation),
		Field:      "content_policy",
	}
}

func NewEmptyModelResponseError(service string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrEmptyModelResponse,
		Details:    fmt.Sprintf("%s service returned no content", service),
	}
}

// NewLLMError maps a provider error onto the closest LLM error
func NewLLMError(service string, cause error) *ApiErr {
	msg := strings.ToLower(cause.Error())
	var apiErr *ApiErr
	switch {
	case strings.Contains(msg, "429"), strings.Contains(msg, "quota"), strings.Contains(msg, "rate limit"):
		apiErr = NewRateLimitError(service)
	case strings.Contains(msg, "503"), strings.Contains(msg, "overloaded"):
		apiErr = NewModelOverloadedError(service)
	case strings.Contains(msg, "safety"), strings.Contains(msg, "blocked"):
		apiErr = NewContentPolicyError(service, "prompt or response was blocked")
	case strings.Contains(msg, "api key"), strings.Contains(msg, "api_key"):
		apiErr = &ApiErr{
			StatusCode: http.StatusBadGateway,
			err:        ErrInvalidAPIKey,
			Details:    fmt.Sprintf("%s service rejected the configured API key", service),
		}
	default:
		apiErr = &ApiErr{
			StatusCode: http.StatusBadGateway,
			err:        ErrServiceUnavailable,
			Details:    fmt.Sprintf("%s service request failed", service),
		}
	}
	apiErr.Cause = cause
	return apiErr
}

func NewConfigError(configName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("Configuration error for %s", configName),
		Cause:      cause,
	}
}

func NewInvalidConfigError(configName, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigInvalid,
		Details:    fmt.Sprintf("Invalid configuration for %s: %s", configName, reason),
		Field:      configName,
	}
}

func IsServiceUnavailableError(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}

func IsRateLimitError(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}
