package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTransient       = errors.New("transient failure")
	ErrTimeout         = errors.New("timeout")
	ErrUpstreamStatus  = errors.New("upstream status")
	ErrInvalidResponse = errors.New("invalid response")
	ErrValidation      = errors.New("validation error")
	ErrConfiguration   = errors.New("configuration error")
)

// Failure reasons reported per row and in run summaries.
const (
	ReasonTimeout         = "timeout"
	ReasonNetwork         = "network"
	ReasonHTTPStatus      = "http_status"
	ReasonInvalidResponse = "invalid_response"
	ReasonCanceled        = "canceled"
	ReasonOther           = "other"
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FailureReason maps a lookup error to the short reason recorded for the row.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return ReasonTimeout
	case errors.Is(err, ErrUpstreamStatus):
		return ReasonHTTPStatus
	case errors.Is(err, ErrInvalidResponse):
		return ReasonInvalidResponse
	case errors.Is(err, ErrTransient):
		return ReasonNetwork
	default:
		return ReasonOther
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
