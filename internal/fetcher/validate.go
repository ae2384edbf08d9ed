package fetcher

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	// ErrContentType is returned when a response declares a content type
	// outside the allow-set.
	ErrContentType = errors.New("fetcher: content type not allowed")

	// ErrTooLarge is returned when a download exceeds the size limit,
	// whether declared up front or observed mid-stream.
	ErrTooLarge = errors.New("fetcher: file exceeds size limit")
)

// Validator checks response metadata against content policy before any
// bytes are committed to disk.
type Validator struct {
	allowed map[string]struct{}
	maxSize int64
}

// NewValidator builds a validator from the allow-set and the maximum
// accepted file size in bytes.
func NewValidator(allowedTypes []string, maxSize int64) *Validator {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[normalizeType(t)] = struct{}{}
	}
	return &Validator{allowed: allowed, maxSize: maxSize}
}

// Validate checks the declared content type and length of a response.
// contentLength < 0 means the header was absent; that alone is not a
// rejection, since the size limit is re-applied as bytes stream in.
func (v *Validator) Validate(contentType string, contentLength int64) error {
	if _, ok := v.allowed[normalizeType(contentType)]; !ok {
		return fmt.Errorf("%w: %q", ErrContentType, contentType)
	}
	if contentLength > v.maxSize {
		return fmt.Errorf("%w: declared %d bytes, limit %d", ErrTooLarge, contentLength, v.maxSize)
	}
	return nil
}

// ExceedsLimit reports whether n downloaded bytes are over the limit.
func (v *Validator) ExceedsLimit(n int64) bool {
	return n > v.maxSize
}

// MaxSize returns the configured size limit in bytes.
func (v *Validator) MaxSize() int64 {
	return v.maxSize
}

// normalizeType lowercases a media type and drops parameters after ";".
func normalizeType(t string) string {
	if i := strings.Index(t, ";"); i >= 0 {
		t = t[:i]
	}
	return strings.ToLower(strings.TrimSpace(t))
}
