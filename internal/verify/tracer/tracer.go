// Package tracer provides a lightweight tracing abstraction for the verify module.
//
// It defines an internal tracer interface that doesn't depend directly on
// OpenTelemetry APIs, so the verification service can emit spans while
// remaining decoupled from the tracing implementation.
//
// Implementations:
//   - NoopTracer: for tests (zero overhead)
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording any error that occurred.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes. The
	// returned context contains the new span; the span must be ended by
	// calling Span.End().
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// HashIdentifier returns a SHA-256 hash of a fiscal identifier for safe
// correlation in traces and logs without exposing PII.
func HashIdentifier(identifier string) string {
	if identifier == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(identifier))
	return hex.EncodeToString(hash[:8]) // First 8 bytes for brevity
}

// Span names used by the verify module.
const (
	SpanFiscalCodeValidate = "verify.fiscal_code.validate"
	SpanFiscalCodeDecode   = "verify.fiscal_code.decode"
	SpanNameFragment       = "verify.fiscal_code.name_fragment"
	SpanNameMatch          = "verify.fiscal_code.match"
	SpanVatValidate        = "verify.vat_number.validate"
	SpanVatFormat          = "verify.vat_number.format"
)

// Attribute keys used by the verify module.
const (
	AttrIdentifierHash = "identifier_hash"
	AttrValid          = "valid"
	AttrChecksumValid  = "checksum_valid"
	AttrWarnings       = "warnings"
	AttrMatches        = "matches"
)
