// Package service orchestrates the pure identifier codecs for the HTTP
// layer, adding logging, metrics and tracing around them. Identifiers are
// always hashed before reaching logs or spans.
package service

import (
	"context"
	"log/slog"
	"time"

	verifymetrics "fiscale/internal/verify/metrics"
	"fiscale/internal/verify/tracer"
	"fiscale/pkg/fiscalcode"
	"fiscale/pkg/vatnumber"
)

// Metric kinds.
const (
	kindFiscalCode = "fiscal_code"
	kindVatNumber  = "vat_number"
)

// Service wraps the fiscal-code and VAT codecs. It holds no mutable state
// and is safe for concurrent use.
type Service struct {
	logger  *slog.Logger
	metrics *verifymetrics.Metrics
	tracer  tracer.Tracer
	now     func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *verifymetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithClock overrides the reference time used by the birth-year century
// heuristic. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(opts ...Option) *Service {
	s := &Service{
		tracer: tracer.NewNoop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// ValidateFiscalCode validates a raw fiscal code.
func (s *Service) ValidateFiscalCode(ctx context.Context, raw string) fiscalcode.Result {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanFiscalCodeValidate,
		tracer.String(tracer.AttrIdentifierHash, tracer.HashIdentifier(fiscalcode.Normalize(raw))),
	)

	res := fiscalcode.Validate(raw)

	span.SetAttributes(
		tracer.Bool(tracer.AttrValid, res.IsValid),
		tracer.Bool(tracer.AttrChecksumValid, res.IsChecksumValid),
		tracer.Int64(tracer.AttrWarnings, int64(len(res.Warnings))),
	)
	span.End(nil)

	s.observe(kindFiscalCode, res.IsValid, res.IsChecksumValid, start)
	s.logger.DebugContext(ctx, "fiscal code validated",
		"identifier_hash", tracer.HashIdentifier(fiscalcode.Normalize(raw)),
		"valid", res.IsValid,
		"checksum_valid", res.IsChecksumValid,
	)
	return res
}

// ReverseEngineerFiscalCode extracts birth data from a fiscal code, best
// effort. The century heuristic uses the service clock.
func (s *Service) ReverseEngineerFiscalCode(ctx context.Context, raw string) fiscalcode.Identity {
	_, span := s.tracer.Start(ctx, tracer.SpanFiscalCodeDecode,
		tracer.String(tracer.AttrIdentifierHash, tracer.HashIdentifier(fiscalcode.Normalize(raw))),
	)
	defer span.End(nil)

	return fiscalcode.ReverseEngineerAt(raw, s.now())
}

// NameFragment generates the 6-character fragment for a surname and given name.
func (s *Service) NameFragment(ctx context.Context, surname, givenName string) string {
	_, span := s.tracer.Start(ctx, tracer.SpanNameFragment)
	defer span.End(nil)

	return fiscalcode.NameFragment(surname, givenName)
}

// MatchName checks fiscal-code/name correspondence.
func (s *Service) MatchName(ctx context.Context, code, surname, givenName string) bool {
	_, span := s.tracer.Start(ctx, tracer.SpanNameMatch,
		tracer.String(tracer.AttrIdentifierHash, tracer.HashIdentifier(fiscalcode.Normalize(code))),
	)

	matched := fiscalcode.MatchesName(code, surname, givenName)

	span.SetAttributes(tracer.Bool(tracer.AttrMatches, matched))
	span.End(nil)

	if s.metrics != nil {
		s.metrics.IncrementNameMatch(matched)
	}
	return matched
}

// ValidateVatNumber validates a raw VAT number.
func (s *Service) ValidateVatNumber(ctx context.Context, raw string) vatnumber.Result {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanVatValidate,
		tracer.String(tracer.AttrIdentifierHash, tracer.HashIdentifier(vatnumber.Normalize(raw))),
	)

	res := vatnumber.Validate(raw)

	span.SetAttributes(
		tracer.Bool(tracer.AttrValid, res.IsValid),
		tracer.Bool(tracer.AttrChecksumValid, res.IsChecksumValid),
		tracer.Int64(tracer.AttrWarnings, int64(len(res.Warnings))),
	)
	span.End(nil)

	s.observe(kindVatNumber, res.IsValid, res.IsChecksumValid, start)
	s.logger.DebugContext(ctx, "vat number validated",
		"identifier_hash", tracer.HashIdentifier(vatnumber.Normalize(raw)),
		"valid", res.IsValid,
		"checksum_valid", res.IsChecksumValid,
	)
	return res
}

// FormatVatNumber normalizes a VAT number and prepends the country prefix,
// returning the input unchanged when invalid.
func (s *Service) FormatVatNumber(ctx context.Context, raw string) string {
	_, span := s.tracer.Start(ctx, tracer.SpanVatFormat)
	defer span.End(nil)

	return vatnumber.FormatWithPrefix(raw)
}

func (s *Service) observe(kind string, valid, checksumValid bool, start time.Time) {
	if s.metrics == nil {
		return
	}
	outcome := verifymetrics.OutcomeValid
	switch {
	case !valid:
		outcome = verifymetrics.OutcomeInvalid
	case !checksumValid:
		outcome = verifymetrics.OutcomeChecksumWarning
	}
	s.metrics.ObserveValidation(kind, outcome, start)
}
