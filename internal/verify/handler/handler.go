package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fiscale/internal/platform/middleware"
	"fiscale/pkg/fiscalcode"
	"fiscale/pkg/platform/httputil"
	"fiscale/pkg/vatnumber"
)

// Service defines the interface for identifier verification operations.
// Returns codec value types, not HTTP response DTOs.
type Service interface {
	ValidateFiscalCode(ctx context.Context, raw string) fiscalcode.Result
	ReverseEngineerFiscalCode(ctx context.Context, raw string) fiscalcode.Identity
	NameFragment(ctx context.Context, surname, givenName string) string
	MatchName(ctx context.Context, code, surname, givenName string) bool
	ValidateVatNumber(ctx context.Context, raw string) vatnumber.Result
	FormatVatNumber(ctx context.Context, raw string) string
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/fiscal-codes/validate", h.HandleValidateFiscalCode)
	r.Post("/fiscal-codes/decode", h.HandleDecodeFiscalCode)
	r.Post("/fiscal-codes/name-fragment", h.HandleNameFragment)
	r.Post("/fiscal-codes/match", h.HandleMatchName)
	r.Post("/vat-numbers/validate", h.HandleValidateVatNumber)
	r.Post("/vat-numbers/format", h.HandleFormatVatNumber)
}

// HandleValidateFiscalCode validates a fiscal code. Checksum and omocodia
// findings come back as warnings inside the result, never as HTTP errors.
func (h *Handler) HandleValidateFiscalCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateFiscalCodeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res := h.service.ValidateFiscalCode(ctx, req.FiscalCode)
	httputil.WriteJSON(w, http.StatusOK, res)
}

// HandleDecodeFiscalCode reverse-engineers birth data from a fiscal code.
// All identity fields are best effort; the validation result rides along.
func (h *Handler) HandleDecodeFiscalCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[DecodeFiscalCodeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &DecodeResponse{
		Identity:   h.service.ReverseEngineerFiscalCode(ctx, req.FiscalCode),
		Validation: h.service.ValidateFiscalCode(ctx, req.FiscalCode),
	})
}

// HandleNameFragment generates the 6-character name fragment for a surname
// and given name.
func (h *Handler) HandleNameFragment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[NameFragmentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	fragment := h.service.NameFragment(ctx, req.Surname, req.GivenName)
	httputil.WriteJSON(w, http.StatusOK, &FragmentResponse{Fragment: fragment})
}

// HandleMatchName checks fiscal-code/name correspondence.
func (h *Handler) HandleMatchName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[MatchNameRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	matches := h.service.MatchName(ctx, req.FiscalCode, req.Surname, req.GivenName)
	httputil.WriteJSON(w, http.StatusOK, &MatchResponse{Matches: matches})
}

// HandleValidateVatNumber validates a VAT number.
func (h *Handler) HandleValidateVatNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateVatNumberRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res := h.service.ValidateVatNumber(ctx, req.VatNumber)
	httputil.WriteJSON(w, http.StatusOK, res)
}

// HandleFormatVatNumber returns the VAT number with the IT prefix, or the
// input unchanged when it does not validate.
func (h *Handler) HandleFormatVatNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[FormatVatNumberRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	formatted := h.service.FormatVatNumber(ctx, req.VatNumber)
	httputil.WriteJSON(w, http.StatusOK, &FormatResponse{Formatted: formatted})
}
