package handler

import (
	"fiscale/pkg/platform/validation"
	"fiscale/pkg/strutil"
)

// HTTP request DTOs. Whitespace trimming happens here; codec-level
// normalization (case folding, prefix stripping) stays in the codecs so the
// service behaves identically for non-HTTP callers.

type ValidateFiscalCodeRequest struct {
	FiscalCode string `json:"fiscal_code" validate:"required,notblank,max=64"`
}

func (r *ValidateFiscalCodeRequest) Normalize() {
	if r == nil {
		return
	}
	strutil.TrimStrings(&r.FiscalCode)
}

func (r *ValidateFiscalCodeRequest) Validate() error {
	return validation.Validate(r)
}

type DecodeFiscalCodeRequest struct {
	FiscalCode string `json:"fiscal_code" validate:"required,notblank,max=64"`
}

func (r *DecodeFiscalCodeRequest) Normalize() {
	if r == nil {
		return
	}
	strutil.TrimStrings(&r.FiscalCode)
}

func (r *DecodeFiscalCodeRequest) Validate() error {
	return validation.Validate(r)
}

type NameFragmentRequest struct {
	Surname   string `json:"surname" validate:"required,notblank,max=128"`
	GivenName string `json:"given_name" validate:"required,notblank,max=128"`
}

func (r *NameFragmentRequest) Normalize() {
	if r == nil {
		return
	}
	strutil.TrimStrings(&r.Surname, &r.GivenName)
}

func (r *NameFragmentRequest) Validate() error {
	return validation.Validate(r)
}

type MatchNameRequest struct {
	FiscalCode string `json:"fiscal_code" validate:"required,notblank,max=64"`
	Surname    string `json:"surname" validate:"required,notblank,max=128"`
	GivenName  string `json:"given_name" validate:"required,notblank,max=128"`
}

func (r *MatchNameRequest) Normalize() {
	if r == nil {
		return
	}
	strutil.TrimStrings(&r.FiscalCode, &r.Surname, &r.GivenName)
}

func (r *MatchNameRequest) Validate() error {
	return validation.Validate(r)
}

type ValidateVatNumberRequest struct {
	VatNumber string `json:"vat_number" validate:"required,notblank,max=64"`
}

func (r *ValidateVatNumberRequest) Normalize() {
	if r == nil {
		return
	}
	strutil.TrimStrings(&r.VatNumber)
}

func (r *ValidateVatNumberRequest) Validate() error {
	return validation.Validate(r)
}

type FormatVatNumberRequest struct {
	VatNumber string `json:"vat_number" validate:"required,notblank,max=64"`
}

func (r *FormatVatNumberRequest) Normalize() {
	if r == nil {
		return
	}
	strutil.TrimStrings(&r.VatNumber)
}

func (r *FormatVatNumberRequest) Validate() error {
	return validation.Validate(r)
}
