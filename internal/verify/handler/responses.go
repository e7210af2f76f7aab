package handler

import "fiscale/pkg/fiscalcode"

// The codec result types carry their own JSON tags and are returned as-is;
// only the scalar operations get a response envelope.

type FragmentResponse struct {
	Fragment string `json:"fragment"`
}

type MatchResponse struct {
	Matches bool `json:"matches"`
}

type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// DecodeResponse wraps the reverse-engineered identity together with the
// validation outcome, so form callers can pre-fill and flag in one round trip.
type DecodeResponse struct {
	Identity   fiscalcode.Identity `json:"identity"`
	Validation fiscalcode.Result   `json:"validation"`
}
