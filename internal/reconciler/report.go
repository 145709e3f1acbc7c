package reconciler

import (
	"encoding/json"
	"errors"

	"invoicematch/internal/domain"
)

// ParseReport decodes the raw LLM payload into a ReconciliationReport.
// Decoding is syntactic only: amounts are not cross-checked against each
// other and line-item sums are not verified. Input that is not JSON, is
// type-mismatched, or lacks the reconciliation object fails with
// *MalformedResponseError.
func ParseReport(raw string) (*domain.ReconciliationReport, error) {
	var envelope struct {
		ExecutiveSummary string          `json:"executiveSummary"`
		Reconciliation   json.RawMessage `json:"reconciliation"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}
	if len(envelope.Reconciliation) == 0 {
		return nil, &MalformedResponseError{Raw: raw, Err: errors.New("missing reconciliation object")}
	}

	var rec domain.Reconciliation
	if err := json.Unmarshal(envelope.Reconciliation, &rec); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}

	return &domain.ReconciliationReport{
		ExecutiveSummary: envelope.ExecutiveSummary,
		Reconciliation:   rec,
	}, nil
}
