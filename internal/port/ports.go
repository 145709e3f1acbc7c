// Package port defines the interfaces between the request flow and its
// collaborators, so each can be substituted with a test double.
package port

import (
	"context"

	"invoicematch/internal/domain"
)

// TextExtractor converts uploaded document bytes into plain text.
type TextExtractor interface {
	ExtractBytes(content []byte, filename string) (string, error)
}

// ReconciliationClient sends a built prompt to the LLM provider and returns
// the raw text payload of the completion.
type ReconciliationClient interface {
	Reconcile(ctx context.Context, prompt string) (string, error)
}

// ClaimSubmitter records a claim with the external claims API and returns
// the external claim identifier.
type ClaimSubmitter interface {
	Submit(ctx context.Context, claim domain.Claim) (string, error)
}

// ClaimForwarder conditionally forwards flagged discrepancies to the claims
// API. It never fails; every outcome is a human-readable status string.
type ClaimForwarder interface {
	Forward(ctx context.Context, report *domain.ReconciliationReport) string
}
