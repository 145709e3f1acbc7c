package claims

import (
	"context"
	"fmt"
	"log"
	"time"

	"invoicematch/internal/domain"
	"invoicematch/internal/port"
)

// Fixed claim integration statuses returned inside a successful reconcile
// response. Forwarding never fails the request.
const (
	StatusNotConfigured  = "Not configured: claims API credentials are missing."
	StatusNotRequired    = "Not required: No discrepancy found."
	StatusNoItemsFlagged = "Not required: all line items were paid in full."
)

// Placeholder claim metadata. The uploaded documents carry no provider,
// enrollee, or diagnosis identity, so these fields must be replaced with a
// real identity source before submitting claims against a live account.
const (
	placeholderProviderID  = "PRV-0001-PLACEHOLDER"
	placeholderInsuranceNo = "ENR-0001-PLACEHOLDER"
	placeholderICD10       = "Z00.0"
	claimType              = "out-patient"
	serviceType            = "service"
)

// Forwarder implements port.ClaimForwarder. A nil submitter means the claims
// API is not configured and forwarding is skipped.
type Forwarder struct {
	submitter port.ClaimSubmitter
	now       func() time.Time
}

// NewForwarder creates a claim forwarder. submitter may be nil.
func NewForwarder(submitter port.ClaimSubmitter) *Forwarder {
	return &Forwarder{submitter: submitter, now: time.Now}
}

// Forward files a claim for the report's underpaid and denied line items.
// It returns a human-readable status string and never an error: failures to
// reach the claims API are absorbed into the status.
func (f *Forwarder) Forward(ctx context.Context, report *domain.ReconciliationReport) string {
	if f.submitter == nil {
		return StatusNotConfigured
	}

	flagged := flaggedItems(report.Reconciliation.LineItems)
	if len(flagged) == 0 {
		return StatusNoItemsFlagged
	}

	claim := f.buildClaim(report, flagged)
	id, err := f.submitter.Submit(ctx, claim)
	if err != nil {
		log.Printf("claims: submission failed: %v", err)
		return fmt.Sprintf("Failed to log claim: %v", err)
	}
	return fmt.Sprintf("Successfully logged claim with ID %s.", id)
}

// flaggedItems returns the line items whose status is anything other than
// "Paid in Full". The status text comes from the LLM, so unrecognized
// values are treated as flagged rather than dropped.
func flaggedItems(items []domain.LineItem) []domain.LineItem {
	var flagged []domain.LineItem
	for _, item := range items {
		if item.Status != domain.StatusPaidInFull {
			flagged = append(flagged, item)
		}
	}
	return flagged
}

func (f *Forwarder) buildClaim(report *domain.ReconciliationReport, flagged []domain.LineItem) domain.Claim {
	items := make([]domain.ClaimItem, 0, len(flagged))
	for _, item := range flagged {
		items = append(items, domain.ClaimItem{
			Description:     item.Description,
			Qty:             1,
			UnitPriceBilled: item.Billed,
			ServiceType:     serviceType,
		})
	}

	return domain.Claim{
		ProviderID:    placeholderProviderID,
		Type:          claimType,
		EncounterDate: f.now().Format("2006-01-02"),
		Enrollee: domain.Enrollee{
			InsuranceNo: placeholderInsuranceNo,
			FirstName:   "Unknown",
			LastName:    "Enrollee",
			DOB:         "1990-01-01",
			Gender:      "unspecified",
		},
		Diagnoses: []domain.Diagnosis{
			{Name: "Billing reconciliation discrepancy", ICD10: placeholderICD10},
		},
		AmountClaimed: report.Reconciliation.DiscrepancyAmount,
		Items:         items,
	}
}
