package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"

	"invoicematch/internal/claims"
	"invoicematch/internal/config"
	"invoicematch/internal/domain"
	"invoicematch/internal/port"
	"invoicematch/internal/reconciler"
)

// ReconcileInput is the DTO for a reconciliation request.
type ReconcileInput struct {
	InvoiceFile   multipart.File
	InvoiceHeader *multipart.FileHeader
	PayoutFile    multipart.File
	PayoutHeader  *multipart.FileHeader
}

// ReconcileOutput pairs the parsed report with the claim forwarding status.
type ReconcileOutput struct {
	Report                 *domain.ReconciliationReport
	ClaimIntegrationStatus string
}

// ReconcileService defines the reconciliation contract.
type ReconcileService interface {
	Reconcile(ctx context.Context, input ReconcileInput) (*ReconcileOutput, error)
}

type reconcileService struct {
	extractor port.TextExtractor
	llm       port.ReconciliationClient
	forwarder port.ClaimForwarder
	maxBytes  int64
}

// NewReconcileService creates a new ReconcileService implementation. llm may
// be nil when no provider credential is configured; every call then fails
// with domain.ErrProviderNotConfigured.
func NewReconcileService(
	extractor port.TextExtractor,
	llm port.ReconciliationClient,
	forwarder port.ClaimForwarder,
	cfg *config.UploadConfig,
) ReconcileService {
	return &reconcileService{
		extractor: extractor,
		llm:       llm,
		forwarder: forwarder,
		maxBytes:  cfg.MaxFileSizeMB * 1024 * 1024,
	}
}

// Reconcile runs the request flow: extract both documents, build the prompt,
// call the LLM, parse its JSON, and forward flagged discrepancies. Each step
// gets a single attempt; errors carry their type so the handler can map them
// to status codes.
func (s *reconcileService) Reconcile(ctx context.Context, input ReconcileInput) (*ReconcileOutput, error) {
	if s.llm == nil {
		return nil, domain.ErrProviderNotConfigured
	}

	invoiceText, err := s.extractText(input.InvoiceFile, input.InvoiceHeader)
	if err != nil {
		return nil, fmt.Errorf("invoice file: %w", err)
	}
	payoutText, err := s.extractText(input.PayoutFile, input.PayoutHeader)
	if err != nil {
		return nil, fmt.Errorf("payout summary file: %w", err)
	}

	prompt := reconciler.BuildReconciliationPrompt(invoiceText, payoutText)

	raw, err := s.llm.Reconcile(ctx, prompt)
	if err != nil {
		return nil, err
	}

	report, err := reconciler.ParseReport(raw)
	if err != nil {
		return nil, err
	}

	claimStatus := claims.StatusNotRequired
	if report.Reconciliation.DiscrepancyAmount > 0 {
		claimStatus = s.forwarder.Forward(ctx, report)
	}
	log.Printf("reconcile: discrepancy %.2f, claim status: %s",
		report.Reconciliation.DiscrepancyAmount, claimStatus)

	return &ReconcileOutput{Report: report, ClaimIntegrationStatus: claimStatus}, nil
}

// extractText reads one upload and extracts its text. A non-positive
// maxBytes disables the size cap entirely.
func (s *reconcileService) extractText(file multipart.File, header *multipart.FileHeader) (string, error) {
	if s.maxBytes > 0 && header.Size > s.maxBytes {
		return "", domain.ErrFileTooLarge
	}
	var reader io.Reader = file
	if s.maxBytes > 0 {
		reader = io.LimitReader(file, s.maxBytes+1)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}
	if s.maxBytes > 0 && int64(len(content)) > s.maxBytes {
		return "", domain.ErrFileTooLarge
	}
	return s.extractor.ExtractBytes(content, header.Filename)
}
