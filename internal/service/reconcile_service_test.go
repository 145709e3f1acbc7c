package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"invoicematch/internal/claims"
	"invoicematch/internal/config"
	"invoicematch/internal/domain"
	"invoicematch/internal/reconciler"
	"invoicematch/internal/service"
	"invoicematch/mocks"
)

const reportJSON = `{
	"executiveSummary": "The insurer underpaid by 7500.",
	"reconciliation": {
		"totalBilled": 50000,
		"totalPaid": 42500,
		"discrepancyAmount": 7500,
		"lineItems": [
			{"description": "Room charges", "billed": 5000, "paid": 4250, "status": "Underpaid"}
		]
	}
}`

const zeroDiscrepancyJSON = `{
	"executiveSummary": "Everything reconciles.",
	"reconciliation": {
		"totalBilled": 50000,
		"totalPaid": 50000,
		"discrepancyAmount": 0,
		"lineItems": [
			{"description": "CT Scan", "billed": 15000, "paid": 15000, "status": "Paid in Full"}
		]
	}
}`

// multipartInput builds a ReconcileInput from two in-memory uploads.
func multipartInput(t *testing.T, invoiceName, invoiceBody, payoutName, payoutBody string) service.ReconcileInput {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("invoice_file", invoiceName)
	require.NoError(t, err)
	_, err = fw.Write([]byte(invoiceBody))
	require.NoError(t, err)
	fw, err = w.CreateFormFile("payout_summary_file", payoutName)
	require.NoError(t, err)
	_, err = fw.Write([]byte(payoutBody))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/reconcile", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	invoiceFile, invoiceHeader, err := req.FormFile("invoice_file")
	require.NoError(t, err)
	payoutFile, payoutHeader, err := req.FormFile("payout_summary_file")
	require.NoError(t, err)

	return service.ReconcileInput{
		InvoiceFile:   invoiceFile,
		InvoiceHeader: invoiceHeader,
		PayoutFile:    payoutFile,
		PayoutHeader:  payoutHeader,
	}
}

func uploadCfg() *config.UploadConfig {
	return &config.UploadConfig{MaxFileSizeMB: 1}
}

func TestReconcile_Success_DiscrepancyForwarded(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("ExtractBytes", mock.Anything, "invoice.txt").Return("invoice text", nil).Once()
	extractor.On("ExtractBytes", mock.Anything, "payout.txt").Return("payout text", nil).Once()

	llm := new(mocks.MockReconciliationClient)
	llm.On("Reconcile", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "invoice text") && strings.Contains(prompt, "payout text")
	})).Return(reportJSON, nil).Once()

	forwarder := new(mocks.MockClaimForwarder)
	forwarder.On("Forward", mock.Anything, mock.MatchedBy(func(r *domain.ReconciliationReport) bool {
		return r.Reconciliation.DiscrepancyAmount == 7500
	})).Return("Successfully logged claim with ID 12345.").Once()

	svc := service.NewReconcileService(extractor, llm, forwarder, uploadCfg())

	out, err := svc.Reconcile(context.Background(),
		multipartInput(t, "invoice.txt", "inv", "payout.txt", "pay"))
	require.NoError(t, err)

	assert.Equal(t, float64(7500), out.Report.Reconciliation.DiscrepancyAmount)
	assert.Equal(t, "Successfully logged claim with ID 12345.", out.ClaimIntegrationStatus)
	extractor.AssertExpectations(t)
	llm.AssertExpectations(t)
	forwarder.AssertExpectations(t)
}

func TestReconcile_ZeroDiscrepancy_NoForwarding(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("ExtractBytes", mock.Anything, mock.Anything).Return("text", nil).Twice()

	llm := new(mocks.MockReconciliationClient)
	llm.On("Reconcile", mock.Anything, mock.Anything).Return(zeroDiscrepancyJSON, nil).Once()

	forwarder := new(mocks.MockClaimForwarder)

	svc := service.NewReconcileService(extractor, llm, forwarder, uploadCfg())

	out, err := svc.Reconcile(context.Background(),
		multipartInput(t, "invoice.txt", "inv", "payout.txt", "pay"))
	require.NoError(t, err)

	assert.Equal(t, claims.StatusNotRequired, out.ClaimIntegrationStatus)
	forwarder.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
}

func TestReconcile_LLMNotConfigured(t *testing.T) {
	svc := service.NewReconcileService(new(mocks.MockTextExtractor), nil, new(mocks.MockClaimForwarder), uploadCfg())

	out, err := svc.Reconcile(context.Background(),
		multipartInput(t, "invoice.txt", "inv", "payout.txt", "pay"))

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrProviderNotConfigured)
}

func TestReconcile_InvalidDocument(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("ExtractBytes", mock.Anything, "invoice.pdf").
		Return("", domain.ErrInvalidDocument).Once()

	llm := new(mocks.MockReconciliationClient)

	svc := service.NewReconcileService(extractor, llm, new(mocks.MockClaimForwarder), uploadCfg())

	out, err := svc.Reconcile(context.Background(),
		multipartInput(t, "invoice.pdf", "garbage", "payout.txt", "pay"))

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)
	assert.Contains(t, err.Error(), "invoice file")
	llm.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything)
}

func TestReconcile_ProviderErrorPropagates(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("ExtractBytes", mock.Anything, mock.Anything).Return("text", nil).Twice()

	llm := new(mocks.MockReconciliationClient)
	llm.On("Reconcile", mock.Anything, mock.Anything).
		Return("", &reconciler.ProviderError{StatusCode: 500, Message: "upstream down"}).Once()

	svc := service.NewReconcileService(extractor, llm, new(mocks.MockClaimForwarder), uploadCfg())

	out, err := svc.Reconcile(context.Background(),
		multipartInput(t, "invoice.txt", "inv", "payout.txt", "pay"))

	assert.Nil(t, out)
	var provErr *reconciler.ProviderError
	assert.True(t, errors.As(err, &provErr))
}

func TestReconcile_MalformedLLMOutput(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("ExtractBytes", mock.Anything, mock.Anything).Return("text", nil).Twice()

	llm := new(mocks.MockReconciliationClient)
	llm.On("Reconcile", mock.Anything, mock.Anything).Return("not json at all", nil).Once()

	svc := service.NewReconcileService(extractor, llm, new(mocks.MockClaimForwarder), uploadCfg())

	out, err := svc.Reconcile(context.Background(),
		multipartInput(t, "invoice.txt", "inv", "payout.txt", "pay"))

	assert.Nil(t, out)
	var malformed *reconciler.MalformedResponseError
	assert.True(t, errors.As(err, &malformed))
}

func TestReconcile_DisabledSizeCapReadsWholeUpload(t *testing.T) {
	invoiceBody := "full invoice body"
	payoutBody := "full payout summary body"

	extractor := new(mocks.MockTextExtractor)
	extractor.On("ExtractBytes", []byte(invoiceBody), "invoice.txt").Return("invoice text", nil).Once()
	extractor.On("ExtractBytes", []byte(payoutBody), "payout.txt").Return("payout text", nil).Once()

	llm := new(mocks.MockReconciliationClient)
	llm.On("Reconcile", mock.Anything, mock.Anything).Return(zeroDiscrepancyJSON, nil).Once()

	svc := service.NewReconcileService(extractor, llm, new(mocks.MockClaimForwarder),
		&config.UploadConfig{MaxFileSizeMB: 0})

	out, err := svc.Reconcile(context.Background(),
		multipartInput(t, "invoice.txt", invoiceBody, "payout.txt", payoutBody))
	require.NoError(t, err)
	require.NotNil(t, out)

	// The extractor must see every byte of each upload, not a truncated read.
	extractor.AssertExpectations(t)
}

func TestReconcile_FileTooLarge(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	llm := new(mocks.MockReconciliationClient)

	svc := service.NewReconcileService(extractor, llm, new(mocks.MockClaimForwarder),
		&config.UploadConfig{MaxFileSizeMB: 1})

	input := multipartInput(t, "invoice.txt", "inv", "payout.txt", "pay")
	input.InvoiceHeader.Size = 2 << 20 // declared size over the 1MB cap

	out, err := svc.Reconcile(context.Background(), input)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	llm.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything)
}
