package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicematch/internal/service"
)

// ReconcileHandler handles the document reconciliation endpoint.
type ReconcileHandler struct {
	reconcileService service.ReconcileService
}

// NewReconcileHandler creates a new ReconcileHandler.
func NewReconcileHandler(reconcileService service.ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{reconcileService: reconcileService}
}

// Reconcile handles POST /reconcile. It accepts a multipart form with an
// invoice_file and a payout_summary_file, compares them through the LLM,
// and returns the structured reconciliation report together with the claim
// forwarding status.
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	invoiceFile, invoiceHeader, err := c.Request.FormFile("invoice_file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invoice_file field is required")
		return
	}
	defer func() { _ = invoiceFile.Close() }()

	payoutFile, payoutHeader, err := c.Request.FormFile("payout_summary_file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "payout_summary_file field is required")
		return
	}
	defer func() { _ = payoutFile.Close() }()

	out, err := h.reconcileService.Reconcile(c.Request.Context(), service.ReconcileInput{
		InvoiceFile:   invoiceFile,
		InvoiceHeader: invoiceHeader,
		PayoutFile:    payoutFile,
		PayoutHeader:  payoutHeader,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":                 "success",
		"data":                   out.Report,
		"claimIntegrationStatus": out.ClaimIntegrationStatus,
	})
}
