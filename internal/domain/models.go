package domain

// LineItemStatus values observed from the model. The status field is free
// text produced by the LLM, not a closed enumeration; unrecognized values
// must be handled gracefully.
const (
	StatusPaidInFull = "Paid in Full"
	StatusUnderpaid  = "Underpaid"
	StatusDenied     = "Denied"
)

// LineItem is a single matched invoice/payout line as reported by the LLM.
type LineItem struct {
	Description string  `json:"description"`
	Billed      float64 `json:"billed"`
	Paid        float64 `json:"paid"`
	Status      string  `json:"status"`
}

// Reconciliation holds the aggregate comparison of billed vs paid amounts.
type Reconciliation struct {
	TotalBilled       float64    `json:"totalBilled"`
	TotalPaid         float64    `json:"totalPaid"`
	DiscrepancyAmount float64    `json:"discrepancyAmount"`
	LineItems         []LineItem `json:"lineItems"`
}

// ReconciliationReport is the structured result returned by the LLM for one
// invoice/payout pair. The service does not verify that discrepancyAmount
// equals totalBilled - totalPaid; the numbers are trusted as reported.
type ReconciliationReport struct {
	ExecutiveSummary string         `json:"executiveSummary"`
	Reconciliation   Reconciliation `json:"reconciliation"`
}
