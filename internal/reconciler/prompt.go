// Package reconciler holds the prompt and response contract for LLM-driven
// invoice/payout reconciliation.
package reconciler

import "fmt"

const promptTemplate = `You are an expert AI assistant for hospital financial reconciliation. Your task is to compare a hospital's submitted invoice with an insurer's payout summary. You must identify discrepancies and provide a clear, structured summary.

**IMPORTANT INSTRUCTIONS:**
1.  Analyze the two documents provided: a Hospital Invoice and an Insurer Payout Summary.
2.  Match line items between the two documents based on their description.
3.  Calculate the total amount billed by the hospital and the total amount paid by the insurer.
4.  Identify any difference between the billed and paid amounts for each line item and for the total.
5.  Generate a concise, professional executive summary for a hospital finance team, explaining the overall result.
6.  You MUST return your findings in a single, valid JSON object. Do not include any text, explanations, or markdown formatting like ` + "```json" + ` before or after the JSON object.

The JSON object must follow this exact structure:
{
  "executiveSummary": "A natural language summary here...",
  "reconciliation": {
    "totalBilled": 50000,
    "totalPaid": 42500,
    "discrepancyAmount": 7500,
    "lineItems": [
      {"description": "Item Name", "billed": 15000, "paid": 15000, "status": "Paid in Full"},
      {"description": "Another Item", "billed": 5000, "paid": 4250, "status": "Underpaid"},
      {"description": "A Third Item", "billed": 7500, "paid": 0, "status": "Denied"}
    ]
  }
}

Here are the documents:

--- HOSPITAL INVOICE TEXT ---
%s
--- END HOSPITAL INVOICE TEXT ---


--- INSURER PAYOUT SUMMARY TEXT ---
%s
--- END INSURER PAYOUT SUMMARY TEXT ---

Now, generate the JSON response.`

// BuildReconciliationPrompt substitutes the two extracted document texts
// into the fixed instruction template. The texts are embedded verbatim
// between the delimiter markers; no escaping is applied.
func BuildReconciliationPrompt(invoiceText, payoutText string) string {
	return fmt.Sprintf(promptTemplate, invoiceText, payoutText)
}
