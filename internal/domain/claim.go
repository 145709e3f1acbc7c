package domain

// Enrollee identifies the insured party on a claim.
type Enrollee struct {
	InsuranceNo string `json:"insurance_no"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DOB         string `json:"dob"`
	Gender      string `json:"gender"`
}

// Diagnosis is a single diagnosis entry on a claim.
type Diagnosis struct {
	Name  string `json:"name"`
	ICD10 string `json:"icd10"`
}

// ClaimItem is one billable entry on a claim.
type ClaimItem struct {
	Description     string  `json:"description"`
	Qty             int     `json:"qty"`
	UnitPriceBilled float64 `json:"unit_price_billed"`
	ServiceType     string  `json:"service_type"`
}

// Claim is the payload accepted by the external claims API at
// POST /api/v1/claims.
type Claim struct {
	ProviderID    string      `json:"provider_id"`
	Type          string      `json:"type"`
	EncounterDate string      `json:"encounter_date"`
	Enrollee      Enrollee    `json:"enrollee"`
	Diagnoses     []Diagnosis `json:"diagnoses"`
	AmountClaimed float64     `json:"amount_claimed"`
	Items         []ClaimItem `json:"items"`
}
