package constants

import (
	"strings"
)

// DocumentType is the canonical classification for an uploaded patient
// document. Stable values (store these exact strings in DB and object tags).
type DocumentType string

const (
	CurrentLabs     DocumentType = "current_labs"
	InsuranceCard   DocumentType = "insurance_card"
	PhotoID         DocumentType = "photo_id"
	ReferralForm    DocumentType = "referral_form"
	DialysisRecords DocumentType = "dialysis_records"
	OtherDocument   DocumentType = "other"
)

var allDocumentTypes = []DocumentType{
	CurrentLabs,
	InsuranceCard,
	PhotoID,
	ReferralForm,
	DialysisRecords,
	OtherDocument,
}

// extractionEligible lists the document types routed to field extraction.
// Everything else is staged for manual review with no extraction attempt.
var extractionEligible = map[DocumentType]struct{}{
	CurrentLabs: {},
}

// IsExtractionEligible reports whether documents of this type go through
// the extraction service.
func IsExtractionEligible(t DocumentType) bool {
	_, ok := extractionEligible[t]
	return ok
}

func DocumentTypeStrings() []string {
	result := make([]string, len(allDocumentTypes))
	for i, t := range allDocumentTypes {
		result[i] = string(t)
	}
	return result
}

// CanonicalizeDocumentType maps free-form upload labels onto a canonical
// DocumentType. Unknown labels fall back to OtherDocument with ok=false so
// callers can keep the original string for the reviewer.
func CanonicalizeDocumentType(input string) (DocumentType, bool) {
	if input == "" {
		return OtherDocument, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	// synonyms map
	synonyms := map[string]DocumentType{
		"labs":            CurrentLabs,
		"lab_results":     CurrentLabs,
		"lab_report":      CurrentLabs,
		"bloodwork":       CurrentLabs,
		"insurance":       InsuranceCard,
		"insurance_cards": InsuranceCard,
		"id":              PhotoID,
		"drivers_license": PhotoID,
		"referral":        ReferralForm,
		"dialysis":        DialysisRecords,
	}

	if t, ok := synonyms[normalized]; ok {
		return t, true
	}

	for _, t := range allDocumentTypes {
		if normalized == string(t) {
			return t, true
		}
	}

	return OtherDocument, false
}
