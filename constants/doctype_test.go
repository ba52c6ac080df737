package constants

import "testing"

func TestCanonicalizeDocumentType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  DocumentType
		ok    bool
	}{
		{"exact", "current_labs", CurrentLabs, true},
		{"synonym", "lab results", CurrentLabs, true},
		{"hyphenated", "insurance-card", InsuranceCard, true},
		{"mixed case", "Photo_ID", PhotoID, true},
		{"padded", "  referral  ", ReferralForm, true},
		{"unknown", "selfie", OtherDocument, false},
		{"empty", "", OtherDocument, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalizeDocumentType(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("CanonicalizeDocumentType(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsExtractionEligible(t *testing.T) {
	if !IsExtractionEligible(CurrentLabs) {
		t.Fatal("current_labs must be extraction eligible")
	}
	for _, other := range []DocumentType{InsuranceCard, PhotoID, ReferralForm, DialysisRecords, OtherDocument} {
		if IsExtractionEligible(other) {
			t.Errorf("%s must not be extraction eligible", other)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to ReviewStatus
		want     bool
	}{
		{StatusPendingReview, StatusApproved, true},
		{StatusPendingReview, StatusRejected, true},
		{StatusPendingReview, StatusNeedsCorrection, true},
		{StatusNeedsCorrection, StatusApproved, true},
		{StatusNeedsCorrection, StatusRejected, true},
		{StatusNeedsCorrection, StatusPendingReview, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusPendingReview, StatusPendingReview, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
