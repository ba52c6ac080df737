package constants

// ReviewStatus is the canonical review state for rows in document_staging.
type ReviewStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPendingReview   ReviewStatus = "PENDING_REVIEW"   // staged, awaiting a reviewer
	StatusApproved        ReviewStatus = "APPROVED"         // reviewer accepted the extracted data
	StatusRejected        ReviewStatus = "REJECTED"         // reviewer discarded the upload
	StatusNeedsCorrection ReviewStatus = "NEEDS_CORRECTION" // sent back for manual field entry
)

var allReviewStatuses = []ReviewStatus{
	StatusPendingReview,
	StatusApproved,
	StatusRejected,
	StatusNeedsCorrection,
}

// reviewTransitions holds the allowed status moves. APPROVED and REJECTED
// are terminal; the pipeline itself only ever writes PENDING_REVIEW.
var reviewTransitions = map[ReviewStatus][]ReviewStatus{
	StatusPendingReview:   {StatusApproved, StatusRejected, StatusNeedsCorrection},
	StatusNeedsCorrection: {StatusApproved, StatusRejected},
}

// CanTransition reports whether a reviewer may move a staging record from
// one status to another.
func CanTransition(from, to ReviewStatus) bool {
	for _, allowed := range reviewTransitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}

func ReviewStatusStrings() []string {
	result := make([]string, len(allReviewStatuses))
	for i, s := range allReviewStatuses {
		result[i] = string(s)
	}
	return result
}

// ParseReviewStatus validates a wire string against the known statuses.
func ParseReviewStatus(input string) (ReviewStatus, bool) {
	for _, s := range allReviewStatuses {
		if input == string(s) {
			return s, true
		}
	}
	return "", false
}
