package constants

// Status is the overall extraction quality for a processed invoice.
type Status string

// Stable values (persisted verbatim in the ledger).
const (
	StatusOK           Status = "OK"                   // all fields anchored, amounts reconcile
	StatusUncertain    Status = "UNCERTAIN"            // usable but at least one heuristic field
	StatusManualReview Status = "MANUAL_REVIEW_NEEDED" // missing fields or unrecoverable inconsistency
)

// AllStatuses lists the valid status vocabulary.
var AllStatuses = []Status{StatusOK, StatusUncertain, StatusManualReview}
