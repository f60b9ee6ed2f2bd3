package constants

// Confidence is the per-field provenance marker assigned by a matcher.
type Confidence string

const (
	ConfidenceExact     Confidence = "exact"     // matched via a field-specific keyword anchor
	ConfidenceHeuristic Confidence = "heuristic" // matched via a generic pattern, no anchor
	ConfidenceNone      Confidence = "none"      // no match
)

// Present reports whether the field has any value at all.
func (c Confidence) Present() bool {
	return c == ConfidenceExact || c == ConfidenceHeuristic
}
