package mcq

// ValidationStatus is the verdict assigned to an MCQ by the validation stage.
type ValidationStatus string

const (
	// StatusValid means no validation errors were recorded.
	StatusValid ValidationStatus = "valid"

	// StatusInvalid means validation errors were recorded and the critique
	// score was too low to consider the question salvageable.
	StatusInvalid ValidationStatus = "invalid"

	// StatusNeedsRevision means validation errors were recorded but the
	// critique's overall score suggests the question is worth revising.
	StatusNeedsRevision ValidationStatus = "needs_revision"
)

// ValidationResult is the deterministic verdict for one MCQ, produced once
// by the validation stage.
type ValidationResult struct {
	// MCQIndex is the position of the validated MCQ in the generation list.
	MCQIndex int `json:"mcq_index"`

	// MCQID is the identifier of the validated MCQ.
	MCQID string `json:"mcq_id,omitempty"`

	// Status is the overall verdict.
	Status ValidationStatus `json:"status"`

	// IsContextGrounded is false when the critique's grounding score fell
	// below the grounding floor.
	IsContextGrounded bool `json:"is_context_grounded"`

	// IsProperlyFormatted reports whether all structural checks passed.
	IsProperlyFormatted bool `json:"is_properly_formatted"`

	// HasRequiredMetadata reports whether fragment id, source filename and
	// difficulty are all present.
	HasRequiredMetadata bool `json:"has_required_metadata"`

	// HasHallucination is true when the grounding score fell below the
	// hallucination floor.
	HasHallucination bool `json:"has_hallucination"`

	// ValidationErrors lists every failed check. Validation failures are
	// data, not Go errors.
	ValidationErrors []string `json:"validation_errors"`
}

// IsValid reports whether the MCQ passed validation outright. It requires
// both the VALID status and all four boolean flags independently: future
// checks may set a flag without being reflected in the status rules, and
// this predicate must not silently accept such a question.
func (v *ValidationResult) IsValid() bool {
	return v.Status == StatusValid &&
		v.IsContextGrounded &&
		v.IsProperlyFormatted &&
		v.HasRequiredMetadata &&
		!v.HasHallucination
}
