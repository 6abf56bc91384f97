package mcq

// GenerationResult is the aggregate artifact of one pipeline run. Build it
// with NewGenerationResult; it is immutable once built.
type GenerationResult struct {
	// Query is the topic the run was executed for.
	Query string `json:"query"`

	// MCQs, Critiques and Validations are the per-stage record lists in
	// generation order.
	MCQs        []MCQ              `json:"mcqs"`
	Critiques   []CritiqueResult   `json:"critiques"`
	Validations []ValidationResult `json:"validations"`

	// ValidMCQs and InvalidMCQs partition MCQs by validation verdict.
	// Their lengths always sum to len(MCQs).
	ValidMCQs   []MCQ `json:"valid_mcqs"`
	InvalidMCQs []MCQ `json:"invalid_mcqs"`
}

// NewGenerationResult aggregates the stage outputs and computes the
// valid/invalid partition once. Each MCQ is matched to its validation
// record by ID when the record carries one, falling back to position;
// an MCQ with no matching record is treated as invalid.
func NewGenerationResult(query string, mcqs []MCQ, critiques []CritiqueResult, validations []ValidationResult) *GenerationResult {
	r := &GenerationResult{
		Query:       query,
		MCQs:        mcqs,
		Critiques:   critiques,
		Validations: validations,
	}

	byID := make(map[string]*ValidationResult, len(validations))
	for i := range validations {
		if id := validations[i].MCQID; id != "" {
			byID[id] = &validations[i]
		}
	}

	for i := range mcqs {
		v := byID[mcqs[i].ID]
		if v == nil && i < len(validations) && validations[i].MCQID == "" {
			v = &validations[i]
		}
		if v != nil && v.IsValid() {
			r.ValidMCQs = append(r.ValidMCQs, mcqs[i])
		} else {
			r.InvalidMCQs = append(r.InvalidMCQs, mcqs[i])
		}
	}

	return r
}

// Report is the published serialization shape of a GenerationResult.
type Report struct {
	Query        string             `json:"query"`
	TotalMCQs    int                `json:"total_mcqs"`
	ValidCount   int                `json:"valid_count"`
	InvalidCount int                `json:"invalid_count"`
	MCQs         []MCQ              `json:"mcqs"`
	Critiques    []CritiqueResult   `json:"critiques"`
	Validations  []ValidationReport `json:"validations"`
	ValidMCQs    []MCQ              `json:"valid_mcqs"`
}

// ValidationReport mirrors ValidationResult with the derived is_valid
// predicate included, matching the published result shape.
type ValidationReport struct {
	ValidationResult
	IsValid bool `json:"is_valid"`
}

// Report builds the published representation of the result.
func (r *GenerationResult) Report() Report {
	validations := make([]ValidationReport, len(r.Validations))
	for i, v := range r.Validations {
		validations[i] = ValidationReport{ValidationResult: v, IsValid: v.IsValid()}
	}
	return Report{
		Query:        r.Query,
		TotalMCQs:    len(r.MCQs),
		ValidCount:   len(r.ValidMCQs),
		InvalidCount: len(r.InvalidMCQs),
		MCQs:         r.MCQs,
		Critiques:    r.Critiques,
		Validations:  validations,
		ValidMCQs:    r.ValidMCQs,
	}
}
