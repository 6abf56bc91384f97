package mcqgen

import (
	"fmt"
	"strings"

	"quizforge/internal/mcq"
	"quizforge/internal/retrieval"
)

// Validation thresholds. The grounding floors and the revision threshold
// are independently tunable; they are not derived from one another.
const (
	// groundingFloor is the minimum critique grounding score below which
	// an MCQ is considered insufficiently grounded in its context.
	groundingFloor = 6.0

	// hallucinationFloor is the grounding score below which an MCQ is
	// flagged as likely containing hallucinated content.
	hallucinationFloor = 5.0

	// revisionThreshold is the minimum critique overall score at which a
	// failing MCQ is marked NEEDS_REVISION instead of INVALID.
	revisionThreshold = 7.0
)

const (
	minQuestionLen    = 10
	minExplanationLen = 10
	requiredOptions   = 4
)

// Validator is the validation stage: purely deterministic structural,
// metadata and grounding checks. It makes no service calls.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate produces one verdict per MCQ, in order. The critique for each
// MCQ is located by position; a missing critique simply contributes no
// grounding errors.
func (v *Validator) Validate(mcqs []mcq.MCQ, critiques []mcq.CritiqueResult, fragments []retrieval.Fragment) []mcq.ValidationResult {
	validations := make([]mcq.ValidationResult, 0, len(mcqs))

	for i, m := range mcqs {
		var critique *mcq.CritiqueResult
		if i < len(critiques) {
			critique = &critiques[i]
		}

		var errs []string

		isProperlyFormatted := checkFormat(&m, &errs)
		hasRequiredMetadata := checkMetadata(&m, &errs)

		isContextGrounded := true
		if critique != nil && critique.GroundingScore < groundingFloor {
			isContextGrounded = false
			errs = append(errs, fmt.Sprintf("Low grounding score: %.1f/10", critique.GroundingScore))
		}

		hasHallucination := false
		if critique != nil && critique.GroundingScore < hallucinationFloor {
			hasHallucination = true
			errs = append(errs, "Potential hallucination detected")
		}

		var status mcq.ValidationStatus
		switch {
		case len(errs) == 0:
			status = mcq.StatusValid
		case critique != nil && critique.OverallScore >= revisionThreshold:
			status = mcq.StatusNeedsRevision
		default:
			status = mcq.StatusInvalid
		}

		validations = append(validations, mcq.ValidationResult{
			MCQIndex:            i,
			MCQID:               m.ID,
			Status:              status,
			IsContextGrounded:   isContextGrounded,
			IsProperlyFormatted: isProperlyFormatted,
			HasRequiredMetadata: hasRequiredMetadata,
			HasHallucination:    hasHallucination,
			ValidationErrors:    errs,
		})
	}

	return validations
}

// checkFormat runs the structural checks, appending one error per failed
// check, and reports whether all passed.
func checkFormat(m *mcq.MCQ, errs *[]string) bool {
	ok := true

	if len(strings.TrimSpace(m.Question)) < minQuestionLen {
		*errs = append(*errs, "Question is too short or empty")
		ok = false
	}

	if len(m.Options) != requiredOptions {
		*errs = append(*errs, fmt.Sprintf("Must have exactly %d options, found %d", requiredOptions, len(m.Options)))
		ok = false
	}

	correct := 0
	for _, opt := range m.Options {
		if opt.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		*errs = append(*errs, fmt.Sprintf("Must have exactly 1 correct answer, found %d", correct))
		ok = false
	}

	if len(strings.TrimSpace(m.Explanation)) < minExplanationLen {
		*errs = append(*errs, "Explanation is too short or empty")
		ok = false
	}

	if !hasExactLabels(m.Options) {
		labels := make([]string, len(m.Options))
		for i, opt := range m.Options {
			labels[i] = opt.Label
		}
		*errs = append(*errs, fmt.Sprintf("Invalid option labels: %v", labels))
		ok = false
	}

	return ok
}

// hasExactLabels reports whether the option labels are exactly
// {A, B, C, D} with no duplicates or omissions.
func hasExactLabels(options []mcq.Option) bool {
	seen := map[string]bool{}
	for _, opt := range options {
		if seen[opt.Label] {
			return false
		}
		seen[opt.Label] = true
	}
	return len(seen) == 4 && seen["A"] && seen["B"] && seen["C"] && seen["D"]
}

// checkMetadata verifies the provenance fields the rest of the system
// relies on are present.
func checkMetadata(m *mcq.MCQ, errs *[]string) bool {
	ok := true

	if m.FragmentID == "" {
		*errs = append(*errs, "Missing fragment_id")
		ok = false
	}
	if m.SourceFilename == "" {
		*errs = append(*errs, "Missing source_filename")
		ok = false
	}
	if m.Difficulty == "" {
		*errs = append(*errs, "Missing difficulty level")
		ok = false
	}

	return ok
}
