package mcqgen

import (
	"strings"
	"testing"

	"quizforge/internal/mcq"
)

func wellFormedMCQ() mcq.MCQ {
	return testMCQ("id-1", "f1")
}

func passingCritique(index int, id string) mcq.CritiqueResult {
	return mcq.NewCritiqueResult(index, id, 8.0, 9.0, 8.5, mcq.DifficultyEasy, nil, nil)
}

func validateOne(t *testing.T, m mcq.MCQ, critique mcq.CritiqueResult) mcq.ValidationResult {
	t.Helper()
	results := NewValidator().Validate([]mcq.MCQ{m}, []mcq.CritiqueResult{critique}, testFragments())
	if len(results) != 1 {
		t.Fatalf("expected 1 validation, got %d", len(results))
	}
	return results[0]
}

func TestValidate_WellFormed(t *testing.T) {
	v := validateOne(t, wellFormedMCQ(), passingCritique(0, "id-1"))

	if !v.IsValid() {
		t.Fatalf("expected valid, got %+v", v)
	}
	if v.Status != mcq.StatusValid {
		t.Errorf("expected valid status, got %q", v.Status)
	}
	if len(v.ValidationErrors) != 0 {
		t.Errorf("expected no errors, got %v", v.ValidationErrors)
	}
	if v.MCQID != "id-1" {
		t.Errorf("expected mcq id carried, got %q", v.MCQID)
	}
}

func TestValidate_QuestionTooShort(t *testing.T) {
	m := wellFormedMCQ()
	m.Question = "Why?"
	v := validateOne(t, m, passingCritique(0, m.ID))

	if v.IsProperlyFormatted {
		t.Error("expected formatting failure")
	}
	if !containsError(v.ValidationErrors, "too short") {
		t.Errorf("expected short-question error, got %v", v.ValidationErrors)
	}
}

func TestValidate_WrongOptionCount(t *testing.T) {
	m := wellFormedMCQ()
	m.Options = m.Options[:3]
	v := validateOne(t, m, passingCritique(0, m.ID))

	if v.IsProperlyFormatted {
		t.Error("expected formatting failure")
	}
	if !containsError(v.ValidationErrors, "exactly 4 options") {
		t.Errorf("expected option-count error, got %v", v.ValidationErrors)
	}
}

func TestValidate_MultipleCorrectAnswers(t *testing.T) {
	m := wellFormedMCQ()
	m.Options[1].IsCorrect = true
	v := validateOne(t, m, passingCritique(0, m.ID))

	if v.IsProperlyFormatted {
		t.Error("expected formatting failure")
	}
	if !containsError(v.ValidationErrors, "exactly 1 correct answer, found 2") {
		t.Errorf("expected correct-count error, got %v", v.ValidationErrors)
	}
}

func TestValidate_NoCorrectAnswer(t *testing.T) {
	m := wellFormedMCQ()
	m.Options[0].IsCorrect = false
	v := validateOne(t, m, passingCritique(0, m.ID))

	if !containsError(v.ValidationErrors, "exactly 1 correct answer, found 0") {
		t.Errorf("expected correct-count error, got %v", v.ValidationErrors)
	}
}

func TestValidate_BadLabels(t *testing.T) {
	m := wellFormedMCQ()
	m.Options[3].Label = "A" // duplicate A, missing D
	v := validateOne(t, m, passingCritique(0, m.ID))

	if v.IsProperlyFormatted {
		t.Error("expected formatting failure")
	}
	if !containsError(v.ValidationErrors, "Invalid option labels") {
		t.Errorf("expected label error, got %v", v.ValidationErrors)
	}
}

func TestValidate_ShortExplanation(t *testing.T) {
	m := wellFormedMCQ()
	m.Explanation = "yes"
	v := validateOne(t, m, passingCritique(0, m.ID))

	if !containsError(v.ValidationErrors, "Explanation is too short") {
		t.Errorf("expected explanation error, got %v", v.ValidationErrors)
	}
}

func TestValidate_MissingMetadata(t *testing.T) {
	m := wellFormedMCQ()
	m.FragmentID = ""
	m.SourceFilename = ""
	m.Difficulty = ""
	v := validateOne(t, m, passingCritique(0, m.ID))

	if v.HasRequiredMetadata {
		t.Error("expected metadata failure")
	}
	for _, want := range []string{"Missing fragment_id", "Missing source_filename", "Missing difficulty level"} {
		if !containsError(v.ValidationErrors, want) {
			t.Errorf("expected %q in errors, got %v", want, v.ValidationErrors)
		}
	}
}

func TestValidate_GroundingBelowFloor(t *testing.T) {
	critique := mcq.NewCritiqueResult(0, "id-1", 8.0, 8.0, 5.5, mcq.DifficultyEasy, nil, nil)
	v := validateOne(t, wellFormedMCQ(), critique)

	if v.IsContextGrounded {
		t.Error("expected not grounded at 5.5")
	}
	if v.HasHallucination {
		t.Error("expected no hallucination flag at 5.5")
	}
	if !containsError(v.ValidationErrors, "Low grounding score: 5.5/10") {
		t.Errorf("expected grounding error, got %v", v.ValidationErrors)
	}
}

func TestValidate_GroundingBelowHallucinationFloor(t *testing.T) {
	critique := mcq.NewCritiqueResult(0, "id-1", 8.0, 8.0, 4.0, mcq.DifficultyEasy, nil, nil)
	v := validateOne(t, wellFormedMCQ(), critique)

	if v.IsContextGrounded {
		t.Error("expected not grounded at 4.0")
	}
	if !v.HasHallucination {
		t.Error("expected hallucination flag at 4.0")
	}
	if !containsError(v.ValidationErrors, "Potential hallucination detected") {
		t.Errorf("expected hallucination error, got %v", v.ValidationErrors)
	}
}

func TestValidate_GroundingAtFloorPasses(t *testing.T) {
	critique := mcq.NewCritiqueResult(0, "id-1", 8.0, 8.0, 6.0, mcq.DifficultyEasy, nil, nil)
	v := validateOne(t, wellFormedMCQ(), critique)

	if !v.IsContextGrounded {
		t.Error("expected grounded at exactly 6.0")
	}
	if !v.IsValid() {
		t.Errorf("expected valid, got %+v", v)
	}
}

func TestValidate_NeedsRevision(t *testing.T) {
	// Errors present but high overall: worth revising, not discarding.
	critique := mcq.NewCritiqueResult(0, "id-1", 9.0, 9.0, 5.5, mcq.DifficultyEasy, nil, nil)
	v := validateOne(t, wellFormedMCQ(), critique)

	if v.Status != mcq.StatusNeedsRevision {
		t.Errorf("expected needs_revision, got %q", v.Status)
	}
	if v.IsValid() {
		t.Error("needs_revision must never count as valid")
	}
}

func TestValidate_InvalidWhenOverallLow(t *testing.T) {
	critique := mcq.NewCritiqueResult(0, "id-1", 5.0, 5.0, 4.0, mcq.DifficultyEasy, nil, nil)
	v := validateOne(t, wellFormedMCQ(), critique)

	if v.Status != mcq.StatusInvalid {
		t.Errorf("expected invalid, got %q", v.Status)
	}
}

func TestValidate_MissingCritique(t *testing.T) {
	// No critique record: grounding checks are skipped, structure still runs.
	results := NewValidator().Validate([]mcq.MCQ{wellFormedMCQ()}, nil, testFragments())
	if len(results) != 1 {
		t.Fatalf("expected 1 validation, got %d", len(results))
	}
	v := results[0]
	if !v.IsContextGrounded || v.HasHallucination {
		t.Errorf("expected grounding flags untouched without critique, got %+v", v)
	}
	if v.Status != mcq.StatusValid {
		t.Errorf("expected valid, got %q", v.Status)
	}
}

func TestValidate_MalformedWithoutCritiqueIsInvalid(t *testing.T) {
	m := wellFormedMCQ()
	m.Question = "Hm?"
	results := NewValidator().Validate([]mcq.MCQ{m}, nil, testFragments())
	// No critique score to argue for revision.
	if results[0].Status != mcq.StatusInvalid {
		t.Errorf("expected invalid, got %q", results[0].Status)
	}
}

func TestValidate_OneResultPerMCQ(t *testing.T) {
	mcqs := []mcq.MCQ{testMCQ("id-1", "f1"), testMCQ("id-2", "f2"), testMCQ("id-3", "f1")}
	critiques := []mcq.CritiqueResult{passingCritique(0, "id-1")}

	results := NewValidator().Validate(mcqs, critiques, testFragments())
	if len(results) != len(mcqs) {
		t.Fatalf("expected %d validations, got %d", len(mcqs), len(results))
	}
	for i, v := range results {
		if v.MCQIndex != i {
			t.Errorf("validation %d has index %d", i, v.MCQIndex)
		}
	}
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
