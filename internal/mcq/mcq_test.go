package mcq

import (
	"math"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"medium", DifficultyMedium},
		{"hard", DifficultyHard},
		{"", DifficultyMedium},
		{"extreme", DifficultyMedium},
		{"Easy", DifficultyMedium},
	}
	for _, tc := range cases {
		if got := ParseDifficulty(tc.in); got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewID_Unique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Errorf("expected distinct IDs, both were %q", a)
	}
}

func TestCorrectOption(t *testing.T) {
	m := MCQ{Options: []Option{
		{Label: "A", Text: "one"},
		{Label: "B", Text: "two", IsCorrect: true},
		{Label: "C", Text: "three"},
		{Label: "D", Text: "four"},
	}}
	opt := m.CorrectOption()
	if opt == nil {
		t.Fatal("expected a correct option")
	}
	if opt.Label != "B" {
		t.Errorf("expected label B, got %q", opt.Label)
	}
}

func TestCorrectOption_NoneOrSeveral(t *testing.T) {
	none := MCQ{Options: []Option{{Label: "A"}, {Label: "B"}}}
	if none.CorrectOption() != nil {
		t.Error("expected nil when no option is flagged")
	}

	two := MCQ{Options: []Option{
		{Label: "A", IsCorrect: true},
		{Label: "B", IsCorrect: true},
	}}
	if two.CorrectOption() != nil {
		t.Error("expected nil when several options are flagged")
	}
}

func TestNewCritiqueResult_OverallIsMean(t *testing.T) {
	c := NewCritiqueResult(0, "id-1", 8.0, 9.0, 7.0, DifficultyMedium, nil, nil)
	if c.OverallScore != 8.0 {
		t.Errorf("expected overall 8.0, got %f", c.OverallScore)
	}

	c = NewCritiqueResult(1, "id-2", 7.0, 7.0, 8.0, DifficultyHard, nil, nil)
	want := 22.0 / 3.0
	if math.Abs(c.OverallScore-want) > 1e-9 {
		t.Errorf("expected overall %f, got %f", want, c.OverallScore)
	}
}

func TestNewCritiqueResult_CarriesFields(t *testing.T) {
	issues := []string{"ambiguous stem"}
	suggestions := []string{"name the unit"}
	c := NewCritiqueResult(3, "id-3", 5, 6, 7, DifficultyEasy, issues, suggestions)
	if c.MCQIndex != 3 || c.MCQID != "id-3" {
		t.Errorf("unexpected identity fields: index %d, id %q", c.MCQIndex, c.MCQID)
	}
	if c.DifficultyAssessment != DifficultyEasy {
		t.Errorf("expected easy assessment, got %q", c.DifficultyAssessment)
	}
	if len(c.Issues) != 1 || len(c.Suggestions) != 1 {
		t.Errorf("expected issues and suggestions to carry through")
	}
}

func TestIsValid_RequiresStatusAndAllFlags(t *testing.T) {
	valid := ValidationResult{
		Status:              StatusValid,
		IsContextGrounded:   true,
		IsProperlyFormatted: true,
		HasRequiredMetadata: true,
	}
	if !valid.IsValid() {
		t.Fatal("expected fully passing result to be valid")
	}

	cases := []struct {
		name   string
		mutate func(v *ValidationResult)
	}{
		{"needs_revision status", func(v *ValidationResult) { v.Status = StatusNeedsRevision }},
		{"invalid status", func(v *ValidationResult) { v.Status = StatusInvalid }},
		{"not grounded", func(v *ValidationResult) { v.IsContextGrounded = false }},
		{"badly formatted", func(v *ValidationResult) { v.IsProperlyFormatted = false }},
		{"missing metadata", func(v *ValidationResult) { v.HasRequiredMetadata = false }},
		{"hallucination", func(v *ValidationResult) { v.HasHallucination = true }},
	}
	for _, tc := range cases {
		v := valid
		tc.mutate(&v)
		if v.IsValid() {
			t.Errorf("%s: expected invalid", tc.name)
		}
	}
}
