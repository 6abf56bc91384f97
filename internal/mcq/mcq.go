package mcq

import "github.com/google/uuid"

// Option represents a single answer option of an MCQ.
type Option struct {
	// Label is the option letter: "A", "B", "C" or "D".
	Label string `json:"label"`

	// Text is the option body shown to the learner.
	Text string `json:"text"`

	// IsCorrect marks the option that matches CorrectAnswer.
	// Exactly one option per question should carry it; that is enforced
	// by the validation stage, not at construction.
	IsCorrect bool `json:"is_correct"`
}

// Difficulty is the closed difficulty scale for generated questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a raw string to a Difficulty, defaulting to medium
// for anything unrecognized (including the empty string).
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s)
	}
	return DifficultyMedium
}

// MCQ is one generated multiple-choice question together with the
// provenance of the fragment it was drawn from. Instances are created by
// the generation stage and never mutated afterwards; a future revision
// flow would produce a new MCQ rather than edit one in place.
type MCQ struct {
	// ID is a generated identifier assigned at construction. Critique and
	// validation records carry it so the correlation between the three
	// record lists does not depend on position alone.
	ID string `json:"id"`

	// Question is the question prompt.
	Question string `json:"question"`

	// Options holds the four labeled answer options in display order.
	Options []Option `json:"options"`

	// CorrectAnswer is the label of the correct option. It must match the
	// option flagged IsCorrect; the validation stage checks it rather than
	// deriving one from the other.
	CorrectAnswer string `json:"correct_answer"`

	// Explanation is a short justification referencing the source context.
	Explanation string `json:"explanation"`

	// Difficulty is the difficulty estimated during generation.
	Difficulty Difficulty `json:"difficulty"`

	// FragmentID identifies the retrieved fragment the question was drawn
	// from, as reported by the retrieval collaborator.
	FragmentID string `json:"fragment_id"`

	// SourceFilename is the file the fragment originated in.
	SourceFilename string `json:"source_filename"`

	// ContextSnippet is a truncated copy of the source fragment text,
	// kept with the question for display and audit.
	ContextSnippet string `json:"context_snippet"`

	// Metadata carries free-form generation metadata, e.g. the position
	// of the question within its generation response.
	Metadata map[string]any `json:"metadata"`
}

// NewID returns a fresh MCQ identifier.
func NewID() string {
	return uuid.NewString()
}

// CorrectOption returns the option flagged correct, or nil if zero or
// several options are flagged.
func (m *MCQ) CorrectOption() *Option {
	var found *Option
	for i := range m.Options {
		if m.Options[i].IsCorrect {
			if found != nil {
				return nil
			}
			found = &m.Options[i]
		}
	}
	return found
}
