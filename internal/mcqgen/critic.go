package mcqgen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"quizforge/internal/llm"
	"quizforge/internal/mcq"
	"quizforge/internal/retrieval"
)

// Critic is the critique stage: it scores each MCQ against its source
// fragment on clarity, correctness and grounding.
type Critic struct {
	provider llm.Provider
	config   Config
}

// NewCritic creates a Critic with the given provider and config.
func NewCritic(provider llm.Provider, cfg Config) *Critic {
	return &Critic{provider: provider, config: cfg}
}

// critiqueOutput is the raw model evaluation before conversion.
type critiqueOutput struct {
	ClarityScore         float64  `json:"clarity_score"`
	CorrectnessScore     float64  `json:"correctness_score"`
	GroundingScore       float64  `json:"grounding_score"`
	DifficultyAssessment string   `json:"difficulty_assessment"`
	Issues               []string `json:"issues"`
	Suggestions          []string `json:"suggestions"`
}

// Critique evaluates each MCQ in order, one model call per MCQ.
//
// A failure for one MCQ never aborts the batch: the failed item gets a
// neutral fallback critique and the loop continues. Critique is advisory,
// so a degraded score beats losing the whole pass.
func (c *Critic) Critique(ctx context.Context, mcqs []mcq.MCQ, fragments []retrieval.Fragment) []mcq.CritiqueResult {
	ctx = llm.WithPurpose(ctx, "mcq-critique")

	critiques := make([]mcq.CritiqueResult, 0, len(mcqs))
	for i, m := range mcqs {
		fragment, ok := findFragment(fragments, m.FragmentID)
		if !ok {
			// No context at all: the grounding axis cannot be scored.
			critiques = append(critiques, mcq.NewCritiqueResult(
				i, m.ID, 5.0, 5.0, 0.0, m.Difficulty,
				[]string{"Could not find source context for verification"},
				[]string{"Verify MCQ against original source"},
			))
			continue
		}

		out, err := c.critiqueOne(ctx, m, fragment)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: critique of mcq %d failed: %v\n", i, err)
			critiques = append(critiques, mcq.NewCritiqueResult(
				i, m.ID, 7.0, 7.0, 7.0, m.Difficulty,
				[]string{"Could not complete full critique"},
				[]string{"Manual review recommended"},
			))
			continue
		}

		critiques = append(critiques, mcq.NewCritiqueResult(
			i, m.ID,
			out.ClarityScore, out.CorrectnessScore, out.GroundingScore,
			mcq.ParseDifficulty(out.DifficultyAssessment),
			out.Issues, out.Suggestions,
		))
	}
	return critiques
}

// critiqueOne runs the evaluation prompt for a single MCQ.
func (c *Critic) critiqueOne(ctx context.Context, m mcq.MCQ, fragment retrieval.Fragment) (*critiqueOutput, error) {
	req := llm.Request{
		System: critiqueSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCritiquePrompt(m, fragment)},
		},
		MaxTokens:   c.config.CritiqueMaxTokens,
		Temperature: c.config.CritiqueTemperature,
	}

	resp, err := c.provider.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	raw := json.RawMessage(llm.ExtractJSON(resp.Text))
	if err := llm.Validate(CritiqueSchema, raw); err != nil {
		return nil, err
	}

	var out critiqueOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &llm.ErrMalformedResponse{Text: string(raw), Err: err}
	}
	return &out, nil
}

// findFragment locates the fragment an MCQ cites by ID. A citation that
// matches nothing falls back to the first fragment; only an empty
// fragment list reports failure.
func findFragment(fragments []retrieval.Fragment, fragmentID string) (retrieval.Fragment, bool) {
	if len(fragments) == 0 {
		return retrieval.Fragment{}, false
	}
	for _, f := range fragments {
		if f.FragmentID == fragmentID {
			return f, true
		}
	}
	return fragments[0], true
}
