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

// Generator is the generation stage: it turns retrieved fragments into
// candidate MCQs with a single model call.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// mcqItem is one raw question from the model response before conversion.
type mcqItem struct {
	Question      string       `json:"question"`
	Options       []optionItem `json:"options"`
	CorrectAnswer string       `json:"correct_answer"`
	Explanation   string       `json:"explanation"`
	Difficulty    string       `json:"difficulty"`
	FragmentIndex int          `json:"fragment_index"`
}

type optionItem struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Generate produces up to count MCQs from the given fragments. An empty
// fragment list short-circuits to an empty result without a model call.
//
// Any service error or malformed response discards the entire call: the
// cause is logged and an empty list returned, never an error. One bad
// response losing all its candidates is the accepted cost of keeping the
// downstream stages free of partially parsed input.
func (g *Generator) Generate(ctx context.Context, fragments []retrieval.Fragment, count int, difficulty mcq.Difficulty) []mcq.MCQ {
	if len(fragments) == 0 {
		return nil
	}

	ctx = llm.WithPurpose(ctx, "mcq-gen")

	req := llm.Request{
		System: generationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGenerationPrompt(fragments, count, difficulty)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Complete(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: mcq generation failed: %v\n", err)
		return nil
	}

	items, err := parseMCQItems(resp.Text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: mcq generation failed: %v\n", err)
		return nil
	}

	mcqs := make([]mcq.MCQ, 0, len(items))
	for i, item := range items {
		mcqs = append(mcqs, g.buildMCQ(item, i, fragments))
	}
	return mcqs
}

// parseMCQItems strips any code fence, validates the array grammar and
// unmarshals the items.
func parseMCQItems(text string) ([]mcqItem, error) {
	raw := json.RawMessage(llm.ExtractJSON(text))

	if err := llm.Validate(MCQListSchema, raw); err != nil {
		return nil, err
	}

	var items []mcqItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &llm.ErrMalformedResponse{Text: string(raw), Err: err}
	}
	return items, nil
}

// buildMCQ converts one parsed item to an MCQ, resolving its fragment
// back-reference. An out-of-range reference falls back to the first
// fragment rather than failing the item.
func (g *Generator) buildMCQ(item mcqItem, order int, fragments []retrieval.Fragment) mcq.MCQ {
	idx := item.FragmentIndex
	if idx < 0 || idx >= len(fragments) {
		idx = 0
	}
	source := fragments[idx]

	options := make([]mcq.Option, len(item.Options))
	for i, opt := range item.Options {
		options[i] = mcq.Option{
			Label:     opt.Label,
			Text:      opt.Text,
			IsCorrect: opt.Label == item.CorrectAnswer,
		}
	}

	return mcq.MCQ{
		ID:             mcq.NewID(),
		Question:       item.Question,
		Options:        options,
		CorrectAnswer:  item.CorrectAnswer,
		Explanation:    item.Explanation,
		Difficulty:     mcq.ParseDifficulty(item.Difficulty),
		FragmentID:     source.FragmentID,
		SourceFilename: source.Source,
		ContextSnippet: snippet(source.Text, g.config.SnippetLength),
		Metadata:       map[string]any{"generation_order": order},
	}
}

// snippet truncates text to max bytes and marks the cut.
func snippet(text string, max int) string {
	if max > 0 && len(text) > max {
		text = text[:max]
	}
	return text + "..."
}
