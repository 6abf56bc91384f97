package mcqgen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"quizforge/internal/mcq"
	"quizforge/internal/retrieval"
)

// Stage identifies how far a pipeline run progressed.
type Stage string

const (
	StageRetrieved  Stage = "retrieved"
	StageGenerated  Stage = "generated"
	StageCritiqued  Stage = "critiqued"
	StageValidated  Stage = "validated"
	StageAggregated Stage = "aggregated"

	// Early-exit terminal stages.
	StageNoContext       Stage = "no_context"
	StageGenerationEmpty Stage = "generation_empty"
)

// RunOptions configures a single pipeline run.
type RunOptions struct {
	// Count is how many questions to request. Default: 5.
	Count int

	// Difficulty constrains generation when set; empty leaves the model
	// free to mix levels.
	Difficulty mcq.Difficulty

	// TopK is how many fragments to retrieve. Default: 5.
	TopK int
}

func (o *RunOptions) defaults() {
	if o.Count <= 0 {
		o.Count = 5
	}
	if o.TopK <= 0 {
		o.TopK = 5
	}
}

// Orchestrator sequences the pipeline stages for one query:
// retrieve → generate → critique → validate → aggregate.
//
// Each run exclusively owns the records it creates; nothing is shared
// across concurrent runs, so independent runs may execute in parallel.
type Orchestrator struct {
	retriever retrieval.Retriever
	generator *Generator
	critic    *Critic
	validator *Validator
}

// NewOrchestrator wires the stages together.
func NewOrchestrator(retriever retrieval.Retriever, generator *Generator, critic *Critic, validator *Validator) *Orchestrator {
	return &Orchestrator{
		retriever: retriever,
		generator: generator,
		critic:    critic,
		validator: validator,
	}
}

// Run executes the full pipeline for one query. Zero retrieved fragments
// or zero generated candidates short-circuit to an empty result; the only
// error Run returns is a retrieval transport failure. Stage failures
// inside generation and critique degrade the result instead of failing it.
func (o *Orchestrator) Run(ctx context.Context, query string, opts RunOptions) (*mcq.GenerationResult, error) {
	opts.defaults()

	fragments, err := o.retriever.Retrieve(ctx, query, opts.TopK)
	if err != nil {
		return nil, fmt.Errorf("retrieve context for %q: %w", query, err)
	}
	if len(fragments) == 0 {
		verbosef("[%s] %s: no relevant context found", StageNoContext, query)
		return mcq.NewGenerationResult(query, nil, nil, nil), nil
	}
	verbosef("[%s] %s: %d fragments", StageRetrieved, query, len(fragments))

	mcqs := o.generator.Generate(ctx, fragments, opts.Count, opts.Difficulty)
	if len(mcqs) == 0 {
		verbosef("[%s] %s: generation produced no candidates", StageGenerationEmpty, query)
		return mcq.NewGenerationResult(query, nil, nil, nil), nil
	}
	verbosef("[%s] %s: %d candidates", StageGenerated, query, len(mcqs))

	critiques := o.critic.Critique(ctx, mcqs, fragments)
	verbosef("[%s] %s: %d critiques", StageCritiqued, query, len(critiques))

	validations := o.validator.Validate(mcqs, critiques, fragments)
	verbosef("[%s] %s: %d verdicts", StageValidated, query, len(validations))

	result := mcq.NewGenerationResult(query, mcqs, critiques, validations)
	verbosef("[%s] %s: %d valid / %d invalid", StageAggregated, query, len(result.ValidMCQs), len(result.InvalidMCQs))

	return result, nil
}

// BatchOptions configures a batch run.
type BatchOptions struct {
	// Count is how many questions to request per query.
	Count int

	// Difficulty constrains generation when set.
	Difficulty mcq.Difficulty

	// TopK is how many fragments to retrieve per query.
	TopK int

	// Workers bounds how many queries run concurrently. Values below 1
	// run the batch sequentially.
	Workers int
}

// BatchStats aggregates the outcome of a batch run.
type BatchStats struct {
	Queries        int
	Failures       int
	TotalGenerated int
	TotalValid     int
}

// SuccessRate is TotalValid/TotalGenerated, or 0 when nothing was generated.
func (s BatchStats) SuccessRate() float64 {
	if s.TotalGenerated == 0 {
		return 0
	}
	return float64(s.TotalValid) / float64(s.TotalGenerated)
}

// RunBatch executes one run per query and aggregates the outcome. A
// failing query yields an empty result in its slot and is counted as a
// failure; it never aborts the rest of the batch.
//
// Queries execute through a bounded worker pool. Each run's records stay
// privately owned; the counters are summed only after every run finished.
func (o *Orchestrator) RunBatch(ctx context.Context, queries []string, opts BatchOptions) ([]*mcq.GenerationResult, BatchStats) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]*mcq.GenerationResult, len(queries))
	errs := make([]error, len(queries))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, query := range queries {
		g.Go(func() error {
			result, err := o.Run(ctx, query, RunOptions{
				Count:      opts.Count,
				Difficulty: opts.Difficulty,
				TopK:       opts.TopK,
			})
			if err != nil {
				verbosef("query %q failed: %v", query, err)
				errs[i] = err
				result = mcq.NewGenerationResult(query, nil, nil, nil)
			}
			results[i] = result
			return nil
		})
	}

	// Workers never return errors; Wait is purely a join.
	_ = g.Wait()

	stats := BatchStats{Queries: len(queries)}
	for i, r := range results {
		if errs[i] != nil {
			stats.Failures++
		}
		stats.TotalGenerated += len(r.MCQs)
		stats.TotalValid += len(r.ValidMCQs)
	}

	return results, stats
}
