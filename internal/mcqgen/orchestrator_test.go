package mcqgen

import (
	"context"
	"errors"
	"testing"

	"quizforge/internal/llm"
	"quizforge/internal/retrieval"
)

func newTestOrchestrator(genProvider, criticProvider llm.Provider, retriever retrieval.Retriever) *Orchestrator {
	cfg := DefaultConfig()
	return NewOrchestrator(
		retriever,
		NewGenerator(genProvider, cfg),
		NewCritic(criticProvider, cfg),
		NewValidator(),
	)
}

func TestRun(t *testing.T) {
	genMock := llm.NewMockProvider(llm.MockResponse{Text: mcqListJSON()})
	criticMock := llm.NewMockProvider(
		llm.MockResponse{Text: critiqueJSON()},
		llm.MockResponse{Text: critiqueJSON()},
	)
	o := newTestOrchestrator(genMock, criticMock, retrieval.NewMock(testFragments()...))

	result, err := o.Run(context.Background(), "photosynthesis", RunOptions{Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Query != "photosynthesis" {
		t.Errorf("unexpected query: %q", result.Query)
	}
	if len(result.MCQs) != 2 {
		t.Fatalf("expected 2 mcqs, got %d", len(result.MCQs))
	}
	if len(result.Critiques) != 2 || len(result.Validations) != 2 {
		t.Fatalf("expected 2 critiques and 2 validations, got %d/%d",
			len(result.Critiques), len(result.Validations))
	}
	if len(result.ValidMCQs)+len(result.InvalidMCQs) != len(result.MCQs) {
		t.Errorf("partition does not cover the mcqs")
	}
	if len(result.ValidMCQs) != 2 {
		t.Errorf("expected both mcqs valid, got %d", len(result.ValidMCQs))
	}
	if criticMock.CallCount() != 2 {
		t.Errorf("expected one critique call per mcq, got %d", criticMock.CallCount())
	}
}

func TestRun_NoContext_SkipsModelCalls(t *testing.T) {
	genMock := llm.NewMockProvider(llm.MockResponse{Text: mcqListJSON()})
	criticMock := llm.NewMockProvider(llm.MockResponse{Text: critiqueJSON()})
	o := newTestOrchestrator(genMock, criticMock, retrieval.NewMock())

	result, err := o.Run(context.Background(), "unknown topic", RunOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.MCQs) != 0 {
		t.Errorf("expected empty result, got %d mcqs", len(result.MCQs))
	}
	if genMock.CallCount() != 0 || criticMock.CallCount() != 0 {
		t.Errorf("expected no model calls, got gen=%d critic=%d",
			genMock.CallCount(), criticMock.CallCount())
	}
}

func TestRun_RetrievalError(t *testing.T) {
	want := errors.New("connection refused")
	o := newTestOrchestrator(llm.NewMockProvider(), llm.NewMockProvider(), retrieval.NewMockError(want))

	_, err := o.Run(context.Background(), "q", RunOptions{})
	if !errors.Is(err, want) {
		t.Fatalf("expected retrieval error, got %v", err)
	}
}

func TestRun_GenerationEmpty_SkipsCritique(t *testing.T) {
	genMock := llm.NewMockProvider(llm.MockResponse{Text: "not json at all"})
	criticMock := llm.NewMockProvider(llm.MockResponse{Text: critiqueJSON()})
	o := newTestOrchestrator(genMock, criticMock, retrieval.NewMock(testFragments()...))

	result, err := o.Run(context.Background(), "photosynthesis", RunOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.MCQs) != 0 || len(result.Critiques) != 0 || len(result.Validations) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
	if criticMock.CallCount() != 0 {
		t.Errorf("expected no critique calls, got %d", criticMock.CallCount())
	}
}

func TestRun_PassesTopKToRetriever(t *testing.T) {
	retriever := retrieval.NewMock(testFragments()...)
	genMock := llm.NewMockProvider(llm.MockResponse{Text: mcqListJSON()})
	criticMock := llm.NewMockProvider(
		llm.MockResponse{Text: critiqueJSON()},
		llm.MockResponse{Text: critiqueJSON()},
	)
	o := newTestOrchestrator(genMock, criticMock, retriever)

	_, err := o.Run(context.Background(), "photosynthesis", RunOptions{TopK: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retriever.CallCount() != 1 {
		t.Fatalf("expected 1 retrieval, got %d", retriever.CallCount())
	}
}

func TestRunBatch(t *testing.T) {
	// Three queries: one full success, two whose generation responses
	// cannot be parsed.
	retriever := retrieval.NewMock(testFragments()...)
	genMock := llm.NewMockProvider(
		llm.MockResponse{Text: mcqListJSON()},
		llm.MockResponse{Text: "garbage"},
		llm.MockResponse{Text: "garbage"},
	)
	criticMock := llm.NewMockProvider(
		llm.MockResponse{Text: critiqueJSON()},
		llm.MockResponse{Text: critiqueJSON()},
	)
	o := newTestOrchestrator(genMock, criticMock, retriever)

	queries := []string{"photosynthesis", "mitosis", "osmosis"}
	results, stats := o.RunBatch(context.Background(), queries, BatchOptions{Count: 2})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("result %d is nil", i)
		}
		if r.Query != queries[i] {
			t.Errorf("result %d: expected query %q, got %q", i, queries[i], r.Query)
		}
	}

	if stats.Queries != 3 {
		t.Errorf("expected 3 queries, got %d", stats.Queries)
	}
	if stats.Failures != 0 {
		t.Errorf("expected no hard failures, got %d", stats.Failures)
	}
	if stats.TotalGenerated != 2 || stats.TotalValid != 2 {
		t.Errorf("expected 2 generated / 2 valid, got %d/%d", stats.TotalGenerated, stats.TotalValid)
	}
}

func TestRunBatch_RetrievalFailureIsIsolated(t *testing.T) {
	retriever := retrieval.NewMockError(errors.New("down"))
	o := newTestOrchestrator(llm.NewMockProvider(), llm.NewMockProvider(), retriever)

	results, stats := o.RunBatch(context.Background(), []string{"a", "b"}, BatchOptions{})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i, r := range results {
		if r == nil || len(r.MCQs) != 0 {
			t.Errorf("result %d: expected empty placeholder, got %+v", i, r)
		}
	}
	if stats.Failures != 2 {
		t.Errorf("expected 2 failures, got %d", stats.Failures)
	}
	if stats.SuccessRate() != 0 {
		t.Errorf("expected 0 success rate, got %f", stats.SuccessRate())
	}
}

func TestRunBatch_Parallel(t *testing.T) {
	retriever := retrieval.NewMock(testFragments()...)
	genMock := llm.NewMockProvider(
		llm.MockResponse{Text: mcqListJSON()},
		llm.MockResponse{Text: mcqListJSON()},
		llm.MockResponse{Text: mcqListJSON()},
	)
	criticMock := llm.NewMockProvider()
	for range 6 {
		criticMock.AddResponse(llm.MockResponse{Text: critiqueJSON()})
	}
	o := newTestOrchestrator(genMock, criticMock, retriever)

	queries := []string{"a", "b", "c"}
	results, stats := o.RunBatch(context.Background(), queries, BatchOptions{Count: 2, Workers: 3})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if stats.TotalGenerated != 6 || stats.TotalValid != 6 {
		t.Errorf("expected 6 generated / 6 valid, got %d/%d", stats.TotalGenerated, stats.TotalValid)
	}
	if stats.SuccessRate() != 1.0 {
		t.Errorf("expected success rate 1.0, got %f", stats.SuccessRate())
	}
}

func TestRunBatch_ParallelMatchesSequential(t *testing.T) {
	run := func(workers int) BatchStats {
		retriever := retrieval.NewMock(testFragments()...)
		genMock := llm.NewMockProvider(
			llm.MockResponse{Text: mcqListJSON()},
			llm.MockResponse{Text: mcqListJSON()},
		)
		criticMock := llm.NewMockProvider()
		for range 4 {
			criticMock.AddResponse(llm.MockResponse{Text: critiqueJSON()})
		}
		o := newTestOrchestrator(genMock, criticMock, retriever)
		_, stats := o.RunBatch(context.Background(), []string{"a", "b"}, BatchOptions{
			Count:   2,
			Workers: workers,
		})
		return stats
	}

	sequential := run(1)
	parallel := run(2)
	if sequential != parallel {
		t.Errorf("parallel stats %+v differ from sequential %+v", parallel, sequential)
	}
}

func TestBatchStats_SuccessRate(t *testing.T) {
	s := BatchStats{TotalGenerated: 6, TotalValid: 3}
	if got := s.SuccessRate(); got != 0.5 {
		t.Errorf("expected 0.5, got %f", got)
	}

	empty := BatchStats{}
	if got := empty.SuccessRate(); got != 0 {
		t.Errorf("expected 0 for empty batch, got %f", got)
	}
}
