package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"quizforge/internal/llm"
	"quizforge/internal/mcqgen"
	"quizforge/internal/retrieval"
	"quizforge/internal/store"

	"github.com/spf13/cobra"
)

const defaultRetrieverURL = "http://localhost:8000"

// buildPipeline opens the store, initializes the LLM provider and wires
// the pipeline stages. The returned close function releases the store.
func buildPipeline(ctx context.Context, cmd *cobra.Command) (*mcqgen.Orchestrator, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("LLM provider: %w", err)
	}

	retrieverURL, _ := cmd.Flags().GetString("retriever-url")
	if retrieverURL == "" {
		retrieverURL = os.Getenv("QUIZFORGE_RETRIEVER_URL")
	}
	if retrieverURL == "" {
		retrieverURL = defaultRetrieverURL
	}
	retriever := retrieval.NewHTTPClient(retrieverURL, 30*time.Second)

	cfg := mcqgen.DefaultConfig()
	orch := mcqgen.NewOrchestrator(
		retriever,
		mcqgen.NewGenerator(provider, cfg),
		mcqgen.NewCritic(provider, cfg),
		mcqgen.NewValidator(),
	)

	return orch, func() { st.Close() }, nil
}
