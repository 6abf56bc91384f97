package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"quizforge/internal/mcqgen"
	"quizforge/internal/ui/theme"

	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [query ...]",
	Short: "Generate MCQs for multiple topics in one run",
	Long: "Runs the full generation pipeline once per query and prints an aggregate summary.\n" +
		"Queries are taken from the arguments, or one per line from --file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		workers, _ := cmd.Flags().GetInt("workers")
		count, _ := cmd.Flags().GetInt("count")
		topK, _ := cmd.Flags().GetInt("top-k")

		difficulty, err := difficultyFlag(cmd)
		if err != nil {
			return err
		}

		queries := args
		if file != "" {
			fromFile, err := readQueries(file)
			if err != nil {
				return err
			}
			queries = append(queries, fromFile...)
		}
		if len(queries) == 0 {
			return fmt.Errorf("no queries given: pass them as arguments or via --file")
		}

		ctx := context.Background()
		orch, closeStore, err := buildPipeline(ctx, cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		results, stats := orch.RunBatch(ctx, queries, mcqgen.BatchOptions{
			Count:      count,
			Difficulty: difficulty,
			TopK:       topK,
			Workers:    workers,
		})

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, theme.Title.Render("Batch Summary"))
		fmt.Fprintln(w)
		for _, r := range results {
			fmt.Fprintf(w, "  %-40s  %3d generated  %3d valid\n",
				truncate(r.Query, 40), len(r.MCQs), len(r.ValidMCQs))
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Queries:    %d (%d failed)\n", stats.Queries, stats.Failures)
		fmt.Fprintf(w, "Generated:  %d\n", stats.TotalGenerated)
		fmt.Fprintf(w, "Valid:      %d (%.0f%%)\n", stats.TotalValid, stats.SuccessRate()*100)

		return nil
	},
}

// readQueries loads one query per line, skipping blanks and # comments.
func readQueries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open query file: %w", err)
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read query file: %w", err)
	}
	return queries, nil
}

func init() {
	batchCmd.Flags().StringP("file", "f", "", "File with one query per line")
	batchCmd.Flags().IntP("workers", "w", 1, "Number of queries to process concurrently")
	batchCmd.Flags().IntP("count", "c", 5, "Number of questions to generate per query")
	batchCmd.Flags().StringP("difficulty", "d", "", "Difficulty level: easy, medium or hard")
	batchCmd.Flags().IntP("top-k", "k", 5, "Number of context fragments to retrieve per query")
	batchCmd.Flags().String("retriever-url", "", "Base URL of the retrieval service (overrides QUIZFORGE_RETRIEVER_URL)")
}
