package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"quizforge/internal/mcq"
	"quizforge/internal/mcqgen"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <query>",
	Short: "Generate quality-gated MCQs for a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		count, _ := cmd.Flags().GetInt("count")
		topK, _ := cmd.Flags().GetInt("top-k")
		output, _ := cmd.Flags().GetString("output")

		difficulty, err := difficultyFlag(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		orch, closeStore, err := buildPipeline(ctx, cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		result, err := orch.Run(ctx, query, mcqgen.RunOptions{
			Count:      count,
			Difficulty: difficulty,
			TopK:       topK,
		})
		if err != nil {
			return err
		}

		if output != "" {
			if err := writeReport(result, output); err != nil {
				return err
			}
			if output == "-" {
				// Keep stdout valid JSON.
				return nil
			}
		}

		renderResult(cmd.OutOrStdout(), result)
		return nil
	},
}

// difficultyFlag parses --difficulty, rejecting values outside the scale.
// An empty flag leaves the generation difficulty unconstrained.
func difficultyFlag(cmd *cobra.Command) (mcq.Difficulty, error) {
	raw, _ := cmd.Flags().GetString("difficulty")
	if raw == "" {
		return "", nil
	}
	switch d := mcq.Difficulty(raw); d {
	case mcq.DifficultyEasy, mcq.DifficultyMedium, mcq.DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("invalid difficulty %q (expected easy, medium or hard)", raw)
}

// writeReport saves the published result shape as JSON, to stdout for "-".
func writeReport(result *mcq.GenerationResult, path string) error {
	data, err := json.MarshalIndent(result.Report(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "report written to %s\n", path)
	return nil
}

func init() {
	generateCmd.Flags().IntP("count", "c", 5, "Number of questions to generate")
	generateCmd.Flags().StringP("difficulty", "d", "", "Difficulty level: easy, medium or hard")
	generateCmd.Flags().IntP("top-k", "k", 5, "Number of context fragments to retrieve")
	generateCmd.Flags().StringP("output", "o", "", "Write the full JSON report to a file ('-' for stdout)")
	generateCmd.Flags().String("retriever-url", "", "Base URL of the retrieval service (overrides QUIZFORGE_RETRIEVER_URL)")
}
