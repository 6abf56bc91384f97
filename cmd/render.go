package cmd

import (
	"fmt"
	"io"
	"strings"

	"quizforge/internal/mcq"
	"quizforge/internal/ui/theme"
)

// renderResult prints a run summary followed by each question with its
// verdict.
func renderResult(w io.Writer, result *mcq.GenerationResult) {
	fmt.Fprintln(w, theme.Title.Render(fmt.Sprintf("Results for %q", result.Query)))
	fmt.Fprintln(w, theme.Subtitle.Render(fmt.Sprintf("%d generated, %d valid, %d invalid",
		len(result.MCQs), len(result.ValidMCQs), len(result.InvalidMCQs))))
	fmt.Fprintln(w)

	if len(result.MCQs) == 0 {
		fmt.Fprintln(w, theme.Hint.Render("No questions were generated. Try a different query or check the retrieval service."))
		return
	}

	verdicts := verdictsByID(result)
	for i, m := range result.MCQs {
		renderMCQ(w, i+1, m, verdicts[m.ID])
		fmt.Fprintln(w)
	}
}

// verdictsByID indexes validation records by MCQ ID, with positional
// fallback for records without one.
func verdictsByID(result *mcq.GenerationResult) map[string]*mcq.ValidationResult {
	verdicts := make(map[string]*mcq.ValidationResult, len(result.Validations))
	for i := range result.Validations {
		v := &result.Validations[i]
		if v.MCQID != "" {
			verdicts[v.MCQID] = v
		} else if v.MCQIndex < len(result.MCQs) {
			verdicts[result.MCQs[v.MCQIndex].ID] = v
		}
	}
	return verdicts
}

func renderMCQ(w io.Writer, number int, m mcq.MCQ, verdict *mcq.ValidationResult) {
	var b strings.Builder

	badge := renderVerdict(verdict)
	b.WriteString(fmt.Sprintf("%s  %s\n", badge, theme.Subtitle.Render(fmt.Sprintf("Q%d · %s · %s", number, m.Difficulty, m.SourceFilename))))
	b.WriteString(theme.Question.Render(m.Question))
	b.WriteString("\n\n")

	for _, opt := range m.Options {
		line := fmt.Sprintf("%s. %s", opt.Label, opt.Text)
		if opt.IsCorrect {
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		} else {
			b.WriteString(theme.Option.Render(line))
		}
		b.WriteString("\n")
	}

	if m.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(m.Explanation))
	}

	if verdict != nil && len(verdict.ValidationErrors) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Invalid.Render("Issues:"))
		for _, e := range verdict.ValidationErrors {
			b.WriteString("\n")
			b.WriteString(theme.Subtitle.Render("  • " + e))
		}
	}

	fmt.Fprintln(w, theme.Card.Render(b.String()))
}

func renderVerdict(v *mcq.ValidationResult) string {
	if v == nil {
		return theme.Invalid.Render("UNVALIDATED")
	}
	switch v.Status {
	case mcq.StatusValid:
		return theme.Valid.Render("VALID")
	case mcq.StatusNeedsRevision:
		return theme.NeedsRevision.Render("NEEDS REVISION")
	default:
		return theme.Invalid.Render("INVALID")
	}
}
