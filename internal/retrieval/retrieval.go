package retrieval

import (
	"context"
	"fmt"
	"strings"
)

// Fragment is one unit of source text returned by the retrieval
// collaborator, with its provenance metadata.
type Fragment struct {
	// Text is the fragment body.
	Text string `json:"text"`

	// Score is the relevance score assigned upstream. Results are already
	// thresholded by the retrieval service; the pipeline does not re-rank.
	Score float64 `json:"score"`

	// FragmentID identifies the fragment within its source document.
	FragmentID string `json:"fragment_id"`

	// Source is the originating filename.
	Source string `json:"source"`
}

// Retriever is the external context-retrieval collaborator. Given a query
// it returns fragments ordered by relevance.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]Fragment, error)
}

// FormatContext renders fragments as a provenance-tagged context block for
// display or prompting.
func FormatContext(fragments []Fragment) string {
	parts := make([]string, len(fragments))
	for i, f := range fragments {
		parts[i] = fmt.Sprintf("[Source %d: %s, Fragment %s, Relevance: %.2f]\n%s",
			i+1, f.Source, f.FragmentID, f.Score, f.Text)
	}
	return strings.Join(parts, "\n\n")
}
