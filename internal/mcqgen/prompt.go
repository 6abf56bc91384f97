package mcqgen

import (
	"fmt"
	"strings"

	"quizforge/internal/mcq"
	"quizforge/internal/retrieval"
)

const generationSystemPrompt = `You are an expert educational content creator specializing in clear, accurate and challenging multiple choice questions. You never introduce information not present in the provided context. You always return valid JSON and nothing else.`

// buildGenerationPrompt constructs the user message asking for count
// questions over the given fragments.
func buildGenerationPrompt(fragments []retrieval.Fragment, count int, difficulty mcq.Difficulty) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based ONLY on the following context, generate %d multiple choice questions.\n\n", count)

	b.WriteString("Context:\n")
	for i, f := range fragments {
		fmt.Fprintf(&b, "[Fragment %d from %s]:\n%s\n\n", i, f.Source, f.Text)
	}

	b.WriteString("Requirements:\n")
	b.WriteString("- Each question must be directly answerable from the context above\n")
	b.WriteString("- Do NOT introduce any external information or assumptions\n")
	b.WriteString("- Provide exactly 4 options (A, B, C, D) for each question\n")
	b.WriteString("- Mark the correct answer clearly via correct_answer\n")
	b.WriteString("- Provide a brief explanation referencing the context\n")
	if difficulty != "" {
		fmt.Fprintf(&b, "- Generate %s difficulty questions\n", difficulty)
	}
	b.WriteString("- Estimate difficulty level (easy/medium/hard)\n")
	b.WriteString("- Set fragment_index to the zero-based index of the fragment each question was drawn from\n")

	b.WriteString(`
Return ONLY a valid JSON array with this exact structure:
[
  {
    "question": "Question text here?",
    "options": [
      {"label": "A", "text": "Option A text"},
      {"label": "B", "text": "Option B text"},
      {"label": "C", "text": "Option C text"},
      {"label": "D", "text": "Option D text"}
    ],
    "correct_answer": "A",
    "explanation": "Explanation referencing the context",
    "difficulty": "medium",
    "fragment_index": 0
  }
]

JSON:`)

	return b.String()
}

const critiqueSystemPrompt = `You are a meticulous educational assessment expert who evaluates multiple choice questions for clarity, correctness, appropriate difficulty and grounding in source material. You always return valid JSON and nothing else.`

// buildCritiquePrompt constructs the evaluation message for one MCQ
// against its source fragment.
func buildCritiquePrompt(m mcq.MCQ, fragment retrieval.Fragment) string {
	var b strings.Builder

	b.WriteString("Evaluate the following MCQ for quality:\n\n")

	b.WriteString("Context:\n")
	b.WriteString(fragment.Text)
	b.WriteString("\n\n")

	b.WriteString("MCQ:\n")
	fmt.Fprintf(&b, "Question: %s\n", m.Question)
	b.WriteString("Options:\n")
	for _, opt := range m.Options {
		fmt.Fprintf(&b, "%s. %s\n", opt.Label, opt.Text)
	}
	fmt.Fprintf(&b, "Correct Answer: %s\n", m.CorrectAnswer)
	fmt.Fprintf(&b, "Explanation: %s\n", m.Explanation)

	b.WriteString(`
Evaluate on these criteria (score 0-10 each):
1. Clarity: Is the question clear and unambiguous?
2. Correctness: Is the correct answer truly correct based on the context?
3. Grounding: Is everything in the MCQ derived from the context?

Also assess:
- Difficulty level (easy/medium/hard)
- Any issues or problems
- Suggestions for improvement

Return ONLY valid JSON:
{
  "clarity_score": 8.5,
  "correctness_score": 9.0,
  "grounding_score": 8.0,
  "difficulty_assessment": "medium",
  "issues": ["List any issues"],
  "suggestions": ["List suggestions"]
}

JSON:`)

	return b.String()
}
