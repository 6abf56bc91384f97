package mcqgen

import "quizforge/internal/llm"

// MCQListSchema defines the JSON grammar the generation prompt mandates:
// an array of question objects.
var MCQListSchema = &llm.Schema{
	Name:        "mcq-list",
	Description: "A list of multiple choice questions grounded in provided context",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "The question text",
				},
				"options": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"label": map[string]any{
								"type":        "string",
								"description": "Option letter: A, B, C or D",
							},
							"text": map[string]any{
								"type":        "string",
								"description": "Option body",
							},
						},
						"required":             []any{"label", "text"},
						"additionalProperties": false,
					},
					"description": "Exactly 4 labeled options",
				},
				"correct_answer": map[string]any{
					"type":        "string",
					"description": "Label of the correct option",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Brief explanation referencing the context",
				},
				"difficulty": map[string]any{
					"type":        "string",
					"enum":        []any{"easy", "medium", "hard"},
					"description": "Estimated difficulty",
				},
				"fragment_index": map[string]any{
					"type":        "integer",
					"description": "Zero-based index of the context fragment the question was drawn from",
				},
			},
			"required":             []any{"question", "options", "correct_answer", "explanation", "difficulty"},
			"additionalProperties": false,
		},
	},
}

// CritiqueSchema defines the JSON grammar the critique prompt mandates:
// a single evaluation object.
var CritiqueSchema = &llm.Schema{
	Name:        "mcq-critique",
	Description: "A three-axis quality evaluation of one MCQ",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"clarity_score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     10,
				"description": "How clear and unambiguous the question is",
			},
			"correctness_score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     10,
				"description": "Whether the flagged answer is truly correct given the context",
			},
			"grounding_score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     10,
				"description": "How fully the MCQ is derived from the context",
			},
			"difficulty_assessment": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "Re-assessed difficulty",
			},
			"issues": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Problems found",
			},
			"suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Proposed improvements",
			},
		},
		"required":             []any{"clarity_score", "correctness_score", "grounding_score", "difficulty_assessment"},
		"additionalProperties": false,
	},
}
