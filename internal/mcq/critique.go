package mcq

// CritiqueResult is the three-axis quality assessment of one MCQ, produced
// once by the critique stage.
type CritiqueResult struct {
	// MCQIndex is the position of the critiqued MCQ in the generation list.
	MCQIndex int `json:"mcq_index"`

	// MCQID is the identifier of the critiqued MCQ. Empty only for records
	// built before generation assigned IDs (e.g. hand-made fixtures).
	MCQID string `json:"mcq_id,omitempty"`

	// ClarityScore rates how unambiguous the question is, 0-10.
	ClarityScore float64 `json:"clarity_score"`

	// CorrectnessScore rates whether the flagged answer is truly correct
	// given the source fragment, 0-10.
	CorrectnessScore float64 `json:"correctness_score"`

	// GroundingScore rates how fully the MCQ is derivable from its source
	// fragment without outside information, 0-10.
	GroundingScore float64 `json:"grounding_score"`

	// DifficultyAssessment is the critic's re-assessment of difficulty.
	DifficultyAssessment Difficulty `json:"difficulty_assessment"`

	// Issues lists problems the critic found.
	Issues []string `json:"issues"`

	// Suggestions lists proposed improvements.
	Suggestions []string `json:"suggestions"`

	// OverallScore is the mean of the three axis scores. It is computed by
	// NewCritiqueResult and never supplied directly.
	OverallScore float64 `json:"overall_score"`
}

// NewCritiqueResult builds a CritiqueResult, computing OverallScore from
// the three axis scores.
func NewCritiqueResult(index int, mcqID string, clarity, correctness, grounding float64, difficulty Difficulty, issues, suggestions []string) CritiqueResult {
	return CritiqueResult{
		MCQIndex:             index,
		MCQID:                mcqID,
		ClarityScore:         clarity,
		CorrectnessScore:     correctness,
		GroundingScore:       grounding,
		DifficultyAssessment: difficulty,
		Issues:               issues,
		Suggestions:          suggestions,
		OverallScore:         (clarity + correctness + grounding) / 3.0,
	}
}
