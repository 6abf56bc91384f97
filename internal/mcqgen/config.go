package mcqgen

// Config controls the generation and critique stages.
type Config struct {
	// MaxTokens is the token budget for a generation response.
	MaxTokens int

	// CritiqueMaxTokens is the token budget for a single critique response.
	CritiqueMaxTokens int

	// Temperature controls generation randomness (0.0-1.0).
	Temperature float64

	// CritiqueTemperature controls critique randomness. Kept lower than
	// generation so scores stay comparable across MCQs.
	CritiqueTemperature float64

	// SnippetLength is how many bytes of the source fragment are kept on
	// each MCQ as its context snippet.
	SnippetLength int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:           2048,
		CritiqueMaxTokens:   512,
		Temperature:         0.7,
		CritiqueTemperature: 0.3,
		SnippetLength:       200,
	}
}
