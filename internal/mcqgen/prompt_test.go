package mcqgen

import (
	"strings"
	"testing"

	"quizforge/internal/mcq"
)

func TestBuildGenerationPrompt(t *testing.T) {
	prompt := buildGenerationPrompt(testFragments(), 3, "")

	if !strings.Contains(prompt, "generate 3 multiple choice questions") {
		t.Error("expected question count in prompt")
	}
	if !strings.Contains(prompt, "[Fragment 0 from biology.md]") {
		t.Error("expected indexed fragment header")
	}
	if !strings.Contains(prompt, "[Fragment 1 from biology.md]") {
		t.Error("expected second fragment header")
	}
	if !strings.Contains(prompt, "Photosynthesis converts light energy") {
		t.Error("expected fragment text")
	}
	if strings.Contains(prompt, "difficulty questions") {
		t.Error("expected no difficulty instruction when unset")
	}
	if !strings.Contains(prompt, `"fragment_index": 0`) {
		t.Error("expected response template")
	}
}

func TestBuildGenerationPrompt_WithDifficulty(t *testing.T) {
	prompt := buildGenerationPrompt(testFragments(), 5, mcq.DifficultyEasy)
	if !strings.Contains(prompt, "Generate easy difficulty questions") {
		t.Error("expected difficulty instruction")
	}
}

func TestBuildCritiquePrompt(t *testing.T) {
	m := testMCQ("id-1", "f1")
	prompt := buildCritiquePrompt(m, testFragments()[0])

	if !strings.Contains(prompt, m.Question) {
		t.Error("expected question in prompt")
	}
	if !strings.Contains(prompt, "A. Chemical energy") {
		t.Error("expected rendered options")
	}
	if !strings.Contains(prompt, "Correct Answer: A") {
		t.Error("expected correct answer line")
	}
	if !strings.Contains(prompt, "Photosynthesis converts light energy") {
		t.Error("expected context text")
	}
	if !strings.Contains(prompt, "clarity_score") {
		t.Error("expected response template")
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxTokens != 2048 {
		t.Errorf("expected MaxTokens 2048, got %d", cfg.MaxTokens)
	}
	if cfg.CritiqueMaxTokens != 512 {
		t.Errorf("expected CritiqueMaxTokens 512, got %d", cfg.CritiqueMaxTokens)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("expected Temperature 0.7, got %f", cfg.Temperature)
	}
	if cfg.CritiqueTemperature != 0.3 {
		t.Errorf("expected CritiqueTemperature 0.3, got %f", cfg.CritiqueTemperature)
	}
	if cfg.SnippetLength != 200 {
		t.Errorf("expected SnippetLength 200, got %d", cfg.SnippetLength)
	}
}
