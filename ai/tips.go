package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const tipsSystemPrompt = `You are a health and wellness expert. Generate simple, actionable and encouraging health tips in French, covering different aspects of well-being such as nutrition, exercise, mental health, sleep and hydration. The tone should be positive and motivating. Do not repeat tips.
Answer with a JSON array of exactly 5 objects of the form {"title": "...", "content": "..."} and nothing else. Each content should be two or three sentences.`

// HealthTip is one AI-generated editorial entry for the health library.
type HealthTip struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GenerateHealthTips asks the model for five fresh tips. The output seeds
// draft posts; nothing is published without an admin or the scheduler.
func GenerateHealthTips(ctx context.Context) ([]HealthTip, error) {
	raw, err := client().Complete(ctx, tipsSystemPrompt, "Génère les conseils santé.")
	if err != nil {
		return nil, err
	}

	// Models occasionally wrap JSON in a code fence.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var tips []HealthTip
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &tips); err != nil {
		return nil, fmt.Errorf("ai: could not parse tips: %w", err)
	}
	if len(tips) == 0 {
		return nil, fmt.Errorf("ai: tips response was empty")
	}
	return tips, nil
}
