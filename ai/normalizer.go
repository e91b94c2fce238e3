package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

const normalizerSystemPrompt = `You are an expert pharmacist assistant. Your task is to accurately identify a pharmaceutical or parapharmaceutical product based on a user's request. The user may provide a text description and/or photo URLs.
- The text description might contain typos or be vague.
- The photos, if provided, are the most reliable source of information.
- If both text and photos are provided, prioritize the name visible in the photos.
- If only text is provided, correct obvious spelling mistakes for common medication names (e.g. "dolipran" should be "Doliprane").
- If no product can be reasonably identified, return the original description.
Answer with the product name only, nothing else.`

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

func client() *Client {
	defaultOnce.Do(func() {
		defaultClient = NewClientFromEnv()
	})
	return defaultClient
}

// NormalizeProduct returns the canonical name for a noisy product
// description and optional photo URLs. Callers must treat the call as
// fallible and fall back to the original text on error.
func NormalizeProduct(ctx context.Context, description string, photoURLs []string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "User's text description: %s\n", description)
	if len(photoURLs) > 0 {
		b.WriteString("Product photos (analyze these for the product name):\n")
		for _, url := range photoURLs {
			fmt.Fprintf(&b, "- %s\n", url)
		}
	}

	name, err := client().Complete(ctx, normalizerSystemPrompt, b.String())
	if err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return description, nil
	}
	return name, nil
}
