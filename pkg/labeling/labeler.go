package labeling

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mailscope/mailscope/pkg/llm"
)

// LabelResult is the validated outcome of labeling one cluster.
type LabelResult struct {
	Category    string
	Subcategory string // "" means Tier-1 only
}

// Labeler labels clusters via a local Ollama model.
type Labeler struct {
	client *llm.Client
	model  string
}

// NewLabeler creates a labeler. The Ollama host must be configured; there
// is no heuristic fallback.
func NewLabeler(client *llm.Client, model string) *Labeler {
	return &Labeler{client: client, model: model}
}

// Label runs the two-line prompt, with one stricter retry when the
// response violates the contract. A second violation degrades to
// Tier-1-only rather than failing the cluster.
func (l *Labeler) Label(ctx context.Context, in PromptInput) (LabelResult, error) {
	basePrompt := BuildLabelPrompt(in)

	prompt := basePrompt
	for attempt := 0; attempt < 2; attempt++ {
		raw, err := l.client.Generate(ctx, l.model, prompt)
		if err != nil {
			return LabelResult{}, fmt.Errorf("label generation failed: %w", err)
		}

		parsed, err := ParseLabelResponse(raw, in.Tier2Options)
		if err != nil {
			return LabelResult{}, err
		}
		category, err := ValidateTier1(parsed.Category)
		if err != nil {
			return LabelResult{}, err
		}

		if parsed.Subcategory == "" {
			return LabelResult{Category: category}, nil
		}

		cleaned, reason := SanitizeSubcategory(parsed.Subcategory)
		if reason == "" {
			return LabelResult{Category: category, Subcategory: cleaned}, nil
		}

		if attempt == 0 {
			slog.Warn("Subcategory rejected, retrying with stricter prompt",
				"reason", reason,
				"sender_domain", in.SenderDomain)
			prompt = basePrompt + strictRetrySuffix
			continue
		}

		slog.Warn("Subcategory rejected again, keeping Tier-1 only",
			"reason", reason,
			"sender_domain", in.SenderDomain)
		return LabelResult{Category: category}, nil
	}

	// Unreachable: both attempts return above.
	return LabelResult{Category: Tier1Categories[0]}, nil
}
