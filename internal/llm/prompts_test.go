package llm

import (
	"strings"
	"testing"
)

func TestPromptsCycleTemplates(t *testing.T) {
	prompts := Prompts("garden strolls", 6)
	if len(prompts) != 6 {
		t.Fatalf("got %d prompts, want 6", len(prompts))
	}

	// Fifth and sixth prompts reuse the first two styles.
	if prompts[4] != prompts[0] {
		t.Error("prompt 5 did not cycle back to the first template")
	}
	if prompts[5] != prompts[1] {
		t.Error("prompt 6 did not cycle back to the second template")
	}
	if prompts[0] == prompts[1] {
		t.Error("adjacent prompts use the same template")
	}

	for i, p := range prompts {
		if !strings.Contains(p, `"garden strolls"`) {
			t.Errorf("prompt %d missing the theme: %q", i+1, p)
		}
	}
}

func TestPromptsDistinctStyles(t *testing.T) {
	prompts := Prompts("coastal towns", 4)
	seen := map[string]bool{}
	for _, p := range prompts {
		if seen[p] {
			t.Errorf("duplicate prompt within one template cycle: %q", p)
		}
		seen[p] = true
	}
}

func TestPromptsNonPositiveCount(t *testing.T) {
	if got := Prompts("gardens", 0); got != nil {
		t.Errorf("Prompts(_, 0) = %v, want nil", got)
	}
	if got := Prompts("gardens", -3); got != nil {
		t.Errorf("Prompts(_, -3) = %v, want nil", got)
	}
}
