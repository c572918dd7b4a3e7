package cli

import (
	"strings"
	"testing"
)

func TestRenderKeyValueLines_Alignment(t *testing.T) {
	out := renderKeyValueLines([]kvPair{
		{"Package", "my-app"},
		{"Files", "12 created"},
	})

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "my-app") {
		t.Errorf("line 0 = %q, want package value", lines[0])
	}
	if !strings.Contains(lines[1], "12 created") {
		t.Errorf("line 1 = %q, want file count", lines[1])
	}
}

func TestRenderSuccessCard_ContainsTitleAndDetails(t *testing.T) {
	card := renderSuccessCard("Python project initialized", "detail-one", "", "detail-two")

	for _, want := range []string{"Python project initialized", "detail-one", "detail-two"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
}

func TestRenderMarkdown_NonTTYFallsBackToRaw(t *testing.T) {
	// Tests never run with a TTY on stdout, so the raw text comes back.
	md := nextStepsMarkdown()
	if got := renderMarkdown(md); got != md {
		t.Errorf("renderMarkdown() = %q, want raw markdown without a TTY", got)
	}
}

func TestNextStepsMarkdown_MentionsUv(t *testing.T) {
	md := nextStepsMarkdown()
	if !strings.Contains(md, "uv sync") {
		t.Errorf("next steps missing uv sync guidance: %q", md)
	}
}
