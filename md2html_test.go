package yearplanner

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverterToHTML(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()
	ctx := context.Background()

	tests := []struct {
		name     string
		markdown string
		want     []string
	}{
		{
			name:     "heading",
			markdown: "# How to Use This Planner",
			want:     []string{"<h1", "How to Use This Planner"},
		},
		{
			name:     "emphasis and list",
			markdown: "- **Goals** lists outcomes\n- plain item\n",
			want:     []string{"<ul>", "<strong>Goals</strong>", "plain item"},
		},
		{
			name:     "gfm table",
			markdown: "| Term | Definition |\n|------|------------|\n| ISO week | Monday-based week |\n",
			want:     []string{"<table>", "<td>ISO week</td>"},
		},
		{
			name:     "empty input",
			markdown: "",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(ctx, tt.markdown)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML(%q) = %q, missing %q", tt.markdown, got, want)
				}
			}
		})
	}
}

func TestGoldmarkConverterCancelledContext(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := conv.ToHTML(ctx, "# heading"); !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() with cancelled context error = %v, want context.Canceled", err)
	}
}
