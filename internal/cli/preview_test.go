package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/gradhash/internal/colour"
)

func TestPreviewText(t *testing.T) {
	g, err := colour.NewGradient(colour.RGB{}, colour.RGB{R: 255, G: 255, B: 255}, 4)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		width     int
		wantLines int
	}{
		{name: "grid fits", width: 80, wantLines: 5},
		{name: "grid exactly fits", width: 4 * previewWidth, wantLines: 5},
		{name: "grid too wide", width: 4*previewWidth - 1, wantLines: 1},
		{name: "unknown width", width: 0, wantLines: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := previewText(g, 4, tt.width)
			if lines := strings.Count(out, "\n"); lines != tt.wantLines {
				t.Errorf("previewText produced %d lines, want %d:\n%q", lines, tt.wantLines, out)
			}

			last := out[strings.LastIndex(strings.TrimSuffix(out, "\n"), "\n")+1:]
			if !strings.Contains(last, "000000") || !strings.Contains(last, "efefef") {
				t.Errorf("summary line %q should show the first and last colours", last)
			}
		})
	}
}

func TestPreviewTextEmpty(t *testing.T) {
	if out := previewText(nil, 0, 80); out != "" {
		t.Errorf("previewText(nil) = %q, want empty", out)
	}
}
