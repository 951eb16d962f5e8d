package view

import (
	"strings"
	"testing"

	"github.com/javiermolinar/daygrid/internal/tui/input"
)

var testPromptCommands = []input.PromptCommand{
	{Name: "/set", Usage: "<activity> <hours>", Description: "Set hours"},
	{Name: "/unit", Usage: "<15|30|60>", Description: "Change unit"},
	{Name: "/copy", Description: "Copy export"},
}

func TestPromptLines(t *testing.T) {
	tests := []struct {
		name  string
		state PromptState
		width int
		want  []string
	}{
		{
			name:  "suggestions for a prefix",
			state: PromptState{Value: "/s", Cursor: "_", ModePrompt: true},
			width: 60,
			want:  []string{"> /s_", "  /set <activity> <hours>  Set hours"},
		},
		{
			name:  "command without usage",
			state: PromptState{Value: "/c", Cursor: "_", ModePrompt: true},
			width: 60,
			want:  []string{"> /c_", "  /copy  Copy export"},
		},
		{
			name:  "no suggestions after a space",
			state: PromptState{Value: "/set sleep", Cursor: "_", ModePrompt: true},
			width: 60,
			want:  []string{"> /set sleep_"},
		},
		{
			name:  "unfocused prompt hides suggestions",
			state: PromptState{Value: "/s"},
			width: 60,
			want:  []string{"> /s"},
		},
		{
			name:  "long input wraps under the marker",
			state: PromptState{Value: "/import saved file", ModePrompt: true},
			width: 10,
			want:  []string{"> /import", "  saved", "  file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PromptLines(tt.state, tt.width, testPromptCommands)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("PromptLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClampPromptLines(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		maxLines int
		width    int
		want     []string
	}{
		{name: "fits", lines: []string{"one", "two"}, maxLines: 2, width: 10, want: []string{"one", "two"}},
		{name: "room for ellipsis", lines: []string{"one", "two", "three"}, maxLines: 2, width: 10, want: []string{"one", "two..."}},
		{name: "cut to fit", lines: []string{"one", "two", "three"}, maxLines: 2, width: 5, want: []string{"one", "tw..."}},
		{name: "narrow", lines: []string{"one", "two"}, maxLines: 1, width: 2, want: []string{".."}},
		{name: "no lines allowed", lines: []string{"one"}, maxLines: 0, width: 5, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampPromptLines(tt.lines, tt.maxLines, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("ClampPromptLines() = %q, want %q", got, tt.want)
			}
		})
	}
}
