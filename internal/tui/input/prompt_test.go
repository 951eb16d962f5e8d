package input

import (
	"errors"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantArgs int
		wantErr  error
	}{
		{name: "set", input: "/set Sleep 8", wantName: "/set", wantArgs: 2},
		{name: "upper", input: "  /UNIT 15 ", wantName: "/unit", wantArgs: 1},
		{name: "bare", input: "/reset", wantName: "/reset", wantArgs: 0},
		{name: "empty", input: "", wantErr: ErrNotCommand},
		{name: "slash_only", input: "/", wantErr: ErrNotCommand},
		{name: "no_slash", input: "set Sleep 8", wantErr: ErrNotCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Name != tt.wantName || len(got.Args) != tt.wantArgs {
				t.Errorf("got %+v", got)
			}
		})
	}
}

func TestCommand_Arg(t *testing.T) {
	cmd := Command{Name: "/export", Args: []string{"a.json"}}
	if got := cmd.Arg(0, "x"); got != "a.json" {
		t.Errorf("Arg(0) = %q", got)
	}
	if got := cmd.Arg(1, "x"); got != "x" {
		t.Errorf("Arg(1) = %q, want default", got)
	}
}

func TestPromptMatchingCommands(t *testing.T) {
	commands := []PromptCommand{
		{Name: "/set", Description: "Set hours"},
		{Name: "/unit", Description: "Smallest unit"},
	}

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "no_slash", input: "set", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "full", input: "/set", want: 1},
		{name: "prefix", input: "/u", want: 1},
		{name: "all", input: "/", want: 2},
		{name: "with_space", input: "/set x", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PromptMatchingCommands(tt.input, commands)
			if len(got) != tt.want {
				t.Fatalf("matches = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestPromptAutocomplete(t *testing.T) {
	commands := []PromptCommand{
		{Name: "/set", Description: "Set hours"},
		{Name: "/unit", Description: "Smallest unit"},
	}

	value, ok := PromptAutocomplete("/u", commands)
	if !ok {
		t.Fatal("expected autocomplete")
	}
	if value != "/unit " {
		t.Fatalf("value = %q, want %q", value, "/unit ")
	}
}
