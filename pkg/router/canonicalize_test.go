package router

import (
	"errors"
	"testing"
)

func TestCanonicalizePattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", "git status", "git status"},
		{"surrounding whitespace", "  git status  ", "git status"},
		{"interior runs collapse", "git   commit\t-m {msg}", "git commit -m {msg}"},
		{"case folds", "Git Status", "git status"},
		{"mixed", "  ADD   {A:int}  {B:int} ", "add {a:int} {b:int}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalizePattern(tt.input)
			if err != nil {
				t.Fatalf("CanonicalizePattern(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("CanonicalizePattern(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalizePatternRejectsEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\t"} {
		_, err := CanonicalizePattern(input)
		if !errors.Is(err, ErrEmptyPattern) {
			t.Errorf("CanonicalizePattern(%q) error = %v, want ErrEmptyPattern", input, err)
		}
	}
}

func TestCanonicalizePatternRejectsControlCharacters(t *testing.T) {
	_, err := CanonicalizePattern("git\x00status")
	if !errors.Is(err, ErrControlCharacter) {
		t.Errorf("error = %v, want ErrControlCharacter", err)
	}

	// Tab is ordinary whitespace, not a rejected control character.
	if _, err := CanonicalizePattern("git\tstatus"); err != nil {
		t.Errorf("tab rejected: %v", err)
	}
}
