package term

import (
	"bufio"
	"strings"
	"testing"
)

func TestPromptIntAcceptsValidInput(t *testing.T) {
	var out strings.Builder
	in := bufio.NewReader(strings.NewReader("42\n"))

	got, err := PromptInt(in, &out, "Enter the number of rows", 10, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("PromptInt = %d, want 42", got)
	}
	if !strings.Contains(out.String(), "(10-60)") {
		t.Errorf("prompt does not show the bounds: %q", out.String())
	}
}

func TestPromptIntRetriesUntilValid(t *testing.T) {
	var out strings.Builder
	in := bufio.NewReader(strings.NewReader("abc\n999\n9\n15\n"))

	got, err := PromptInt(in, &out, "Enter the number of rows", 10, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 15 {
		t.Errorf("PromptInt = %d, want 15", got)
	}
	if !strings.Contains(out.String(), "not a valid integer") {
		t.Error("missing non-numeric warning")
	}
	if !strings.Contains(out.String(), "not inside the bounds") {
		t.Error("missing out-of-bounds warning")
	}
}

func TestPromptIntAcceptsFinalUnterminatedLine(t *testing.T) {
	var out strings.Builder
	in := bufio.NewReader(strings.NewReader("30")) // no trailing newline

	got, err := PromptInt(in, &out, "Enter the number of cols", 10, 118)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 30 {
		t.Errorf("PromptInt = %d, want 30", got)
	}
}

func TestPromptIntErrorsWhenInputExhausted(t *testing.T) {
	var out strings.Builder
	in := bufio.NewReader(strings.NewReader("oops\n"))

	if _, err := PromptInt(in, &out, "Enter the number of generations", 1, 100000); err == nil {
		t.Error("expected an error once input ran out")
	}
}
