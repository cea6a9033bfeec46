package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"
)

func TestTranslateSurveyErr(t *testing.T) {
	if got := translateSurveyErr(terminal.InterruptErr); !errors.Is(got, ErrAborted) {
		t.Fatalf("interrupt should map to ErrAborted, got %v", got)
	}
	other := errors.New("eof")
	if got := translateSurveyErr(other); got != other {
		t.Fatalf("other errors pass through unchanged, got %v", got)
	}
}

func TestSelectionHelpers(t *testing.T) {
	options := []string{"heading", "paragraph", "alert", "table"}

	if got := indexOf(options, "alert"); got != 2 {
		t.Fatalf("indexOf: want 2, got %d", got)
	}
	if got := indexOf(options, "nope"); got != -1 {
		t.Fatalf("indexOf missing: want -1, got %d", got)
	}
	if diff := cmp.Diff([]int{0, 3}, indicesOf(options, []string{"table", "heading"})); diff != "" {
		t.Fatalf("indicesOf mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"paragraph", "table"}, defaultsFromIndices(options, []int{1, 9, 3})); diff != "" {
		t.Fatalf("defaultsFromIndices mismatch (-want +got):\n%s", diff)
	}
}

func TestSurveyDriverHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := Survey()
	if _, err := driver.Input(ctx, InputConfig{Message: "Title"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Input: expected context.Canceled, got %v", err)
	}
	if _, err := driver.Confirm(ctx, ConfirmConfig{Message: "Fluid?"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Confirm: expected context.Canceled, got %v", err)
	}
	if _, err := driver.Select(ctx, SelectConfig{Message: "Layout", Options: []string{"page"}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Select: expected context.Canceled, got %v", err)
	}
	if _, err := driver.MultiSelect(ctx, SelectConfig{Message: "Widgets", Options: []string{"alert"}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("MultiSelect: expected context.Canceled, got %v", err)
	}
	if _, err := driver.TextArea(ctx, TextAreaConfig{Message: "Body"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("TextArea: expected context.Canceled, got %v", err)
	}
}
