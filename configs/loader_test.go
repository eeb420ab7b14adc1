package configs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var testSchema = `
assistant?: string
limits?: [...int]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var assistant string
	if err := loader.AssignFirst("assistant", &assistant); err != nil {
		t.Fatal(err)
	}
	if assistant != "codex" {
		t.Fatalf("got %q", assistant)
	}

	var limits []int
	if err := loader.AssignFirst("limits", &limits); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", limits); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err := loader.AssignFirst("not", &limits)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderFileOrder(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var assistants []string
	for value, err := range loader.IterCueValues("assistant") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		assistants = append(assistants, s)
	}
	if str := fmt.Sprintf("%v", assistants); str != "[codex local]" {
		t.Fatalf("got %q", str)
	}

	assistants = assistants[:0]
	for assistant := range All[string](loader, "assistant") {
		assistants = append(assistants, assistant)
	}
	if str := fmt.Sprintf("%v", assistants); str != "[codex local]" {
		t.Fatalf("got %q", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestDecodeMismatch(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)
	var n int
	err := loader.AssignFirst("assistant", &n)
	if err == nil || !strings.Contains(err.Error(), "test.cue") {
		t.Fatalf("got %v", err)
	}
}
