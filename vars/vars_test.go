package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero("", "", "codex"); got != "codex" {
		t.Fatalf("got %q", got)
	}
	if got := FirstNonZero(0, 0); got != 0 {
		t.Fatalf("got %d", got)
	}
}

func TestDerefOrZero(t *testing.T) {
	n := 7
	if got := DerefOrZero(&n); got != 7 {
		t.Fatalf("got %d", got)
	}
	if got := DerefOrZero[string](nil); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestStrToBool(t *testing.T) {
	for in, want := range map[string]bool{
		"true": true,
		"Yes":  true,
		"on":   true,
		"1":    true,
		"no":   false,
		"":     false,
		"2":    false,
	} {
		if got := StrToBool(in); got != want {
			t.Fatalf("StrToBool(%q) = %v", in, got)
		}
	}
}
