package debugs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	// the REPL reads EOF immediately under go test
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "inspect", map[string]any{
			"count": 42,
			"steps": []string{"explain", "document"},
		})
	})
}
