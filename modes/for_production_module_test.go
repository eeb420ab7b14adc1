package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(new(ModuleForProduction)).Call(func(
		injectedT *testing.T,
		mode Mode,
	) {
		if mode != ModeProduction {
			t.Fatal()
		}
		if injectedT != nil {
			t.Fatal("production scope must not carry a test")
		}
	})
}
