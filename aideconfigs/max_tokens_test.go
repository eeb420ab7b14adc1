package aideconfigs

import (
	"testing"

	"github.com/reusee/aide/configs"
	"github.com/reusee/aide/modes"
	"github.com/reusee/dscope"
)

func TestMaxTokens(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(func() configs.Loader {
		return configs.NewLoader([]string{"test_config.cue"}, schema)
	}).Call(func(
		maxTokens MaxTokens,
	) {
		if maxTokens != 1234 {
			t.Fatalf("got %v", maxTokens)
		}
	})
}

func TestMaxTokensDefault(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(func() configs.Loader {
		return configs.NewLoader(nil, "")
	}).Call(func(
		maxTokens MaxTokens,
	) {
		if maxTokens != 64000 {
			t.Fatalf("got %v", maxTokens)
		}
	})
}
