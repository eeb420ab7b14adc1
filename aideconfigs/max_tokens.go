package aideconfigs

import (
	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/configs"
)

type MaxTokens int

var _ configs.Configurable = MaxTokens(0)

func (m MaxTokens) ConfigExpr() string {
	return "max_tokens"
}

var maxTokensFlag = cmds.Var[int]("-max-tokens")

func (Module) MaxTokens(
	loader configs.Loader,
) MaxTokens {
	// flag
	if *maxTokensFlag != 0 {
		return MaxTokens(*maxTokensFlag)
	}

	// config
	if n := configs.First[int](loader, "max_tokens"); n != 0 {
		return MaxTokens(n)
	}

	return 64000
}
