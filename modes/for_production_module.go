package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction provides the production mode and a nil *testing.T,
// so providers can depend on *testing.T without caring which mode the
// scope was built for.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}
