package sources

import (
	"github.com/reusee/aide/aideconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs aideconfigs.Module
}
