package assistants

import (
	"github.com/reusee/aide/aideconfigs"
	"github.com/reusee/aide/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs aideconfigs.Module
	Nets    nets.Module
}
