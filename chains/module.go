package chains

import (
	"github.com/reusee/aide/actions"
	"github.com/reusee/aide/debugs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Actions actions.Module
	Debugs  debugs.Module
}
