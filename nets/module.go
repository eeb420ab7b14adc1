package nets

import (
	"github.com/reusee/aide/configs"
	"github.com/reusee/aide/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
