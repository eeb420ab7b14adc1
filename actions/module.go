package actions

import (
	"github.com/reusee/aide/assistants"
	"github.com/reusee/aide/backups"
	"github.com/reusee/aide/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Assistants assistants.Module
	Backups    backups.Module
	Sources    sources.Module
}
