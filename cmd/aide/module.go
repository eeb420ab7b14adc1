package main

import (
	"github.com/reusee/aide/actions"
	"github.com/reusee/aide/backups"
	"github.com/reusee/aide/chains"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Actions actions.Module
	Backups backups.Module
	Chains  chains.Module
}
