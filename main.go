// Package main is the entry point for the prism application.
package main

import (
	"github.com/prism-vault/prism/cmd"
	"github.com/prism-vault/prism/config"
	"github.com/prism-vault/prism/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
