package main

import (
	"context"

	"wowcpe/cmd/wowcpe/cmds"

	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(cmds.NewRootCLI().ExecuteContext(context.Background()))
}
