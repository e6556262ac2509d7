package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "resource-route",
		Short:        "Resolve resourceful route names into URLs",
		SilenceUsage: true,
	}
	root.AddCommand(newResolveCmd())
	root.AddCommand(newMethodCmd())
	root.AddCommand(newCheckCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
