package cli

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// Execute runs the steeze-lite command tree with args.
func Execute(args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "steeze-lite",
		Short:         "Static route tables for small embedded handlers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newGenCmd(),
		newDispatchCmd(),
		newRoutesCmd(),
		newVersionCmd(),
	)
	return root
}
