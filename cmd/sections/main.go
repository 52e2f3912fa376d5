package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sections",
		Short:         "Find and classify the sections of laid-out document pages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(extractCmd())

	return root
}
